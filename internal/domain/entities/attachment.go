package entities

import "time"

// Phase labels which workflow step produced an attachment.

type Phase string

const (
	PhaseRequestSubmission Phase = "request-submission"
	PhasePaymentReceipt    Phase = "payment-receipt"
	PhaseProfileDocument   Phase = "profile-document"
)

// AttachmentGroup correlates evidence files uploaded across one or more
// submission phases of the same parent entity.
//
// Storage model (DynamoDB):
//   - PK: parent_ref (one group per parent; concurrent first creation is
//     settled by a conditional put, losers converge on the winner's row)
//   - GSI1 (group_key-index): group_key
type AttachmentGroup struct {
	ID        string    `json:"id"`
	GroupKey  string    `json:"group_key"`
	CreatedBy string    `json:"created_by"`
	ParentRef string    `json:"parent_ref"`
	CreatedAt time.Time `json:"created_at"`
}

// Attachment is one uploaded evidence file. Created on upload, never
// mutated; deletion is outside the workflow engine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (group_id-index): group_id
type Attachment struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"group_id"`
	FilePath     string    `json:"file_path"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	UploaderRole Role      `json:"uploader_role"`
	Phase        Phase     `json:"phase"`
	CreatedAt    time.Time `json:"created_at"`
}

// FileUpload is the in-memory shape of one file in a submission batch,
// before it reaches the content store.
type FileUpload struct {
	Name        string
	ContentType string
	SizeBytes   int64
	Data        []byte
}

// FailedUpload records one file the batch could not persist.
type FailedUpload struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// UploadBatchResult is the outcome of a best-effort upload loop. A failed
// file never aborts the batch; callers surface Failed as a warning.
type UploadBatchResult struct {
	Succeeded []Attachment   `json:"succeeded"`
	Failed    []FailedUpload `json:"failed"`
}

func (r UploadBatchResult) Partial() bool {
	return len(r.Failed) > 0 && len(r.Succeeded) > 0
}

func (r UploadBatchResult) AllFailed() bool {
	return len(r.Failed) > 0 && len(r.Succeeded) == 0
}
