package response

import (
	"time"

	"khadamat_hub/internal/domain/entities"
)

type AttachmentResponse struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	FilePath    string    `json:"file_path"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Phase       string    `json:"phase"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAttachment(a entities.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.ID,
		GroupID:     a.GroupID,
		FilePath:    a.FilePath,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		Phase:       string(a.Phase),
		CreatedAt:   a.CreatedAt,
	}
}

func FromAttachments(attachments []entities.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, FromAttachment(a))
	}
	return out
}

type FailedUploadResponse struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// UploadBatchResponse reports what happened to each file in a batch.
type UploadBatchResponse struct {
	Succeeded []AttachmentResponse   `json:"succeeded"`
	Failed    []FailedUploadResponse `json:"failed"`
}

func FromUploadBatch(result entities.UploadBatchResult) UploadBatchResponse {
	out := UploadBatchResponse{
		Succeeded: FromAttachments(result.Succeeded),
		Failed:    make([]FailedUploadResponse, 0, len(result.Failed)),
	}
	for _, f := range result.Failed {
		out.Failed = append(out.Failed, FailedUploadResponse{FileName: f.FileName, Reason: f.Reason})
	}
	return out
}
