package request

// SubmitRequestForm is the non-file part of the multipart request
// submission. Files ride alongside under the "files" field.
type SubmitRequestForm struct {
	Title       string   `form:"title" validate:"required,max=200"`
	Description string   `form:"description" validate:"max=4000"`
	ServiceIDs  []string `form:"service_ids" validate:"required,min=1,dive,required"`
	Currency    string   `form:"currency" validate:"omitempty,len=3"`
}

// UploadAttachmentsForm labels a follow-on upload batch with the workflow
// phase that produced it.
type UploadAttachmentsForm struct {
	Phase string `form:"phase" validate:"required,oneof=request-submission payment-receipt profile-document"`
}
