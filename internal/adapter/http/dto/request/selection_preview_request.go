package request

type SelectionClickRequest struct {
	OfferingID string `json:"offering_id" binding:"required"`
	Checked    bool   `json:"checked"`
}

// SelectionPreviewRequest replays a checkbox click sequence server-side so
// a client can render the resulting selection and amount.
type SelectionPreviewRequest struct {
	Clicks []SelectionClickRequest `json:"clicks" binding:"required,min=1,dive"`
}
