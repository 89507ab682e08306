package dto

type CreateFeedbackRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

type UpdateFeedbackRequest struct {
	Content  *string `json:"content"`
	Category *string `json:"category"`
}
