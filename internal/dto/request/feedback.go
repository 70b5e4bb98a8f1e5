package request

type CreateFeedbackRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments,omitempty"`
	UserID   int64  `json:"user_id" validate:"required"`
}

type UpdateFeedbackRequest struct {
	Rating   *int    `json:"rating,omitempty"`
	Comments *string `json:"comments,omitempty"`
	UserID   *int64  `json:"user_id,omitempty"`
}
