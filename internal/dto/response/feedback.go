package response

import (
	"time"

	"sendit/internal/data/entity"
)

type FeedbackResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comments  string    `json:"comments"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FeedbackToResponse(feedback *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        feedback.ID,
		Rating:    feedback.Rating,
		Comments:  feedback.Comments,
		UserID:    feedback.UserID,
		CreatedAt: feedback.CreatedAt,
		UpdatedAt: feedback.UpdatedAt,
	}
}

func FeedbacksToResponse(items []*entity.Feedback) ListResponse[FeedbackResponse] {
	return NewListResponse("feedbacks", mapList(items, FeedbackToResponse))
}
