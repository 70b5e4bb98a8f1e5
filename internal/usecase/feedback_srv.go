package usecase

import (
	"context"
	"fmt"

	"sendit/internal/data/entity"
	"sendit/internal/data/repository"
	"sendit/internal/dto/request"
	"sendit/internal/dto/response"

	"go.uber.org/zap"
)

type FeedbackService interface {
	List(ctx context.Context) (response.ListResponse[response.FeedbackResponse], error)
	Create(ctx context.Context, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error)
	GetByID(ctx context.Context, id int64) (*response.FeedbackResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateFeedbackRequest) (*response.FeedbackResponse, error)
	Delete(ctx context.Context, id int64) error
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	log          *zap.Logger
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		log:          log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) List(ctx context.Context) (response.ListResponse[response.FeedbackResponse], error) {
	items, err := s.feedbackRepo.FindAll(ctx)
	if err != nil {
		return response.ListResponse[response.FeedbackResponse]{}, fmt.Errorf("list feedback: %w", err)
	}
	return response.FeedbacksToResponse(items), nil
}

func (s *feedbackService) Create(ctx context.Context, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create feedback validation failed", zap.Error(err))
		return nil, err
	}

	feedback := &entity.Feedback{
		Rating:   req.Rating,
		Comments: req.Comments,
		UserID:   req.UserID,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, translate("create feedback", err)
	}

	s.log.Info("Feedback created",
		zap.Int64("feedback_id", feedback.ID),
		zap.Int64("user_id", feedback.UserID),
		zap.Int("rating", feedback.Rating),
	)
	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) GetByID(ctx context.Context, id int64) (*response.FeedbackResponse, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feedback %d: %w", id, err)
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback %d: %w", id, ErrNotFound)
	}

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) Update(ctx context.Context, id int64, req *request.UpdateFeedbackRequest) (*response.FeedbackResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	feedback, err := s.feedbackRepo.Update(ctx, id, entity.FeedbackPatch{
		Rating:   req.Rating,
		Comments: req.Comments,
		UserID:   req.UserID,
	})
	if err != nil {
		return nil, translate(fmt.Sprintf("update feedback %d", id), err)
	}

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) Delete(ctx context.Context, id int64) error {
	if err := s.feedbackRepo.Delete(ctx, id); err != nil {
		return translate(fmt.Sprintf("delete feedback %d", id), err)
	}
	return nil
}
