package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

type CreateFeedbackInput struct {
	UserID      uint
	Email       string
	DisplayName string
	Feedback    string
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// SubmitFeedback stores a feedback note. Works for anonymous visitors too, in
// which case UserID is zero and contact fields are whatever was typed in.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, in CreateFeedbackInput) (*models.Feedback, error) {
	const maxFeedbackLen = 5000

	if in.Feedback == "" {
		return nil, models.NewValidationError("Feedback is required")
	}
	if len(in.Feedback) > maxFeedbackLen {
		return nil, models.NewValidationError("Feedback too long (max 5000 characters)")
	}

	fb := &models.Feedback{
		UserID:      in.UserID,
		Email:       in.Email,
		DisplayName: in.DisplayName,
		Feedback:    in.Feedback,
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *FeedbackService) ListFeedback(ctx context.Context, limit, offset int) ([]*models.Feedback, error) {
	return s.feedbackRepo.List(ctx, limit, offset)
}
