package service

import (
	"context"
	"errors"
	"log/slog"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo      repository.LikeRepository
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notifications *NotificationService,
) *LikeService {
	return &LikeService{
		likeRepo:      likeRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// LikePost records a like. A repeat like from the same user is a silent
// no-op and emits no second notification.
func (s *LikeService) LikePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}

	created, err := s.likeRepo.Like(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !created || s.notifications == nil {
		return nil
	}

	actorName := models.PlaceholderAuthor().DisplayName
	if actor, err := s.userRepo.GetByID(ctx, userID); err == nil {
		actorName = actor.DisplayName
	}
	s.notifications.NotifyPostLiked(ctx, userID, actorName, post)
	return nil
}

func (s *LikeService) UnlikePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}
	return s.likeRepo.Unlike(ctx, userID, postID)
}

func (s *LikeService) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeRepo.IsLiked(ctx, userID, postID)
}

// AttachLiked marks which of the given posts the viewer has liked, in one
// batched lookup. A failed lookup leaves the flags false.
func (s *LikeService) AttachLiked(ctx context.Context, userID uint, posts []*models.Post) {
	if userID == 0 || len(posts) == 0 {
		return
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	likedIDs, err := s.likeRepo.LikedPostIDs(ctx, userID, ids)
	if err != nil {
		observability.EnrichmentDegradations.WithLabelValues("liked").Inc()
		middleware.Logger.WarnContext(ctx, "liked lookup failed, leaving flags false",
			slog.Uint64("user_id", uint64(userID)),
			slog.Int("posts", len(posts)),
			slog.String("error", err.Error()),
		)
		return
	}

	liked := make(map[uint]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		liked[id] = struct{}{}
	}
	for _, p := range posts {
		_, p.Liked = liked[p.ID]
	}
}
