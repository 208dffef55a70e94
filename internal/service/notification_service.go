package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/notifications"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// NotificationService writes notification rows and pushes them to connected
// clients. Every emit is best-effort: a failed write is logged and counted
// but never fails the triggering operation.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	notifier         *notifications.Notifier
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	notifier *notifications.Notifier,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		notifier:         notifier,
	}
}

// NotifyCommentCreated emits the notifications a new comment produces. The
// post-author and parent-author checks are independent: one comment can
// notify both, and a reply on your own post from someone else still notifies
// you once per matching rule. Commenting on your own post, or replying to
// your own comment, produces nothing for that rule.
func (s *NotificationService) NotifyCommentCreated(ctx context.Context, actorName string, post *models.Post, comment *models.Comment, parent *models.Comment) {
	if comment.UserID != post.UserID {
		s.emit(ctx, post.UserID, models.NotificationTypeComment,
			fmt.Sprintf("%s commented on your post: %q", actorName, comment.Excerpt()))
	}
	if parent != nil && comment.UserID != parent.UserID {
		s.emit(ctx, parent.UserID, models.NotificationTypeReply,
			fmt.Sprintf("%s replied to your comment: %q", actorName, comment.Excerpt()))
	}
}

// NotifyPostLiked emits a like notification to the post author unless the
// liker is the author.
func (s *NotificationService) NotifyPostLiked(ctx context.Context, actorID uint, actorName string, post *models.Post) {
	if actorID == post.UserID {
		return
	}
	s.emit(ctx, post.UserID, models.NotificationTypeLike,
		fmt.Sprintf("%s liked your post %q", actorName, post.Title))
}

func (s *NotificationService) emit(ctx context.Context, recipientID uint, typ models.NotificationType, message string) {
	n := &models.Notification{
		RecipientID: recipientID,
		Type:        typ,
		Message:     message,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		observability.NotificationFailures.WithLabelValues(string(typ)).Inc()
		middleware.Logger.WarnContext(ctx, "notification write failed",
			slog.String("type", string(typ)),
			slog.Uint64("recipient_id", uint64(recipientID)),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.NotificationsEmitted.WithLabelValues(string(typ)).Inc()

	if s.notifier == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := s.notifier.PublishUser(ctx, recipientID, string(payload)); err != nil {
		middleware.Logger.WarnContext(ctx, "notification publish failed",
			slog.Uint64("recipient_id", uint64(recipientID)),
			slog.String("error", err.Error()),
		)
	}
}

func (s *NotificationService) List(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, recipientID, limit, offset)
}

func (s *NotificationService) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, recipientID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, recipientID uint) error {
	return s.notificationRepo.MarkRead(ctx, id, recipientID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID uint) error {
	return s.notificationRepo.MarkAllRead(ctx, recipientID)
}
