package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_NotifyPostLiked(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies the post author", func(t *testing.T) {
		repo, captured := capturingNotificationRepo()
		svc := NewNotificationService(repo, nil)

		svc.NotifyPostLiked(ctx, 2, "alice", &models.Post{ID: 1, UserID: 9, Title: "Go tips"})

		require.Len(t, *captured, 1)
		assert.Equal(t, uint(9), (*captured)[0].RecipientID)
		assert.Equal(t, models.NotificationTypeLike, (*captured)[0].Type)
		assert.Contains(t, (*captured)[0].Message, "alice")
		assert.Contains(t, (*captured)[0].Message, "Go tips")
	})

	t.Run("liking your own post is silent", func(t *testing.T) {
		repo, captured := capturingNotificationRepo()
		svc := NewNotificationService(repo, nil)

		svc.NotifyPostLiked(ctx, 9, "self", &models.Post{ID: 1, UserID: 9})
		assert.Empty(t, *captured)
	})
}

func TestNotificationService_EmitIsBestEffort(t *testing.T) {
	repo, _ := capturingNotificationRepo()
	repo.createFn = func(_ context.Context, _ *models.Notification) error {
		return errors.New("db down")
	}
	svc := NewNotificationService(repo, nil)

	// Must not panic or propagate the failure.
	svc.NotifyPostLiked(context.Background(), 2, "alice", &models.Post{ID: 1, UserID: 9})
	svc.NotifyCommentCreated(context.Background(), "alice",
		&models.Post{ID: 1, UserID: 9},
		&models.Comment{ID: 1, UserID: 2, Content: "hey"},
		nil,
	)
}

func TestNotificationService_ReplyOnOwnPost(t *testing.T) {
	// Author replies to a commenter on the author's own post: the post-author
	// rule is silent (self) but the parent-author rule fires.
	repo, captured := capturingNotificationRepo()
	svc := NewNotificationService(repo, nil)

	svc.NotifyCommentCreated(context.Background(), "author",
		&models.Post{ID: 1, UserID: 9},
		&models.Comment{ID: 2, UserID: 9, Content: "thanks!", ParentCommentID: uintPtr(1)},
		&models.Comment{ID: 1, UserID: 4, Content: "great post"},
	)

	require.Len(t, *captured, 1)
	assert.Equal(t, uint(4), (*captured)[0].RecipientID)
	assert.Equal(t, models.NotificationTypeReply, (*captured)[0].Type)
}
