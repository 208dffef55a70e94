package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo   repository.CommentRepository
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
	enricher      *PostEnricher
	isAdmin       func(ctx context.Context, userID uint) (bool, error)
}

type CreateCommentInput struct {
	UserID          uint
	PostID          uint
	Content         string
	ParentCommentID *uint
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

// CommentThread is a top-level comment with its direct replies.
type CommentThread struct {
	models.Comment
	Replies []*models.Comment `json:"replies"`
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notifications *NotificationService,
	enricher *PostEnricher,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *CommentService {
	return &CommentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
		enricher:      enricher,
		isAdmin:       isAdmin,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	const maxCommentLen = 10000

	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	var parent *models.Comment
	if in.ParentCommentID != nil {
		parent, err = s.commentRepo.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Comment", *in.ParentCommentID)
			}
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		Content:         in.Content,
		UserID:          in.UserID,
		PostID:          in.PostID,
		ParentCommentID: in.ParentCommentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.enricher.EnrichCommentAuthors(ctx, []*models.Comment{comment})
	if s.notifications != nil {
		s.notifications.NotifyCommentCreated(ctx, comment.Author.DisplayName, post, comment, parent)
	}

	return comment, nil
}

// ListComments returns the flat comment list for a post, newest first, with
// authors attached.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	s.enricher.EnrichCommentAuthors(ctx, comments)
	return comments, nil
}

// ListThreads returns the post's comments grouped into top-level threads.
func (s *CommentService) ListThreads(ctx context.Context, postID uint) ([]CommentThread, error) {
	comments, err := s.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildThreads(comments), nil
}

// BuildThreads groups a flat comment list into top-level threads with one
// nesting level. Input order is preserved in both tiers, so a
// newest-first input yields newest-first threads and replies. Replies that
// name a non-top-level parent stay grouped under the id they name and are
// not re-parented. The function is pure and idempotent.
func BuildThreads(comments []*models.Comment) []CommentThread {
	repliesByParent := make(map[uint][]*models.Comment)
	var topLevel []*models.Comment
	for _, c := range comments {
		if c.IsTopLevel() {
			topLevel = append(topLevel, c)
			continue
		}
		parentID := *c.ParentCommentID
		repliesByParent[parentID] = append(repliesByParent[parentID], c)
	}

	threads := make([]CommentThread, 0, len(topLevel))
	for _, c := range topLevel {
		threads = append(threads, CommentThread{
			Comment: *c,
			Replies: repliesByParent[c.ID],
		})
	}
	return threads
}

func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment", in.CommentID)
		}
		return err
	}

	if comment.UserID != in.UserID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
