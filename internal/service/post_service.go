package service

import (
	"context"
	"fmt"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	enricher     *PostEnricher
	isAdmin      func(ctx context.Context, userID uint) (bool, error)
}

type CreatePostInput struct {
	UserID     uint
	Title      string
	Content    string
	Categories []string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// FeedPage is one page of the posts feed. HasMore is false once a page comes
// back shorter than the page size.
type FeedPage struct {
	Posts   []*models.Post `json:"posts"`
	Page    int            `json:"page"`
	HasMore bool           `json:"has_more"`
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	enricher *PostEnricher,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		enricher:     enricher,
		isAdmin:      isAdmin,
	}
}

// GetFeed returns one enriched feed page, optionally narrowed to a category.
func (s *PostService) GetFeed(ctx context.Context, page int, category string) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	posts, err := s.postRepo.Feed(ctx, page, category)
	if err != nil {
		return nil, err
	}
	s.enricher.EnrichPosts(ctx, posts)
	return &FeedPage{
		Posts:   posts,
		Page:    page,
		HasMore: len(posts) == repository.FeedPageSize,
	}, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300
	const maxContentLen = 50000

	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	categoryIDs, err := s.resolveCategories(ctx, in.Categories)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post, categoryIDs); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, post.ID)
}

// resolveCategories maps names to IDs, rejecting unknown names.
func (s *PostService) resolveCategories(ctx context.Context, names []string) ([]uint, error) {
	if len(names) == 0 {
		return nil, nil
	}

	cleaned := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		cleaned = append(cleaned, n)
	}
	if len(cleaned) == 0 {
		return nil, nil
	}

	categories, err := s.categoryRepo.GetByNames(ctx, cleaned)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	ids := make([]uint, 0, len(cleaned))
	for _, n := range cleaned {
		id, ok := byName[n]
		if !ok {
			return nil, models.NewValidationError(fmt.Sprintf("Unknown category %q", n))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.enricher.EnrichPosts(ctx, []*models.Post{post})
	return post, nil
}

func (s *PostService) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	posts, err := s.postRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	s.enricher.EnrichPosts(ctx, posts)
	return posts, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}
	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		if s.isAdmin == nil {
			return models.NewUnauthorizedError("You can only delete your own posts")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own posts")
		}
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
