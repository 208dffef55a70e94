package service

import (
	"context"

	"inkwell/internal/enrich"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// PostEnricher assembles the display fields of posts (author, categories,
// counts, read time) from their own stores after the primary fetch.
type PostEnricher struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	commentRepo  repository.CommentRepository
	likeRepo     repository.LikeRepository
}

// NewPostEnricher returns a new PostEnricher.
func NewPostEnricher(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
) *PostEnricher {
	return &PostEnricher{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
	}
}

// EnrichPosts fills in authors, categories, comment and like counts, and read
// time. Lookup failures degrade the affected field (placeholder author, empty
// categories, zero counts) instead of failing the batch.
func (e *PostEnricher) EnrichPosts(ctx context.Context, posts []*models.Post) {
	if len(posts) == 0 {
		return
	}

	enrich.Attach(ctx, "post_author", posts,
		func(p *models.Post) uint { return p.UserID },
		func(ctx context.Context, ids []uint) ([]models.User, error) {
			return e.userRepo.ListByIDs(ctx, ids)
		},
		func(u models.User) uint { return u.ID },
		func(p *models.Post, u models.User, found bool) {
			if !found {
				p.Author = models.PlaceholderAuthor()
				return
			}
			p.Author = u.Summary()
		},
	)

	enrich.Group(ctx, "post_categories", posts,
		func(p *models.Post) uint { return p.ID },
		func(ctx context.Context, ids []uint) (map[uint][]models.Category, error) {
			return e.categoryRepo.ListByPostIDs(ctx, ids)
		},
		func(p *models.Post, cats []models.Category) { p.Categories = cats },
	)

	enrich.Counts(ctx, "post_comment_counts", posts,
		func(p *models.Post) uint { return p.ID },
		e.commentRepo.CountByPostIDs,
		func(p *models.Post, n int) { p.CommentsCount = n },
	)

	enrich.Counts(ctx, "post_like_counts", posts,
		func(p *models.Post) uint { return p.ID },
		e.likeRepo.CountByPostIDs,
		func(p *models.Post, n int) { p.LikesCount = n },
	)

	for _, p := range posts {
		p.ReadTime = models.EstimateReadTime(p.Content)
	}
}

// EnrichCommentAuthors fills comment authors from the user store, with the
// placeholder author for missing users.
func (e *PostEnricher) EnrichCommentAuthors(ctx context.Context, comments []*models.Comment) {
	enrich.Attach(ctx, "comment_author", comments,
		func(c *models.Comment) uint { return c.UserID },
		func(ctx context.Context, ids []uint) ([]models.User, error) {
			return e.userRepo.ListByIDs(ctx, ids)
		},
		func(u models.User) uint { return u.ID },
		func(c *models.Comment, u models.User, found bool) {
			if !found {
				c.Author = models.PlaceholderAuthor()
				return
			}
			c.Author = u.Summary()
		},
	)
}
