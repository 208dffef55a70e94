package service

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostService(postRepo *postRepoStub, categoryRepo *categoryRepoStub) *PostService {
	return NewPostService(postRepo, categoryRepo, testEnricher(), nil)
}

func TestPostService_GetFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("full page reports more available", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.feedFn = func(_ context.Context, page int, _ string) ([]*models.Post, error) {
			posts := make([]*models.Post, repository.FeedPageSize)
			for i := range posts {
				posts[i] = &models.Post{ID: uint(100 - i), UserID: 1}
			}
			return posts, nil
		}
		svc := newTestPostService(postRepo, noopCategoryRepo())

		page, err := svc.GetFeed(ctx, 1, "")
		require.NoError(t, err)
		assert.True(t, page.HasMore)
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Posts, repository.FeedPageSize)
	})

	t.Run("short page means the feed is exhausted", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.feedFn = func(_ context.Context, _ int, _ string) ([]*models.Post, error) {
			return []*models.Post{{ID: 1, UserID: 1}}, nil
		}
		svc := newTestPostService(postRepo, noopCategoryRepo())

		page, err := svc.GetFeed(ctx, 4, "")
		require.NoError(t, err)
		assert.False(t, page.HasMore)
	})

	t.Run("page below one is clamped", func(t *testing.T) {
		var gotPage int
		postRepo := noopPostRepo()
		postRepo.feedFn = func(_ context.Context, page int, _ string) ([]*models.Post, error) {
			gotPage = page
			return nil, nil
		}
		svc := newTestPostService(postRepo, noopCategoryRepo())

		page, err := svc.GetFeed(ctx, -3, "")
		require.NoError(t, err)
		assert.Equal(t, 1, gotPage)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("category is passed through", func(t *testing.T) {
		var gotCategory string
		postRepo := noopPostRepo()
		postRepo.feedFn = func(_ context.Context, _ int, category string) ([]*models.Post, error) {
			gotCategory = category
			return nil, nil
		}
		svc := newTestPostService(postRepo, noopCategoryRepo())

		_, err := svc.GetFeed(ctx, 1, "golang")
		require.NoError(t, err)
		assert.Equal(t, "golang", gotCategory)
	})
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("requires title and content", func(t *testing.T) {
		svc := newTestPostService(noopPostRepo(), noopCategoryRepo())

		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Content: "body"})
		assert.Error(t, err)

		_, err = svc.CreatePost(ctx, CreatePostInput{UserID: 1, Title: "title"})
		assert.Error(t, err)
	})

	t.Run("rejects oversize title", func(t *testing.T) {
		svc := newTestPostService(noopPostRepo(), noopCategoryRepo())
		_, err := svc.CreatePost(ctx, CreatePostInput{
			UserID:  1,
			Title:   strings.Repeat("x", 301),
			Content: "body",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		categoryRepo := noopCategoryRepo()
		categoryRepo.getByNamesFn = func(_ context.Context, _ []string) ([]models.Category, error) {
			return nil, nil
		}
		svc := newTestPostService(noopPostRepo(), categoryRepo)

		_, err := svc.CreatePost(ctx, CreatePostInput{
			UserID: 1, Title: "t", Content: "c", Categories: []string{"nope"},
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("links resolved categories in the create call", func(t *testing.T) {
		var gotIDs []uint
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, post *models.Post, categoryIDs []uint) error {
			post.ID = 42
			gotIDs = categoryIDs
			return nil
		}
		categoryRepo := noopCategoryRepo()
		categoryRepo.getByNamesFn = func(_ context.Context, names []string) ([]models.Category, error) {
			return []models.Category{{ID: 8, Name: "golang"}, {ID: 9, Name: "testing"}}, nil
		}
		svc := newTestPostService(postRepo, categoryRepo)

		post, err := svc.CreatePost(ctx, CreatePostInput{
			UserID: 1, Title: "t", Content: "c",
			Categories: []string{"golang", "testing", "golang"},
		})
		require.NoError(t, err)
		assert.Equal(t, []uint{8, 9}, gotIDs)
		assert.Equal(t, uint(42), post.ID)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 5}, nil
		}
		svc := newTestPostService(postRepo, noopCategoryRepo())
		assert.NoError(t, svc.DeletePost(ctx, DeletePostInput{UserID: 5, PostID: 1}))
	})

	t.Run("stranger rejected", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 5}, nil
		}
		svc := newTestPostService(postRepo, noopCategoryRepo())
		err := svc.DeletePost(ctx, DeletePostInput{UserID: 6, PostID: 1})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	})
}

func TestPostService_ReadTimeAttached(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1, Content: strings.Repeat("word ", 401)}, nil
	}
	svc := newTestPostService(postRepo, noopCategoryRepo())

	post, err := svc.GetPost(context.Background(), 1)
	require.NoError(t, err)
	// 401 words at 200 wpm rounds up to 3 minutes
	assert.Equal(t, 3, post.ReadTime)
}
