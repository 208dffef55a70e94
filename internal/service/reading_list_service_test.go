package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readingListRepoStub is a stub for repository.ReadingListRepository.
type readingListRepoStub struct {
	createFn     func(context.Context, *models.ReadingList) error
	getByIDFn    func(context.Context, uint) (*models.ReadingList, error)
	listByUserFn func(context.Context, uint) ([]*models.ReadingList, error)
	updateFn     func(context.Context, *models.ReadingList) error
	deleteFn     func(context.Context, uint) error
	addPostFn    func(context.Context, uint, uint) error
	removePostFn func(context.Context, uint, uint) error
	postIDsFn    func(context.Context, uint) ([]uint, error)
}

func (s *readingListRepoStub) Create(ctx context.Context, list *models.ReadingList) error {
	return s.createFn(ctx, list)
}
func (s *readingListRepoStub) GetByID(ctx context.Context, id uint) (*models.ReadingList, error) {
	return s.getByIDFn(ctx, id)
}
func (s *readingListRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.ReadingList, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *readingListRepoStub) Update(ctx context.Context, list *models.ReadingList) error {
	return s.updateFn(ctx, list)
}
func (s *readingListRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *readingListRepoStub) AddPost(ctx context.Context, listID, postID uint) error {
	return s.addPostFn(ctx, listID, postID)
}
func (s *readingListRepoStub) RemovePost(ctx context.Context, listID, postID uint) error {
	return s.removePostFn(ctx, listID, postID)
}
func (s *readingListRepoStub) PostIDs(ctx context.Context, listID uint) ([]uint, error) {
	return s.postIDsFn(ctx, listID)
}

func noopReadingListRepo() *readingListRepoStub {
	return &readingListRepoStub{
		createFn: func(_ context.Context, _ *models.ReadingList) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.ReadingList, error) {
			return &models.ReadingList{ID: id, UserID: 1, IsPublic: true}, nil
		},
		listByUserFn: func(_ context.Context, _ uint) ([]*models.ReadingList, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.ReadingList) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		addPostFn:    func(_ context.Context, _, _ uint) error { return nil },
		removePostFn: func(_ context.Context, _, _ uint) error { return nil },
		postIDsFn:    func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

func newTestReadingListService(listRepo *readingListRepoStub, postRepo *postRepoStub) *ReadingListService {
	return NewReadingListService(listRepo, postRepo, testEnricher())
}

func TestReadingListService_GetList(t *testing.T) {
	ctx := context.Background()

	t.Run("private list hidden from non-owners", func(t *testing.T) {
		listRepo := noopReadingListRepo()
		listRepo.getByIDFn = func(_ context.Context, id uint) (*models.ReadingList, error) {
			return &models.ReadingList{ID: id, UserID: 1, IsPublic: false}, nil
		}
		svc := newTestReadingListService(listRepo, noopPostRepo())

		_, err := svc.GetList(ctx, 7, 2)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)

		// the owner still sees it
		list, err := svc.GetList(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(7), list.ID)
	})

	t.Run("posts come back in saved order", func(t *testing.T) {
		listRepo := noopReadingListRepo()
		listRepo.postIDsFn = func(_ context.Context, _ uint) ([]uint, error) {
			return []uint{30, 10, 20}, nil
		}
		postRepo := noopPostRepo()
		postRepo.listByIDsFn = func(_ context.Context, ids []uint) ([]*models.Post, error) {
			// storage order, not saved order
			return []*models.Post{{ID: 10}, {ID: 20}, {ID: 30}}, nil
		}
		svc := newTestReadingListService(listRepo, postRepo)

		list, err := svc.GetList(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, list.Posts, 3)
		assert.Equal(t, uint(30), list.Posts[0].ID)
		assert.Equal(t, uint(10), list.Posts[1].ID)
		assert.Equal(t, uint(20), list.Posts[2].ID)
	})

	t.Run("ids pointing at deleted posts are skipped", func(t *testing.T) {
		listRepo := noopReadingListRepo()
		listRepo.postIDsFn = func(_ context.Context, _ uint) ([]uint, error) {
			return []uint{5, 6}, nil
		}
		postRepo := noopPostRepo()
		postRepo.listByIDsFn = func(_ context.Context, _ []uint) ([]*models.Post, error) {
			return []*models.Post{{ID: 6}}, nil
		}
		svc := newTestReadingListService(listRepo, postRepo)

		list, err := svc.GetList(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, list.Posts, 1)
		assert.Equal(t, uint(6), list.Posts[0].ID)
	})
}

func TestReadingListService_ListsForUser(t *testing.T) {
	listRepo := noopReadingListRepo()
	listRepo.listByUserFn = func(_ context.Context, _ uint) ([]*models.ReadingList, error) {
		return []*models.ReadingList{
			{ID: 1, UserID: 1, IsPublic: true},
			{ID: 2, UserID: 1, IsPublic: false},
		}, nil
	}
	svc := newTestReadingListService(listRepo, noopPostRepo())

	asOwner, err := svc.ListsForUser(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, asOwner, 2)

	asVisitor, err := svc.ListsForUser(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, asVisitor, 1)
	assert.Equal(t, uint(1), asVisitor[0].ID)
}

func TestReadingListService_OwnershipChecks(t *testing.T) {
	ctx := context.Background()
	listRepo := noopReadingListRepo()
	listRepo.getByIDFn = func(_ context.Context, id uint) (*models.ReadingList, error) {
		return &models.ReadingList{ID: id, UserID: 1, IsPublic: true}, nil
	}
	svc := newTestReadingListService(listRepo, noopPostRepo())

	var appErr *models.AppError

	err := svc.DeleteList(ctx, 1, 2)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	err = svc.AddPost(ctx, 1, 5, 2)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	// the owner can do both
	require.NoError(t, svc.DeleteList(ctx, 1, 1))
	require.NoError(t, svc.AddPost(ctx, 1, 5, 1))
}

func TestReadingListService_CreateList_Validation(t *testing.T) {
	svc := newTestReadingListService(noopReadingListRepo(), noopPostRepo())

	_, err := svc.CreateList(context.Background(), CreateReadingListInput{UserID: 1})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
