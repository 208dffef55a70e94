package service

import (
	"context"

	"inkwell/internal/models"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post, []uint) error
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	feedFn        func(context.Context, int, string) ([]*models.Post, error)
	getByUserIDFn func(context.Context, uint, int, int) ([]*models.Post, error)
	listByIDsFn   func(context.Context, []uint) ([]*models.Post, error)
	searchFn      func(context.Context, string, int, int) ([]*models.Post, error)
	updateFn      func(context.Context, *models.Post) error
	deleteFn      func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post, categoryIDs []uint) error {
	return s.createFn(ctx, post, categoryIDs)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Feed(ctx context.Context, page int, category string) ([]*models.Post, error) {
	return s.feedFn(ctx, page, category)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) ListByIDs(ctx context.Context, ids []uint) ([]*models.Post, error) {
	return s.listByIDsFn(ctx, ids)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit, offset int) ([]*models.Post, error) {
	return s.searchFn(ctx, query, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(_ context.Context, _ *models.Post, _ []uint) error { return nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		feedFn:        func(_ context.Context, _ int, _ string) ([]*models.Post, error) { return nil, nil },
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		listByIDsFn:   func(_ context.Context, _ []uint) ([]*models.Post, error) { return nil, nil },
		searchFn:      func(_ context.Context, _ string, _, _ int) ([]*models.Post, error) { return nil, nil },
		updateFn:      func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	getByDisplayNameFn    func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	deleteFn              func(context.Context, uint) error
	listFn                func(context.Context, int, int) ([]models.User, error)
	listByIDsFn           func(context.Context, []uint) ([]models.User, error)
	searchByDisplayNameFn func(context.Context, string, int, int) ([]models.User, error)
	setBannedFn           func(context.Context, uint, bool) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByDisplayName(ctx context.Context, name string) (*models.User, error) {
	return s.getByDisplayNameFn(ctx, name)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) ListByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.listByIDsFn(ctx, ids)
}
func (s *userRepoStub) SearchByDisplayName(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchByDisplayNameFn(ctx, q, limit, offset)
}
func (s *userRepoStub) SetBanned(ctx context.Context, id uint, banned bool) error {
	return s.setBannedFn(ctx, id, banned)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, DisplayName: "user"}, nil
		},
		getByEmailFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByDisplayNameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:           func(_ context.Context, _ *models.User) error { return nil },
		updateFn:           func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:           func(_ context.Context, _ uint) error { return nil },
		listFn:             func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		listByIDsFn: func(_ context.Context, ids []uint) ([]models.User, error) {
			users := make([]models.User, 0, len(ids))
			for _, id := range ids {
				users = append(users, models.User{ID: id, DisplayName: "user"})
			}
			return users, nil
		},
		searchByDisplayNameFn: func(_ context.Context, _ string, _, _ int) ([]models.User, error) { return nil, nil },
		setBannedFn:           func(_ context.Context, _ uint, _ bool) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn         func(context.Context, *models.Comment) error
	getByIDFn        func(context.Context, uint) (*models.Comment, error)
	listByPostFn     func(context.Context, uint) ([]*models.Comment, error)
	countByPostIDsFn func(context.Context, []uint) (map[uint]int, error)
	deleteFn         func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPostIDs(ctx context.Context, ids []uint) (map[uint]int, error) {
	return s.countByPostIDsFn(ctx, ids)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:         func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:        func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn:     func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countByPostIDsFn: func(_ context.Context, _ []uint) (map[uint]int, error) { return map[uint]int{}, nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	likeFn           func(context.Context, uint, uint) (bool, error)
	unlikeFn         func(context.Context, uint, uint) error
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	listByPostFn     func(context.Context, uint) ([]models.Like, error)
	likedPostIDsFn   func(context.Context, uint, []uint) ([]uint, error)
	countByPostIDsFn func(context.Context, []uint) (map[uint]int, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *likeRepoStub) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	return s.likedPostIDsFn(ctx, userID, postIDs)
}
func (s *likeRepoStub) CountByPostIDs(ctx context.Context, ids []uint) (map[uint]int, error) {
	return s.countByPostIDsFn(ctx, ids)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeFn:           func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn:         func(_ context.Context, _, _ uint) error { return nil },
		isLikedFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listByPostFn:     func(_ context.Context, _ uint) ([]models.Like, error) { return nil, nil },
		likedPostIDsFn:   func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
		countByPostIDsFn: func(_ context.Context, _ []uint) (map[uint]int, error) { return map[uint]int{}, nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	listFn          func(context.Context) ([]models.Category, error)
	getByNamesFn    func(context.Context, []string) ([]models.Category, error)
	createFn        func(context.Context, *models.Category) error
	listByPostIDsFn func(context.Context, []uint) (map[uint][]models.Category, error)
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByNames(ctx context.Context, names []string) ([]models.Category, error) {
	return s.getByNamesFn(ctx, names)
}
func (s *categoryRepoStub) Create(ctx context.Context, c *models.Category) error {
	return s.createFn(ctx, c)
}
func (s *categoryRepoStub) ListByPostIDs(ctx context.Context, ids []uint) (map[uint][]models.Category, error) {
	return s.listByPostIDsFn(ctx, ids)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(_ context.Context) ([]models.Category, error) { return nil, nil },
		getByNamesFn: func(_ context.Context, names []string) ([]models.Category, error) {
			cats := make([]models.Category, 0, len(names))
			for i, n := range names {
				cats = append(cats, models.Category{ID: uint(i + 1), Name: n})
			}
			return cats, nil
		},
		createFn:        func(_ context.Context, _ *models.Category) error { return nil },
		listByPostIDsFn: func(_ context.Context, _ []uint) (map[uint][]models.Category, error) { return nil, nil },
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	createFn          func(context.Context, *models.Notification) error
	listByRecipientFn func(context.Context, uint, int, int) ([]*models.Notification, error)
	countUnreadFn     func(context.Context, uint) (int64, error)
	markReadFn        func(context.Context, uint, uint) error
	markAllReadFn     func(context.Context, uint) error
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) ListByRecipient(ctx context.Context, rid uint, limit, offset int) ([]*models.Notification, error) {
	return s.listByRecipientFn(ctx, rid, limit, offset)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, rid uint) (int64, error) {
	return s.countUnreadFn(ctx, rid)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id, rid uint) error {
	return s.markReadFn(ctx, id, rid)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, rid uint) error {
	return s.markAllReadFn(ctx, rid)
}

// capturingNotificationRepo records every created notification.
func capturingNotificationRepo() (*notificationRepoStub, *[]models.Notification) {
	var captured []models.Notification
	stub := &notificationRepoStub{
		createFn: func(_ context.Context, n *models.Notification) error {
			captured = append(captured, *n)
			return nil
		},
		listByRecipientFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Notification, error) { return nil, nil },
		countUnreadFn:     func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		markReadFn:        func(_ context.Context, _, _ uint) error { return nil },
		markAllReadFn:     func(_ context.Context, _ uint) error { return nil },
	}
	return stub, &captured
}

func testEnricher() *PostEnricher {
	return NewPostEnricher(noopUserRepo(), noopCategoryRepo(), noopCommentRepo(), noopLikeRepo())
}
