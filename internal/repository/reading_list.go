package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ReadingListRepository defines persistence operations for reading lists.
type ReadingListRepository interface {
	Create(ctx context.Context, list *models.ReadingList) error
	GetByID(ctx context.Context, id uint) (*models.ReadingList, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.ReadingList, error)
	Update(ctx context.Context, list *models.ReadingList) error
	Delete(ctx context.Context, id uint) error
	AddPost(ctx context.Context, listID, postID uint) error
	RemovePost(ctx context.Context, listID, postID uint) error
	PostIDs(ctx context.Context, listID uint) ([]uint, error)
}

type readingListRepository struct {
	db *gorm.DB
}

// NewReadingListRepository creates a new ReadingListRepository
func NewReadingListRepository(db *gorm.DB) ReadingListRepository {
	return &readingListRepository{db: db}
}

func (r *readingListRepository) Create(ctx context.Context, list *models.ReadingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *readingListRepository) GetByID(ctx context.Context, id uint) (*models.ReadingList, error) {
	var list models.ReadingList
	key := cache.ReadingListKey(id)

	err := cache.Aside(ctx, key, &list, cache.ReadingListTTL, func() error {
		return r.db.WithContext(ctx).First(&list, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *readingListRepository) ListByUser(ctx context.Context, userID uint) ([]*models.ReadingList, error) {
	var lists []*models.ReadingList
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (r *readingListRepository) Update(ctx context.Context, list *models.ReadingList) error {
	if err := r.db.WithContext(ctx).Save(list).Error; err != nil {
		return err
	}
	cache.InvalidateReadingList(ctx, list.ID)
	return nil
}

func (r *readingListRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reading_list_id = ?", id).Delete(&models.ReadingListPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ReadingList{}, id).Error
	})
	if err == nil {
		cache.InvalidateReadingList(ctx, id)
	}
	return err
}

// AddPost links a post to a list. Saving the same post twice is a no-op.
func (r *readingListRepository) AddPost(ctx context.Context, listID, postID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO reading_list_posts (reading_list_id, post_id, created_at)
		 VALUES (?, ?, NOW())
		 ON CONFLICT (reading_list_id, post_id) DO NOTHING`,
		listID, postID,
	).Error
	if err == nil {
		cache.InvalidateReadingList(ctx, listID)
	}
	return err
}

func (r *readingListRepository) RemovePost(ctx context.Context, listID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("reading_list_id = ? AND post_id = ?", listID, postID).
		Delete(&models.ReadingListPost{}).Error
	if err == nil {
		cache.InvalidateReadingList(ctx, listID)
	}
	return err
}

// PostIDs returns the saved post IDs in most-recently-saved order.
func (r *readingListRepository) PostIDs(ctx context.Context, listID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ReadingListPost{}).
		Where("reading_list_id = ?", listID).
		Order("created_at DESC").
		Pluck("post_id", &ids).Error
	return ids, err
}
