package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByNames(ctx context.Context, names []string) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	ListByPostIDs(ctx context.Context, postIDs []uint) (map[uint][]models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.CategoriesTTL, func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	})
	return categories, err
}

func (r *categoryRepository) GetByNames(ctx context.Context, names []string) ([]models.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Category already exists")
		}
		return err
	}
	cache.Invalidate(ctx, cache.CategoriesKey)
	return nil
}

// ListByPostIDs returns the categories linked to each post in one query.
func (r *categoryRepository) ListByPostIDs(ctx context.Context, postIDs []uint) (map[uint][]models.Category, error) {
	result := make(map[uint][]models.Category, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	type row struct {
		PostID uint
		ID     uint
		Name   string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("post_categories").
		Select("post_categories.post_id, categories.id, categories.name").
		Joins("INNER JOIN categories ON categories.id = post_categories.category_id").
		Where("post_categories.post_id IN ?", postIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		result[rw.PostID] = append(result[rw.PostID], models.Category{ID: rw.ID, Name: rw.Name})
	}
	return result, nil
}
