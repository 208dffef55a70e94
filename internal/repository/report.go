package repository

import (
	"context"
	"time"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ReportRepository defines persistence operations for post reports.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	List(ctx context.Context, resolved *bool, limit, offset int) ([]*models.Report, error)
	Resolve(ctx context.Context, id uint, adminID uint) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns reports newest first. A nil resolved filter returns all.
func (r *reportRepository) List(ctx context.Context, resolved *bool, limit, offset int) ([]*models.Report, error) {
	q := r.db.WithContext(ctx).Model(&models.Report{})
	if resolved != nil {
		q = q.Where("resolved = ?", *resolved)
	}
	var reports []*models.Report
	err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	return reports, err
}

// Resolve marks a report handled. Resolution is one-way; resolving an already
// resolved report leaves the original resolution untouched.
func (r *reportRepository) Resolve(ctx context.Context, id uint, adminID uint) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ? AND resolved = ?", id, false).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_at": &now,
			"resolved_by": adminID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either missing or already resolved; let the caller distinguish.
		return gorm.ErrRecordNotFound
	}
	return nil
}
