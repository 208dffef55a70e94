package service

import (
	"context"
	"errors"

	"inkwell/internal/enrich"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// ModerationService handles post reports and admin moderation actions.
type ModerationService struct {
	reportRepo repository.ReportRepository
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	enricher   *PostEnricher
}

type CreateReportInput struct {
	ReporterID uint
	PostID     uint
	Reason     string
}

// NewModerationService returns a new ModerationService.
func NewModerationService(
	reportRepo repository.ReportRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	enricher *PostEnricher,
) *ModerationService {
	return &ModerationService{
		reportRepo: reportRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
		enricher:   enricher,
	}
}

func (s *ModerationService) CreateReport(ctx context.Context, in CreateReportInput) (*models.Report, error) {
	const maxReasonLen = 2000

	if in.Reason == "" {
		return nil, models.NewValidationError("Reason is required")
	}
	if len(in.Reason) > maxReasonLen {
		return nil, models.NewValidationError("Reason too long (max 2000 characters)")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	report := &models.Report{
		ReporterID: in.ReporterID,
		PostID:     in.PostID,
		Reason:     in.Reason,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports returns reports for admin review, with the reporter summary and
// reported post attached. A nil resolved filter returns both open and
// resolved reports.
func (s *ModerationService) ListReports(ctx context.Context, resolved *bool, limit, offset int) ([]*models.Report, error) {
	reports, err := s.reportRepo.List(ctx, resolved, limit, offset)
	if err != nil {
		return nil, err
	}

	enrich.Attach(ctx, "report_reporter", reports,
		func(r *models.Report) uint { return r.ReporterID },
		func(ctx context.Context, ids []uint) ([]models.User, error) {
			return s.userRepo.ListByIDs(ctx, ids)
		},
		func(u models.User) uint { return u.ID },
		func(r *models.Report, u models.User, found bool) {
			if !found {
				r.Reporter = models.PlaceholderAuthor()
				return
			}
			r.Reporter = u.Summary()
		},
	)

	enrich.Attach(ctx, "report_post", reports,
		func(r *models.Report) uint { return r.PostID },
		func(ctx context.Context, ids []uint) ([]*models.Post, error) {
			return s.postRepo.ListByIDs(ctx, ids)
		},
		func(p *models.Post) uint { return p.ID },
		func(r *models.Report, p *models.Post, found bool) {
			if !found {
				r.Post = nil
				return
			}
			r.Post = p
		},
	)

	return reports, nil
}

// ResolveReport marks a report handled by the given admin. Resolving an
// already resolved report succeeds without touching the original resolution.
func (s *ModerationService) ResolveReport(ctx context.Context, reportID, adminID uint) (*models.Report, error) {
	err := s.reportRepo.Resolve(ctx, reportID, adminID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	report, getErr := s.reportRepo.GetByID(ctx, reportID)
	if getErr != nil {
		if errors.Is(getErr, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Report", reportID)
		}
		return nil, getErr
	}
	return report, nil
}

// BanUser flips the banned flag on a profile. Banned users are rejected at
// login; tokens already issued stay valid until they expire.
func (s *ModerationService) BanUser(ctx context.Context, targetID uint, banned bool) (*models.User, error) {
	if err := s.userRepo.SetBanned(ctx, targetID, banned); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, targetID)
}
