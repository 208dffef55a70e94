package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// reportRepoStub is a stub for repository.ReportRepository.
type reportRepoStub struct {
	createFn  func(context.Context, *models.Report) error
	getByIDFn func(context.Context, uint) (*models.Report, error)
	listFn    func(context.Context, *bool, int, int) ([]*models.Report, error)
	resolveFn func(context.Context, uint, uint) error
}

func (s *reportRepoStub) Create(ctx context.Context, r *models.Report) error {
	return s.createFn(ctx, r)
}
func (s *reportRepoStub) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reportRepoStub) List(ctx context.Context, resolved *bool, limit, offset int) ([]*models.Report, error) {
	return s.listFn(ctx, resolved, limit, offset)
}
func (s *reportRepoStub) Resolve(ctx context.Context, id, adminID uint) error {
	return s.resolveFn(ctx, id, adminID)
}

func noopReportRepo() *reportRepoStub {
	return &reportRepoStub{
		createFn:  func(_ context.Context, _ *models.Report) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Report, error) { return &models.Report{ID: id}, nil },
		listFn:    func(_ context.Context, _ *bool, _, _ int) ([]*models.Report, error) { return nil, nil },
		resolveFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

func newTestModerationService(reportRepo *reportRepoStub, postRepo *postRepoStub, userRepo *userRepoStub) *ModerationService {
	return NewModerationService(reportRepo, postRepo, userRepo, testEnricher())
}

func TestModerationService_CreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a reason", func(t *testing.T) {
		svc := newTestModerationService(noopReportRepo(), noopPostRepo(), noopUserRepo())
		_, err := svc.CreateReport(ctx, CreateReportInput{ReporterID: 1, PostID: 2})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := newTestModerationService(noopReportRepo(), postRepo, noopUserRepo())

		_, err := svc.CreateReport(ctx, CreateReportInput{ReporterID: 1, PostID: 99, Reason: "spam"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("created open", func(t *testing.T) {
		var created *models.Report
		reportRepo := noopReportRepo()
		reportRepo.createFn = func(_ context.Context, r *models.Report) error {
			created = r
			return nil
		}
		svc := newTestModerationService(reportRepo, noopPostRepo(), noopUserRepo())

		report, err := svc.CreateReport(ctx, CreateReportInput{ReporterID: 1, PostID: 2, Reason: "spam"})
		require.NoError(t, err)
		assert.False(t, report.Resolved)
		assert.Equal(t, created, report)
	})
}

func TestModerationService_ResolveReport(t *testing.T) {
	ctx := context.Background()

	t.Run("resolving an already resolved report keeps the original resolution", func(t *testing.T) {
		original := &models.Report{ID: 1, Resolved: true, ResolvedBy: uintPtr(5)}
		reportRepo := noopReportRepo()
		reportRepo.resolveFn = func(_ context.Context, _, _ uint) error {
			// zero rows matched: already resolved
			return gorm.ErrRecordNotFound
		}
		reportRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Report, error) {
			return original, nil
		}
		svc := newTestModerationService(reportRepo, noopPostRepo(), noopUserRepo())

		report, err := svc.ResolveReport(ctx, 1, 9)
		require.NoError(t, err)
		assert.Equal(t, uint(5), *report.ResolvedBy)
	})

	t.Run("missing report is not found", func(t *testing.T) {
		reportRepo := noopReportRepo()
		reportRepo.resolveFn = func(_ context.Context, _, _ uint) error {
			return gorm.ErrRecordNotFound
		}
		reportRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Report, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := newTestModerationService(reportRepo, noopPostRepo(), noopUserRepo())

		_, err := svc.ResolveReport(ctx, 404, 9)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestModerationService_ListReports_EnrichesReporterAndPost(t *testing.T) {
	reportRepo := noopReportRepo()
	reportRepo.listFn = func(_ context.Context, _ *bool, _, _ int) ([]*models.Report, error) {
		return []*models.Report{
			{ID: 1, ReporterID: 2, PostID: 10},
			{ID: 2, ReporterID: 3, PostID: 11},
		}, nil
	}
	postRepo := noopPostRepo()
	postRepo.listByIDsFn = func(_ context.Context, ids []uint) ([]*models.Post, error) {
		return []*models.Post{{ID: 10, Title: "reported"}}, nil
	}
	svc := newTestModerationService(reportRepo, postRepo, noopUserRepo())

	reports, err := svc.ListReports(context.Background(), nil, 20, 0)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "user", reports[0].Reporter.DisplayName)
	require.NotNil(t, reports[0].Post)
	assert.Equal(t, "reported", reports[0].Post.Title)
	// post 11 not in store: report survives with a nil post
	assert.Nil(t, reports[1].Post)
}
