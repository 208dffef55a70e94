package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReportRepository is a mock of the ReportRepository interface
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context, resolved *bool, limit, offset int) ([]*models.Report, error) {
	args := m.Called(ctx, resolved, limit, offset)
	return args.Get(0).([]*models.Report), args.Error(1)
}

func (m *MockReportRepository) Resolve(ctx context.Context, id uint, adminID uint) error {
	args := m.Called(ctx, id, adminID)
	return args.Error(0)
}

func newReportTestServer(t *testing.T) (*Server, *MockReportRepository, *MockPostRepository) {
	t.Helper()
	mockReport := new(MockReportRepository)
	mockPost := new(MockPostRepository)
	mockUser := new(MockUserRepository)
	mockCategory := new(MockCategoryRepository)
	mockComment := new(MockCommentRepository)
	mockLike := new(MockLikeRepository)

	mockUser.On("ListByIDs", mock.Anything, mock.Anything).Return([]models.User{}, nil).Maybe()
	mockPost.On("ListByIDs", mock.Anything, mock.Anything).Return([]*models.Post{}, nil).Maybe()
	mockCategory.On("ListByPostIDs", mock.Anything, mock.Anything).Return(map[uint][]models.Category{}, nil).Maybe()
	mockComment.On("CountByPostIDs", mock.Anything, mock.Anything).Return(map[uint]int{}, nil).Maybe()
	mockLike.On("CountByPostIDs", mock.Anything, mock.Anything).Return(map[uint]int{}, nil).Maybe()

	s := &Server{}
	enricher := service.NewPostEnricher(mockUser, mockCategory, mockComment, mockLike)
	s.moderationService = service.NewModerationService(mockReport, mockPost, mockUser, enricher)
	return s, mockReport, mockPost
}

func TestCreateReport(t *testing.T) {
	s, mockReport, mockPost := newReportTestServer(t)
	app := authedApp(4)
	app.Post("/reports", s.CreateReport)

	mockPost.On("GetByID", mock.Anything, uint(7)).Return(&models.Post{ID: 7}, nil)
	mockReport.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Report).ID = 1
		}).Return(nil)

	body, _ := json.Marshal(map[string]any{"post_id": 7, "reason": "Spam"})
	req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report models.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, uint(4), report.ReporterID)
	assert.Equal(t, uint(7), report.PostID)
	assert.False(t, report.Resolved)
	mockReport.AssertExpectations(t)
}

func TestCreateReport_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"Missing Post ID", map[string]any{"reason": "Spam"}},
		{"Missing Reason", map[string]any{"post_id": 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockReport, _ := newReportTestServer(t)
			app := authedApp(4)
			app.Post("/reports", s.CreateReport)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			mockReport.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGetReports_ResolvedFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		resolved *bool
	}{
		{"No Filter", "", nil},
		{"Open Only", "?resolved=false", boolPtr(false)},
		{"Resolved Only", "?resolved=true", boolPtr(true)},
		{"Numeric True", "?resolved=1", boolPtr(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockReport, _ := newReportTestServer(t)
			app := authedApp(9)
			app.Get("/reports", s.GetReports)

			mockReport.On("List", mock.Anything, tt.resolved, 20, 0).
				Return([]*models.Report{}, nil)

			req := httptest.NewRequest(http.MethodGet, "/reports"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			mockReport.AssertExpectations(t)
		})
	}
}

func TestResolveReport(t *testing.T) {
	s, mockReport, _ := newReportTestServer(t)
	app := authedApp(9)
	app.Put("/reports/:id/resolve", s.ResolveReport)

	adminID := uint(9)
	mockReport.On("Resolve", mock.Anything, uint(3), adminID).Return(nil)
	mockReport.On("GetByID", mock.Anything, uint(3)).
		Return(&models.Report{ID: 3, PostID: 7, Resolved: true, ResolvedBy: &adminID}, nil)

	req := httptest.NewRequest(http.MethodPut, "/reports/3/resolve", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report models.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Resolved)
	require.NotNil(t, report.ResolvedBy)
	assert.Equal(t, adminID, *report.ResolvedBy)
	mockReport.AssertExpectations(t)
}

func boolPtr(b bool) *bool { return &b }
