package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockNotificationRepository is a mock of the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]*models.Notification, error) {
	args := m.Called(ctx, recipientID, limit, offset)
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, recipientID uint) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID uint) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

func newNotificationTestServer(t *testing.T) (*Server, *MockNotificationRepository) {
	t.Helper()
	mockNotif := new(MockNotificationRepository)
	s := &Server{config: &config.Config{JWTSecret: "test_secret"}}
	s.notificationService = service.NewNotificationService(mockNotif, nil)
	return s, mockNotif
}

func TestGetNotifications(t *testing.T) {
	s, mockNotif := newNotificationTestServer(t)
	app := authedApp(3)
	app.Get("/notifications", s.GetNotifications)

	mockNotif.On("ListByRecipient", mock.Anything, uint(3), 20, 0).
		Return([]*models.Notification{
			{ID: 2, RecipientID: 3, Message: "Someone replied to your comment"},
			{ID: 1, RecipientID: 3, Message: "Someone liked your post", IsRead: true},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notifs []*models.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notifs))
	require.Len(t, notifs, 2)
	assert.False(t, notifs[0].IsRead)
	mockNotif.AssertExpectations(t)
}

func TestGetNotifications_Pagination(t *testing.T) {
	s, mockNotif := newNotificationTestServer(t)
	app := authedApp(3)
	app.Get("/notifications", s.GetNotifications)

	mockNotif.On("ListByRecipient", mock.Anything, uint(3), 5, 10).
		Return([]*models.Notification{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications?limit=5&offset=10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockNotif.AssertExpectations(t)
}

func TestGetUnreadNotificationCount(t *testing.T) {
	s, mockNotif := newNotificationTestServer(t)
	app := authedApp(3)
	app.Get("/notifications/unread_count", s.GetUnreadNotificationCount)

	mockNotif.On("CountUnread", mock.Anything, uint(3)).Return(int64(4), nil)

	req := httptest.NewRequest(http.MethodGet, "/notifications/unread_count", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(4), out["count"])
	mockNotif.AssertExpectations(t)
}

func TestMarkNotificationRead(t *testing.T) {
	s, mockNotif := newNotificationTestServer(t)
	app := authedApp(3)
	app.Put("/notifications/:id/read", s.MarkNotificationRead)

	mockNotif.On("MarkRead", mock.Anything, uint(8), uint(3)).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/notifications/8/read", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out["success"])
	mockNotif.AssertExpectations(t)
}

func TestMarkNotificationRead_NotRecipient(t *testing.T) {
	// The store scopes the update to the recipient, so a foreign id reads
	// as not found rather than leaking another user's notification.
	s, mockNotif := newNotificationTestServer(t)
	app := authedApp(3)
	app.Put("/notifications/:id/read", s.MarkNotificationRead)

	mockNotif.On("MarkRead", mock.Anything, uint(8), uint(3)).Return(gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodPut, "/notifications/8/read", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockNotif.AssertExpectations(t)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s, mockNotif := newNotificationTestServer(t)
	app := authedApp(3)
	app.Put("/notifications/read_all", s.MarkAllNotificationsRead)

	mockNotif.On("MarkAllRead", mock.Anything, uint(3)).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/notifications/read_all", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockNotif.AssertExpectations(t)
}
