package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dennismwa/luidigitals/internal/errors"
	"github.com/dennismwa/luidigitals/internal/models"
	"github.com/dennismwa/luidigitals/internal/pagination"
	"github.com/dennismwa/luidigitals/internal/services"
)

// --- mock notification service ---

type mockNotificationService struct {
	getUserNotificationsFn func(userID uint, page pagination.PageRequest, unreadOnly bool) (*pagination.PageResponse[models.Notification], error)
	unreadCountFn          func(userID uint) (int64, error)
	markReadFn             func(userID, notificationID uint) error
	markAllReadFn          func(userID uint) error
}

func (m *mockNotificationService) GetUserNotifications(userID uint, page pagination.PageRequest, unreadOnly bool) (*pagination.PageResponse[models.Notification], error) {
	if m.getUserNotificationsFn != nil {
		return m.getUserNotificationsFn(userID, page, unreadOnly)
	}
	resp := pagination.NewPageResponse([]models.Notification{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockNotificationService) UnreadCount(userID uint) (int64, error) {
	if m.unreadCountFn != nil {
		return m.unreadCountFn(userID)
	}
	return 0, nil
}

func (m *mockNotificationService) MarkRead(userID, notificationID uint) error {
	if m.markReadFn != nil {
		return m.markReadFn(userID, notificationID)
	}
	return nil
}

func (m *mockNotificationService) MarkAllRead(userID uint) error {
	if m.markAllReadFn != nil {
		return m.markAllReadFn(userID)
	}
	return nil
}

var _ services.NotificationServicer = (*mockNotificationService)(nil)

func setupNotificationRouter(handler *NotificationHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.GET("/notifications", handler.GetNotifications)
	auth.GET("/notifications/unread-count", handler.GetUnreadCount)
	auth.POST("/notifications/read-all", handler.MarkAllRead)
	auth.POST("/notifications/:id/read", handler.MarkRead)
	return r
}

func TestNotificationHandler_GetNotifications(t *testing.T) {
	t.Run("passes unread_only flag", func(t *testing.T) {
		var gotUnreadOnly bool
		notifySvc := &mockNotificationService{
			getUserNotificationsFn: func(_ uint, page pagination.PageRequest, unreadOnly bool) (*pagination.PageResponse[models.Notification], error) {
				gotUnreadOnly = unreadOnly
				resp := pagination.NewPageResponse([]models.Notification{
					{Base: models.Base{ID: 1}, Title: "Low Balance Alert"},
				}, page.Page, page.PageSize, 1)
				return &resp, nil
			},
		}
		handler := NewNotificationHandler(notifySvc)
		r := setupNotificationRouter(handler)

		rec := doRequest(r, "GET", "/notifications?unread_only=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotUnreadOnly {
			t.Error("expected unread_only to be passed through")
		}
		result := parseJSON(t, rec)
		if len(result["data"].([]interface{})) != 1 {
			t.Errorf("expected 1 notification, got %v", result["data"])
		}
	})
}

func TestNotificationHandler_GetUnreadCount(t *testing.T) {
	t.Run("returns count", func(t *testing.T) {
		notifySvc := &mockNotificationService{
			unreadCountFn: func(_ uint) (int64, error) { return 4, nil },
		}
		handler := NewNotificationHandler(notifySvc)
		r := setupNotificationRouter(handler)

		rec := doRequest(r, "GET", "/notifications/unread-count", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["unread_count"] != float64(4) {
			t.Errorf("expected unread_count 4, got %v", result["unread_count"])
		}
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	t.Run("marks the requested notification", func(t *testing.T) {
		var gotID uint
		notifySvc := &mockNotificationService{
			markReadFn: func(_, notificationID uint) error {
				gotID = notificationID
				return nil
			},
		}
		handler := NewNotificationHandler(notifySvc)
		r := setupNotificationRouter(handler)

		rec := doRequest(r, "POST", "/notifications/7/read", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != 7 {
			t.Errorf("expected notification 7, got %d", gotID)
		}
	})

	t.Run("returns 404 when notification missing", func(t *testing.T) {
		notifySvc := &mockNotificationService{
			markReadFn: func(_, _ uint) error {
				return apperrors.ErrNotificationNotFound
			},
		}
		handler := NewNotificationHandler(notifySvc)
		r := setupNotificationRouter(handler)

		rec := doRequest(r, "POST", "/notifications/99/read", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOTIFICATION_NOT_FOUND")
	})
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	t.Run("returns confirmation", func(t *testing.T) {
		called := false
		notifySvc := &mockNotificationService{
			markAllReadFn: func(_ uint) error {
				called = true
				return nil
			},
		}
		handler := NewNotificationHandler(notifySvc)
		r := setupNotificationRouter(handler)

		rec := doRequest(r, "POST", "/notifications/read-all", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !called {
			t.Error("expected mark-all-read to be called")
		}
	})
}
