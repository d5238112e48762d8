package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vsdcgateway/internal/common"
	"vsdcgateway/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, entry *models.AuditEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func withUser(uid string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if uid != "" {
				c.SetRequest(c.Request().WithContext(common.WithUser(c.Request().Context(), uid, "")))
			}
			return next(c)
		}
	}
}

func newAuditedEcho(recorder AuditRecorder, uid string) *echo.Echo {
	e := echo.New()
	audited := e.Group("/api", withUser(uid), NewAuditMiddleware(recorder, zap.NewNop()).AuditRequest())
	audited.POST("/items", func(c echo.Context) error { return c.JSON(http.StatusOK, map[string]string{"ok": "yes"}) })
	audited.GET("/codes", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	audited.POST("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})
	return e
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestAuditRequest_RecordsMutations(t *testing.T) {
	recorder := new(MockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *models.AuditEntry) bool {
		return e.UID == "uid-1" && e.Route == "/api/items" && e.Status == http.StatusOK && e.Error == ""
	})).Return(nil).Once()
	recorder.On("Record", mock.Anything, mock.MatchedBy(func(e *models.AuditEntry) bool {
		return e.Route == "/api/fail" && e.Status == http.StatusBadRequest && e.Error != ""
	})).Return(nil).Once()

	e := newAuditedEcho(recorder, "uid-1")
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/api/items").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/codes").Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodPost, "/api/fail").Code)

	recorder.AssertExpectations(t)
}

func TestAuditRequest_SkipsAnonymous(t *testing.T) {
	recorder := new(MockAuditRecorder)

	e := newAuditedEcho(recorder, "")
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/api/items").Code)

	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestAuditRequest_RecorderFailureIgnored(t *testing.T) {
	recorder := new(MockAuditRecorder)
	recorder.On("Record", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	e := newAuditedEcho(recorder, "uid-1")
	rec := serve(e, http.MethodPost, "/api/items")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}
