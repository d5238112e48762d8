package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"vsdcgateway/internal/common"
	"vsdcgateway/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuditRecorder stores audit entries.
type AuditRecorder interface {
	Record(ctx context.Context, entry *models.AuditEntry) error
}

// AuditMiddleware records every authenticated state-changing request
type AuditMiddleware struct {
	recorder AuditRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuditMiddleware creates a new audit middleware instance
func NewAuditMiddleware(recorder AuditRecorder, logger *zap.Logger) *AuditMiddleware {
	return &AuditMiddleware{recorder: recorder, logger: logger, now: time.Now}
}

// AuditRequest records the caller and outcome of POST, PUT, PATCH and DELETE requests. It
// must run after Auth; requests without a verified uid are not recorded. Recording
// failures are logged and never change the response.
func (m *AuditMiddleware) AuditRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqErr := next(c)

			if !isMutating(c.Request().Method) {
				return reqErr
			}
			ctx := c.Request().Context()
			uid, ok := common.GetUserIDFromContext(ctx)
			if !ok {
				return reqErr
			}
			email, _ := common.GetUserEmailFromContext(ctx)

			entry := &models.AuditEntry{
				UID:       uid,
				Email:     email,
				Method:    c.Request().Method,
				Route:     c.Path(),
				URI:       c.Request().RequestURI,
				Status:    responseStatus(c, reqErr),
				RemoteIP:  c.RealIP(),
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				CreatedAt: m.now().UTC(),
			}
			if reqErr != nil {
				entry.Error = reqErr.Error()
			}

			if err := m.recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
				m.logger.Error("failed to record audit entry",
					zap.String("route", entry.Route),
					zap.String("uid", uid),
					zap.Error(err),
				)
			}
			return reqErr
		}
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// responseStatus is the written status, or the status the error handler will write.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
