package common

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vsdcgateway/internal/vsdc"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
)

// WithUser stores the verified identity on ctx.
func WithUser(ctx context.Context, uid, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, uid)
	return context.WithValue(ctx, UserEmailKey, email)
}

// GetUserIDFromContext returns the verified uid.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UserIDKey).(string)
	return uid, ok && uid != ""
}

// GetUserEmailFromContext returns the verified email, if the token carried one.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok && email != ""
}

// SendSuccess writes a success envelope.
func SendSuccess(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, vsdc.Succeeded(data, time.Now()))
}

// SendSuccessMessage writes a success envelope with a custom message and no result date.
func SendSuccessMessage(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, vsdc.Envelope{
		ResultCd:  vsdc.ResultSuccess,
		ResultMsg: message,
		Data:      data,
	})
}

// SendParamError writes a 910 request parameter error.
func SendParamError(c echo.Context, message string, detail string) error {
	return c.JSON(http.StatusBadRequest, vsdc.ErrorEnvelope{
		ResultCd:  vsdc.ResultParamError,
		ResultMsg: message,
		Error:     detail,
	})
}

// SendNotFound writes a 995.
func SendNotFound(c echo.Context, message string, detail string) error {
	return c.JSON(http.StatusNotFound, vsdc.ErrorEnvelope{
		ResultCd:  vsdc.ResultNotFound,
		ResultMsg: message,
		Error:     detail,
	})
}

// SendUnauthorized writes a 401 envelope.
func SendUnauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, vsdc.ErrorEnvelope{
		ResultCd:  vsdc.ResultUnauthorized,
		ResultMsg: message,
		Error:     message,
	})
}

// SendServerError writes a 999 envelope. detail may be a string or an upstream payload.
func SendServerError(c echo.Context, message string, detail any) error {
	if message == "" {
		message = vsdc.MsgUnknownError
	}
	return c.JSON(http.StatusInternalServerError, vsdc.ErrorEnvelope{
		ResultCd:  vsdc.ResultServerError,
		ResultMsg: message,
		Error:     detail,
	})
}

// HTTPErrorHandler renders errors that escape handlers as VSDC envelopes.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := vsdc.MsgUnknownError
	detail := err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprint(he.Message)
		detail = message
	}

	resultCd := vsdc.ResultServerError
	switch {
	case code == http.StatusUnauthorized:
		resultCd = vsdc.ResultUnauthorized
	case code == http.StatusNotFound:
		resultCd = vsdc.ResultNotFound
	case code >= 400 && code < 500:
		resultCd = vsdc.ResultParamError
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, vsdc.ErrorEnvelope{ResultCd: resultCd, ResultMsg: message, Error: detail})
}
