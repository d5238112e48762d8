package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vsdcgateway/internal/common"
	"vsdcgateway/internal/services"
	"vsdcgateway/internal/vsdc"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const msgInvalidJSON = "Invalid JSON body"

// decodePayload reads the request body as a JSON object. Numbers are kept as json.Number
// and an empty body yields an empty payload.
func decodePayload(c echo.Context) (map[string]any, error) {
	payload := map[string]any{}
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// badJSON writes the 910 response for an undecodable body.
func badJSON(c echo.Context, err error) error {
	return common.SendParamError(c, msgInvalidJSON, err.Error())
}

// respondError maps a service error to its VSDC response. paramMsg is the resultMsg used
// for missing or malformed fields.
func respondError(c echo.Context, logger *zap.Logger, err error, paramMsg string) error {
	var (
		missingErr *services.MissingFieldsError
		invalidErr *services.InvalidFieldError
	)
	switch {
	case errors.As(err, &missingErr), errors.As(err, &invalidErr):
		return common.SendParamError(c, paramMsg, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		return common.SendNotFound(c, "Item not found", "Item not found")
	case errors.Is(err, services.ErrDeviceNotInitialized):
		return common.SendNotFound(c, "Device not initialized", "Device not initialized for this TIN")
	case errors.Is(err, services.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, vsdc.ErrorEnvelope{
			ResultCd:  vsdc.ResultParamError,
			ResultMsg: "Too many requests",
			Error:     err.Error(),
		})
	}

	logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return common.SendServerError(c, vsdc.MsgUnknownError, err.Error())
}
