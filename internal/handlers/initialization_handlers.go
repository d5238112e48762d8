package handlers

import (
	"net/http"

	"vsdcgateway/internal/common"
	"vsdcgateway/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const msgInitParamError = "Request parameter error: Missing required fields"

// InitializationHandlers serves device initialization
type InitializationHandlers struct {
	initService services.InitializationService
	logger      *zap.Logger
}

func NewInitializationHandlers(initService services.InitializationService, logger *zap.Logger) *InitializationHandlers {
	return &InitializationHandlers{initService: initService, logger: logger}
}

func (h *InitializationHandlers) SelectInitInfo(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}

	envelope, err := h.initService.Initialize(c.Request().Context(), payload)
	if err != nil {
		return respondError(c, h.logger, err, msgInitParamError)
	}
	return c.JSON(http.StatusOK, envelope)
}

func (h *InitializationHandlers) DeviceInfo(c echo.Context) error {
	info, err := h.initService.DeviceInfo(c.Request().Context(), c.Param("tin"))
	if err != nil {
		return respondError(c, h.logger, err, msgInitParamError)
	}
	return common.SendSuccess(c, info)
}
