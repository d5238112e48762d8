package handlers

import (
	"errors"
	"net/http"

	"vsdcgateway/internal/common"
	"vsdcgateway/internal/services"
	"vsdcgateway/internal/vsdc"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SalesHandlers serves sales transactions, last invoice lookup and the legacy invoice route
type SalesHandlers struct {
	salesService services.SalesService
	logger       *zap.Logger
}

func NewSalesHandlers(salesService services.SalesService, logger *zap.Logger) *SalesHandlers {
	return &SalesHandlers{salesService: salesService, logger: logger}
}

func (h *SalesHandlers) SaveSales(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}
	ctx := c.Request().Context()
	uid, _ := common.GetUserIDFromContext(ctx)

	receipt, err := h.salesService.Save(ctx, uid, payload)
	if err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	return common.SendSuccess(c, receipt)
}

func (h *SalesHandlers) LastInvoice(c echo.Context) error {
	last, err := h.salesService.LastInvoice(c.Request().Context(), c.Param("tin"))
	if err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	return common.SendSuccess(c, last)
}

// SaveInvoice keeps the pre-VSDC response shape: a bare result object or {"error": ...}.
func (h *SalesHandlers) SaveInvoice(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msgInvalidJSON})
	}
	ctx := c.Request().Context()
	uid, _ := common.GetUserIDFromContext(ctx)

	result, err := h.salesService.SaveLegacyInvoice(ctx, uid, payload)
	if err != nil {
		var missingErr *services.MissingFieldsError
		if errors.As(err, &missingErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing adminId, districtId or schoolId"})
		}
		h.logger.Error("failed to save invoice", zap.String("seller_uid", uid), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error"})
	}
	return c.JSON(http.StatusOK, result)
}
