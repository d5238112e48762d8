package handlers

import (
	"vsdcgateway/internal/common"
	"vsdcgateway/internal/services"
	"vsdcgateway/internal/vsdc"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StockHandlers serves stock movements and stock master updates
type StockHandlers struct {
	stockService services.StockService
	logger       *zap.Logger
}

func NewStockHandlers(stockService services.StockService, logger *zap.Logger) *StockHandlers {
	return &StockHandlers{stockService: stockService, logger: logger}
}

func (h *StockHandlers) SaveStockItems(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}
	if _, err := h.stockService.SaveStockItems(c.Request().Context(), payload); err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	return common.SendSuccess(c, nil)
}

func (h *StockHandlers) SaveStockMaster(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}
	if _, err := h.stockService.SaveStockMaster(c.Request().Context(), payload); err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	return common.SendSuccess(c, nil)
}
