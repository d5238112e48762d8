package handlers

import (
	"net/http"

	"vsdcgateway/internal/common"
	"vsdcgateway/internal/services"
	"vsdcgateway/internal/vsdc"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const msgItemSaved = "Item saved successfully and ready for VSDC synchronization"

// ItemHandlers handles item registration, listing, code generation and EBM sync
type ItemHandlers struct {
	itemService services.ItemService
	logger      *zap.Logger
}

func NewItemHandlers(itemService services.ItemService, logger *zap.Logger) *ItemHandlers {
	return &ItemHandlers{itemService: itemService, logger: logger}
}

// SaveItem validates and stores an item for the calling seller.
func (h *ItemHandlers) SaveItem(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}
	ctx := c.Request().Context()
	uid, _ := common.GetUserIDFromContext(ctx)

	itemCd, err := h.itemService.Create(ctx, uid, payload)
	if err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	return common.SendSuccess(c, map[string]any{
		"itemId":  itemCd,
		"message": msgItemSaved,
	})
}

func (h *ItemHandlers) SelectItems(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}

	items, err := h.itemService.ListByTin(c.Request().Context(), vsdc.String(payload["tin"]))
	if err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	return common.SendSuccess(c, map[string]any{"itemList": items})
}

// SyncItem sends a stored item to EBM. Upstream rejection is a 999 carrying the upstream
// error.
func (h *ItemHandlers) SyncItem(c echo.Context) error {
	result, err := h.itemService.Sync(c.Request().Context(), c.Param("itemCd"))
	if err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	if !result.Success {
		return common.SendServerError(c, "Failed to sync to EBM", result.Error)
	}
	return common.SendSuccessMessage(c, "Item synced successfully to EBM", result.Data)
}

func (h *ItemHandlers) GenerateItemCode(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}
	ctx := c.Request().Context()
	uid, _ := common.GetUserIDFromContext(ctx)

	code, err := h.itemService.GenerateCode(ctx, uid, vsdc.ItemCodeParts{
		OriginNationCode:  vsdc.String(payload["orgnNatCd"]),
		ItemTypeCode:      vsdc.String(payload["itemTyCd"]),
		PackagingUnitCode: vsdc.String(payload["pkgUnitCd"]),
		QuantityUnitCode:  vsdc.String(payload["qtyUnitCd"]),
		Sequence:          vsdc.String(payload["sequence"]),
	})
	if err != nil {
		return respondError(c, h.logger, err, vsdc.MsgParamError)
	}
	return c.JSON(http.StatusOK, vsdc.Envelope{
		ResultCd:  vsdc.ResultSuccess,
		ResultMsg: "Item code generated",
		Data: map[string]string{
			"itemCode": code,
			"format":   vsdc.ItemCodeFormatDescription,
		},
	})
}
