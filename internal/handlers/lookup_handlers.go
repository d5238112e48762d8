package handlers

import (
	"net/http"

	"vsdcgateway/internal/common"
	"vsdcgateway/internal/services"
	"vsdcgateway/internal/vsdc"

	"github.com/labstack/echo/v4"
)

// LookupHandlers serves the VSDC reference data endpoints
type LookupHandlers struct {
	lookupService services.LookupService
}

func NewLookupHandlers(lookupService services.LookupService) *LookupHandlers {
	return &LookupHandlers{lookupService: lookupService}
}

// Codes returns the code definition tables.
func (h *LookupHandlers) Codes(c echo.Context) error {
	return c.JSON(http.StatusOK, vsdc.Envelope{
		ResultCd:  vsdc.ResultSuccess,
		ResultMsg: vsdc.MsgSucceeded,
		Data:      h.lookupService.Codes(),
	})
}

func (h *LookupHandlers) SelectCodes(c echo.Context) error {
	if _, err := decodePayload(c); err != nil {
		return badJSON(c, err)
	}
	return common.SendSuccess(c, map[string]any{"cdsList": h.lookupService.CodeClasses()})
}

func (h *LookupHandlers) SelectItemClass(c echo.Context) error {
	if _, err := decodePayload(c); err != nil {
		return badJSON(c, err)
	}
	return common.SendSuccess(c, map[string]any{"itemClsList": h.lookupService.ItemClasses()})
}

func (h *LookupHandlers) SelectCustomer(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}
	return common.SendSuccess(c, map[string]any{"custList": h.lookupService.Customers(payload)})
}

func (h *LookupHandlers) SelectBranches(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return badJSON(c, err)
	}
	return common.SendSuccess(c, map[string]any{"bhfList": h.lookupService.Branches(payload)})
}
