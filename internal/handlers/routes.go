package handlers

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every route handler of the gateway.
type Handlers struct {
	Health         *HealthHandlers
	Lookup         *LookupHandlers
	Initialization *InitializationHandlers
	Items          *ItemHandlers
	Sales          *SalesHandlers
	Stock          *StockHandlers
}

// RegisterRoutes mounts the public routes and, behind auth, the VSDC API.
func RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, h Handlers) {
	e.GET("/", h.Health.Root)
	e.GET("/api/health", h.Health.HealthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", auth)
	api.POST("/items", h.Items.SaveItem)
	api.POST("/invoice", h.Sales.SaveInvoice)

	v := api.Group("/vsdc")
	v.POST("/initializer/selectInitInfo", h.Initialization.SelectInitInfo)
	v.GET("/device-info/:tin", h.Initialization.DeviceInfo)

	v.GET("/codes", h.Lookup.Codes)
	v.POST("/code/selectCodes", h.Lookup.SelectCodes)
	v.POST("/itemClass/selectItemsClass", h.Lookup.SelectItemClass)
	v.POST("/customers/selectCustomer", h.Lookup.SelectCustomer)
	v.POST("/branches/selectBranches", h.Lookup.SelectBranches)

	v.POST("/items/selectItems", h.Items.SelectItems)
	v.POST("/sync-item/:itemCd", h.Items.SyncItem)
	v.POST("/generate-item-code", h.Items.GenerateItemCode)

	v.POST("/trnsSales/saveSales", h.Sales.SaveSales)
	v.GET("/last-invoice/:tin", h.Sales.LastInvoice)

	v.POST("/stock/saveStockItems", h.Stock.SaveStockItems)
	v.POST("/stockMaster/saveStockMaster", h.Stock.SaveStockMaster)
}
