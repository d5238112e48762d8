package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	HeaderAPIVersion  = "X-API-Version"
	HeaderVSDCVersion = "X-VSDC-Spec-Version"
)

// VersionHeader stamps the gateway version and the VSDC specification revision it
// implements on every response.
func VersionHeader(apiVersion, specVersion string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(HeaderAPIVersion, apiVersion)
			c.Response().Header().Set(HeaderVSDCVersion, specVersion)
			return next(c)
		}
	}
}
