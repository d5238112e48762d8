package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "VSDC Backend API"
	serviceVersion = "1.0.4"
	specReference  = "VSDC Specification v1.0.4 (8th April, 2022)"

	healthCheckTimeout = 3 * time.Second
)

// Pinger is a dependency whose reachability is reported by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlers serves the service banner and the health check
type HealthHandlers struct {
	environment string
	ebmURL      string
	requestForm string
	checks      map[string]Pinger
	now         func() time.Time
}

// NewHealthHandlers creates a new health handlers instance. Nil checks are skipped.
func NewHealthHandlers(environment, ebmURL, requestFormURL string, checks map[string]Pinger) *HealthHandlers {
	active := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			active[name] = p
		}
	}
	return &HealthHandlers{
		environment: environment,
		ebmURL:      ebmURL,
		requestForm: requestFormURL,
		checks:      active,
		now:         time.Now,
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status      string            `json:"status"`
	Timestamp   string            `json:"timestamp"`
	Environment string            `json:"environment"`
	VsdcAPIURL  string            `json:"vsdcApiUrl"`
	RequestForm string            `json:"vsdcRequestForm"`
	Services    map[string]string `json:"services,omitempty"`
}

func (h *HealthHandlers) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service":       serviceName,
		"version":       serviceVersion,
		"environment":   h.environment,
		"status":        "running",
		"documentation": specReference,
	})
}

// HealthCheck reports the gateway as healthy, or degraded when a dependency is unreachable.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	health := &HealthStatus{
		Status:      "healthy",
		Timestamp:   h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Environment: h.environment,
		VsdcAPIURL:  h.ebmURL,
		RequestForm: h.requestForm,
	}
	if len(h.checks) > 0 {
		health.Services = make(map[string]string, len(h.checks))
	}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			health.Services[name] = "unhealthy"
			health.Status = "degraded"
			continue
		}
		health.Services[name] = "healthy"
	}

	return c.JSON(http.StatusOK, health)
}
