package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vsdcgateway/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// EBMClient calls the upstream EBM API. Failures are reported in the result, never as
// an error.
type EBMClient interface {
	Call(ctx context.Context, endpoint, method string, body any) models.SyncResult
}

type ebmClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewEBMClient builds a client with a single timeout and no retries. token, when set,
// is sent as a bearer token.
func NewEBMClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) EBMClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if token != "" {
		client.SetAuthToken(token)
	}
	return &ebmClient{httpClient: client, logger: logger}
}

func (c *ebmClient) Call(ctx context.Context, endpoint, method string, body any) models.SyncResult {
	req := c.httpClient.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		c.logger.Error("EBM API call failed",
			zap.String("endpoint", endpoint),
			zap.String("method", method),
			zap.Error(err),
		)
		return models.SyncResult{Success: false, Error: err.Error(), Status: http.StatusInternalServerError}
	}

	data := decodeBody(resp.Body())
	if resp.IsError() {
		c.logger.Error("EBM API returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode()),
		)
		return models.SyncResult{Success: false, Error: data, Status: resp.StatusCode()}
	}

	c.logger.Debug("EBM API call succeeded", zap.String("endpoint", endpoint), zap.Int("status_code", resp.StatusCode()))
	return models.SyncResult{Success: true, Data: data, Status: resp.StatusCode()}
}

// decodeBody returns the JSON value of raw, or raw as text when it is not JSON.
func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
