package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEBMClient_Call_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items/saveItems", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resultCd":"000","resultMsg":"It is succeeded"}`))
	}))
	defer server.Close()

	client := NewEBMClient(server.URL, "secret", 5*time.Second, zap.NewNop())
	result := client.Call(context.Background(), "/items/saveItems", http.MethodPost, map[string]any{"itemCd": "RW2NTU0000012"})

	assert.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, map[string]any{"resultCd": "000", "resultMsg": "It is succeeded"}, result.Data)
	assert.Equal(t, "RW2NTU0000012", gotBody["itemCd"])
}

func TestEBMClient_Call_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"resultCd":"910","resultMsg":"Request parameter error"}`))
	}))
	defer server.Close()

	client := NewEBMClient(server.URL, "", 5*time.Second, zap.NewNop())
	result := client.Call(context.Background(), "/items/saveItems", http.MethodPost, map[string]any{})

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, map[string]any{"resultCd": "910", "resultMsg": "Request parameter error"}, result.Error)
}

func TestEBMClient_Call_PlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewEBMClient(server.URL, "", 5*time.Second, zap.NewNop())
	result := client.Call(context.Background(), "/items/saveItems", http.MethodPost, nil)

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusBadGateway, result.Status)
	assert.Equal(t, "gateway down\n", result.Error)
}

func TestEBMClient_Call_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewEBMClient(server.URL, "", 50*time.Millisecond, zap.NewNop())
	result := client.Call(context.Background(), "/items/saveItems", http.MethodPost, map[string]any{})

	assert.False(t, result.Success)
	assert.Equal(t, http.StatusInternalServerError, result.Status)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.Data)
}

func TestReceiptObjectName(t *testing.T) {
	assert.Equal(t, "receipts/100600570/sale-1.json", ReceiptObjectName("100600570", "sale-1"))
}
