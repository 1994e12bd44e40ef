package catalogapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/infra/session"

	domainerrors "storefront/internal/domain/errors"
	stderrors "storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Backend: &config.BackendConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func createAuthedContext() context.Context {
	return session.WithSession(context.Background(), &entity.Session{
		Token:    "test-token",
		FullName: "測試管理員",
		Role:     entity.RoleAdmin,
	})
}

func TestClient_UnauthenticatedShortCircuits(t *testing.T) {
	reached := false
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	categories := NewCategoryGateway(client)

	_, err := categories.ListCategories(context.Background())
	assert.True(t, stderrors.Is(err, gateway.ErrUnauthenticated))
	assert.False(t, reached)
}

func TestClient_BearerHeaderAttached(t *testing.T) {
	var authorization string
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", contentTypeJSON)
		w.Write([]byte(`[]`))
	}))
	categories := NewCategoryGateway(client)

	_, err := categories.ListCategories(createAuthedContext())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", authorization)
}

func TestClient_NotFoundMatchesSentinel(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"找不到該分類"}`))
	}))
	categories := NewCategoryGateway(client)

	err := categories.DeleteCategory(createAuthedContext(), 99)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, gateway.ErrNotFound))

	var appErr domainerrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "找不到該分類", appErr.Message())
}

func TestClient_RemoteMessageExtractedVerbatim(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"DUPLICATE","message":"分類名稱已存在"}`))
	}))
	categories := NewCategoryGateway(client)

	err := categories.CreateCategory(createAuthedContext(), gateway.CategoryDraft{Name: "飲料"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "DUPLICATE", appErr.ErrorCode())
	assert.Equal(t, "分類名稱已存在", appErr.Message())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestClient_EmptyErrorBodyFallsBackToStatusText(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	categories := NewCategoryGateway(client)

	err := categories.CreateCategory(createAuthedContext(), gateway.CategoryDraft{Name: "飲料"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), appErr.Message())
}

func TestExtractFailure(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "message field",
			body:            `{"code":"X","message":"m1","error":"m2"}`,
			expectedCode:    "X",
			expectedMessage: "m1",
		},
		{
			name:            "error field",
			body:            `{"error":"m2"}`,
			expectedMessage: "m2",
		},
		{
			name:            "spring binding errors",
			body:            `{"errors":[{"defaultMessage":"m3"},{"defaultMessage":"m4"}]}`,
			expectedMessage: "m3",
		},
		{
			name:            "raw text",
			body:            "plain failure",
			expectedMessage: "plain failure",
		},
		{
			name: "empty body",
			body: "  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := extractFailure([]byte(tt.body))
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}

func TestIsStockFailure(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		message  string
		expected bool
	}{
		{name: "structured code", code: "INSUFFICIENT_STOCK", expected: true},
		{name: "structured code alt", code: "OUT_OF_STOCK", expected: true},
		{name: "structured code lowercase", code: "insufficient_stock", expected: true},
		{name: "other code wins over text", code: "DUPLICATE", message: "out of stock", expected: false},
		{name: "english marker", message: "Requested quantity exceeds available STOCK", expected: true},
		{name: "vietnamese marker", message: "Sản phẩm đã hết hàng", expected: true},
		{name: "chinese marker", message: "商品庫存不足", expected: true},
		{name: "no marker", message: "something else went wrong", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isStockFailure(tt.code, tt.message))
		})
	}
}
