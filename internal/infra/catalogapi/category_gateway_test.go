package catalogapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryGateway_ListCategories(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/categories", r.URL.Path)
		w.Header().Set("Content-Type", contentTypeJSON)
		w.Write([]byte(`[{"id":1,"name":"飲料","description":"冷熱皆有"},{"id":2,"name":"甜點"}]`))
	}))
	categories := NewCategoryGateway(client)

	list, err := categories.ListCategories(createAuthedContext())
	require.NoError(t, err)
	assert.Equal(t, []entity.Category{
		{ID: 1, Name: "飲料", Description: "冷熱皆有"},
		{ID: 2, Name: "甜點"},
	}, list)
}

func TestCategoryGateway_CreateCategory_SendsPayload(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/categories", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "飲料", payload["name"])
		assert.Equal(t, "冷熱皆有", payload["description"])

		w.WriteHeader(http.StatusCreated)
	}))
	categories := NewCategoryGateway(client)

	err := categories.CreateCategory(createAuthedContext(), gateway.CategoryDraft{
		Name:        "飲料",
		Description: "冷熱皆有",
	})
	require.NoError(t, err)
}

func TestCategoryGateway_UpdateCategory_TargetsID(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/categories/3", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	categories := NewCategoryGateway(client)

	require.NoError(t, categories.UpdateCategory(createAuthedContext(), 3, gateway.CategoryDraft{Name: "湯品"}))
}

func TestCategoryGateway_DeleteCategory_TargetsID(t *testing.T) {
	client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/categories/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	categories := NewCategoryGateway(client)

	require.NoError(t, categories.DeleteCategory(createAuthedContext(), 3))
}
