package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/api"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/mocks"
	"github.com/jsaputra/taskboard-api/internal/store"
)

func TestLabelHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates a label", func(t *testing.T) {
		t.Parallel()

		labelStore := mocks.NewMockLabelStore()
		handler := api.NewLabelHandler(labelStore)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/labels",
			jsonBody(t, map[string]string{"name": "urgent"}))
		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var created domain.Label
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "urgent", created.Name)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		t.Parallel()

		labelStore := mocks.NewMockLabelStore()
		handler := api.NewLabelHandler(labelStore)

		existing, err := domain.NewLabel("urgent")
		require.NoError(t, err)
		require.NoError(t, labelStore.Create(context.Background(), existing, nil))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/labels",
			jsonBody(t, map[string]string{"name": "urgent"}))
		handler.Create(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("attaching to an unknown task is rejected", func(t *testing.T) {
		t.Parallel()

		labelStore := mocks.NewMockLabelStore()
		labelStore.CreateFn = func(ctx context.Context, label *domain.Label, taskID *uuid.UUID) error {
			return store.ErrInvalidEntity
		}
		handler := api.NewLabelHandler(labelStore)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/labels",
			jsonBody(t, map[string]any{"name": "urgent", "task_id": uuid.NewString()}))
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLabelHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	labelStore := mocks.NewMockLabelStore()
	handler := api.NewLabelHandler(labelStore)

	label, err := domain.NewLabel("backlog")
	require.NoError(t, err)
	require.NoError(t, labelStore.Create(context.Background(), label, nil))

	req := requestWithParam(http.MethodPut, "/x", "labelId", label.ID.String(),
		jsonBody(t, map[string]string{"name": "icebox"}))
	rec := httptest.NewRecorder()
	handler.Update(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	renamed, err := labelStore.GetByID(context.Background(), label.ID)
	require.NoError(t, err)
	assert.Equal(t, "icebox", renamed.Name)

	rec = httptest.NewRecorder()
	handler.Delete(rec, requestWithParam(http.MethodDelete, "/x", "labelId", label.ID.String(), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.Get(rec, requestWithParam(http.MethodGet, "/x", "labelId", label.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
