package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/mapper"
)

// Shared behavior of the two reference catalogs: task statuses and labels.

func TestStatusCRUDOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")
	actor := "ada@example.com"

	w := ts.do(t, http.MethodPost, "/api/task_statuses", actor, mapper.TaskStatusCreateDTO{Name: "Draft", Slug: "draft"})
	require.Equal(t, http.StatusCreated, w.Code)
	st := data[mapper.TaskStatusDTO](t, w)

	w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/task_statuses/%d", st.ID), actor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "draft", data[mapper.TaskStatusDTO](t, w).Slug)

	w = ts.rawJSON(t, http.MethodPatch, fmt.Sprintf("/api/task_statuses/%d", st.ID), actor, `{"name":"Drafting"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Drafting", data[mapper.TaskStatusDTO](t, w).Name)

	w = ts.do(t, http.MethodGet, "/api/task_statuses", actor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/task_statuses/%d", st.ID), actor, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestStatusDuplicateSlugConflict(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")
	actor := "ada@example.com"

	w := ts.do(t, http.MethodPost, "/api/task_statuses", actor, mapper.TaskStatusCreateDTO{Name: "Draft", Slug: "draft"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = ts.do(t, http.MethodPost, "/api/task_statuses", actor, mapper.TaskStatusCreateDTO{Name: "Other", Slug: "draft"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStatusDeleteWhileReferencedConflict(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")
	actor := "ada@example.com"
	statusID, _ := ts.seedWorkflow(t, actor)

	w := ts.do(t, http.MethodPost, "/api/tasks", actor, map[string]any{"title": "t", "status": "draft"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/task_statuses/%d", statusID), actor, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(t, http.MethodGet, fmt.Sprintf("/api/task_statuses/%d", statusID), actor, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLabelCRUDOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")
	actor := "ada@example.com"

	w := ts.do(t, http.MethodPost, "/api/labels", actor, mapper.LabelCreateDTO{Name: "bug"})
	require.Equal(t, http.StatusCreated, w.Code)
	l := data[mapper.LabelDTO](t, w)

	w = ts.rawJSON(t, http.MethodPatch, fmt.Sprintf("/api/labels/%d", l.ID), actor, `{"name":"defect"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "defect", data[mapper.LabelDTO](t, w).Name)

	w = ts.do(t, http.MethodGet, "/api/labels", actor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/labels/%d", l.ID), actor, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLabelNameTooShort(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")

	w := ts.do(t, http.MethodPost, "/api/labels", "ada@example.com", mapper.LabelCreateDTO{Name: "ab"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLabelDeleteWhileAttachedConflict(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "ada@example.com")
	actor := "ada@example.com"
	_, labelID := ts.seedWorkflow(t, actor)

	w := ts.do(t, http.MethodPost, "/api/tasks", actor, map[string]any{
		"title": "t", "status": "draft", "taskLabelIds": []int64{labelID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodDelete, fmt.Sprintf("/api/labels/%d", labelID), actor, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCatalogRoutesRequireAuth(t *testing.T) {
	ts := newTestServer(t)
	for _, path := range []string{"/api/task_statuses", "/api/labels", "/api/tasks"} {
		w := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
