package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/task"
)

func post(t *testing.T, h *Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestServeHTTP_UnsupportedFunction(t *testing.T) {
	h := NewHandler(task.NewMemoryRepo(), nil)

	rec := post(t, h, "/mcp/unknown_fn", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, "Function unknown_fn not supported", out["error"])
}

func TestServeHTTP_InvalidJSONBody(t *testing.T) {
	h := NewHandler(task.NewMemoryRepo(), nil)

	for _, body := range []string{"", "{", `"just a string"`, `[1,2,3]`} {
		rec := post(t, h, "/mcp/list_tasks", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		out := decodeBody(t, rec)
		assert.Equal(t, "Invalid JSON in request body", out["error"], "body=%q", body)
	}
}

func TestServeHTTP_InvalidJSONCheckedBeforeFunctionName(t *testing.T) {
	h := NewHandler(task.NewMemoryRepo(), nil)

	rec := post(t, h, "/mcp/unknown_fn", `{`)

	out := decodeBody(t, rec)
	assert.Equal(t, "Invalid JSON in request body", out["error"])
}

func TestServeHTTP_MethodNotAllowed(t *testing.T) {
	h := NewHandler(task.NewMemoryRepo(), nil)

	req := httptest.NewRequest(http.MethodGet, "/mcp/list_tasks", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeHTTP_MissingFunctionName(t *testing.T) {
	h := NewHandler(task.NewMemoryRepo(), nil)

	rec := post(t, h, "/mcp/", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeHTTP_LogicalErrorsStay200(t *testing.T) {
	h := NewHandler(task.NewMemoryRepo(), nil)

	rec := post(t, h, "/mcp/get_task", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, "task_id parameter is required", out["error"])
}

func TestServeHTTP_FullCRUDFlow(t *testing.T) {
	h := NewHandler(task.NewMemoryRepo(), nil)

	created := decodeBody(t, post(t, h, "/mcp/create_task", `{"title":"Write spec"}`))
	id, ok := created["task_id"].(string)
	require.True(t, ok)

	listed := decodeBody(t, post(t, h, "/mcp/list_tasks", `{}`))
	tasks, ok := listed["tasks"].([]any)
	require.True(t, ok)
	assert.Len(t, tasks, 1)

	updated := decodeBody(t, post(t, h, "/mcp/update_task", `{"task_id":"`+id+`","status":"completed"}`))
	updatedTask, ok := updated["task"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "completed", updatedTask["status"])

	deleted := decodeBody(t, post(t, h, "/mcp/delete_task", `{"task_id":"`+id+`"}`))
	assert.Equal(t, true, deleted["success"])

	missing := decodeBody(t, post(t, h, "/mcp/get_task", `{"task_id":"`+id+`"}`))
	assert.Equal(t, "Task with ID "+id+" not found", missing["error"])
}

type panickingRepo struct {
	task.Repo
}

func (panickingRepo) List(_ context.Context) ([]task.Task, error) {
	panic("store exploded")
}

func TestServeHTTP_PanicBecomesErrorPayload(t *testing.T) {
	h := NewHandler(panickingRepo{}, nil)

	rec := post(t, h, "/mcp/list_tasks", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, "store exploded", out["error"])
}
