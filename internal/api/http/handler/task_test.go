package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	httpctx "github.com/dayboard/dayboard-server/internal/api/http/context"
	"github.com/dayboard/dayboard-server/internal/mocks"
	"github.com/dayboard/dayboard-server/internal/model"
	"github.com/dayboard/dayboard-server/internal/testutil"
)

func newTaskHandler(t *testing.T) (*Task, *mocks.TaskService) {
	svc := mocks.NewTaskService(t)
	h := NewTask(svc, httpctx.NewManager(), testutil.MakeNoopLogger())
	return h, svc
}

func muxRequest(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}

func TestTask_List(t *testing.T) {
	h, svc := newTaskHandler(t)

	svc.On("List", mock.Anything, model.Identity{Email: "a@b.co"}).
		Return([]model.Task{{ID: uuid.New(), Content: "buy milk"}}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/tasks", nil), "a@b.co")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body taskListResponse
	decodeBody(t, rec, &body)
	require.Len(t, body.Tasks, 1)
	assert.Equal(t, "buy milk", body.Tasks[0].Content)
}

func TestTask_Create(t *testing.T) {
	h, svc := newTaskHandler(t)

	svc.On("Add", mock.Anything, model.Identity{Email: "a@b.co"}, "buy milk").
		Return([]model.Task{{ID: uuid.New(), Content: "buy milk"}}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodPost, "/tasks",
		strings.NewReader(`{"content":"buy milk"}`)), "a@b.co")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body taskListResponse
	decodeBody(t, rec, &body)
	assert.Len(t, body.Tasks, 1)
}

func TestTask_Update_Completion(t *testing.T) {
	h, svc := newTaskHandler(t)
	id := uuid.New()

	svc.On("UpdateCompletion", mock.Anything, model.Identity{Email: "a@b.co"}, id, true).
		Return([]model.Task{{ID: id, Completed: true}}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodPatch, "/tasks/"+id.String(),
		strings.NewReader(`{"completed":true}`)), "a@b.co")
	req = muxRequest(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body taskListResponse
	decodeBody(t, rec, &body)
	require.Len(t, body.Tasks, 1)
	assert.True(t, body.Tasks[0].Completed)
}

func TestTask_Update_EmptyBody(t *testing.T) {
	h, _ := newTaskHandler(t)
	id := uuid.New()

	req := withIdentity(httptest.NewRequest(http.MethodPatch, "/tasks/"+id.String(),
		strings.NewReader(`{}`)), "a@b.co")
	req = muxRequest(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTask_Update_BadID(t *testing.T) {
	h, _ := newTaskHandler(t)

	req := withIdentity(httptest.NewRequest(http.MethodPatch, "/tasks/not-a-uuid",
		strings.NewReader(`{"completed":true}`)), "a@b.co")
	req = muxRequest(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTask_Delete_NotFound(t *testing.T) {
	h, svc := newTaskHandler(t)
	id := uuid.New()

	svc.On("Delete", mock.Anything, model.Identity{Email: "a@b.co"}, id).
		Return(nil, apierrors.NewErrTaskNotFound(id.String()))

	req := withIdentity(httptest.NewRequest(http.MethodDelete, "/tasks/"+id.String(), nil), "a@b.co")
	req = muxRequest(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
