package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dayboard/dayboard-server/internal/mocks"
	"github.com/dayboard/dayboard-server/internal/model"
	"github.com/dayboard/dayboard-server/internal/testutil"
)

var taskIdentity = model.Identity{Email: "a@b.co"}

func TestTask_Add_ReturnsList(t *testing.T) {
	store := &mocks.TaskStore{}
	svc := NewTask(store, testutil.MakeNoopLogger())

	store.On("Create", mock.Anything, "a@b.co", mock.MatchedBy(func(task model.Task) bool {
		return task.Content == "buy milk" && task.ID != uuid.Nil && !task.Completed
	})).Return(nil)
	store.On("ListByOwner", mock.Anything, "a@b.co").
		Return([]model.Task{{Content: "buy milk"}}, nil)

	tasks, err := svc.Add(context.Background(), taskIdentity, "buy milk")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Content)

	store.AssertExpectations(t)
}

func TestTask_List(t *testing.T) {
	store := &mocks.TaskStore{}
	svc := NewTask(store, testutil.MakeNoopLogger())

	store.On("ListByOwner", mock.Anything, "a@b.co").
		Return([]model.Task{{Content: "one"}, {Content: "two"}}, nil)

	tasks, err := svc.List(context.Background(), taskIdentity)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestTask_UpdateContent_NotFound(t *testing.T) {
	store := &mocks.TaskStore{}
	svc := NewTask(store, testutil.MakeNoopLogger())
	id := uuid.New()

	store.On("UpdateContent", mock.Anything, "a@b.co", id, "changed").Return(model.ErrNotFound)

	_, err := svc.UpdateContent(context.Background(), taskIdentity, id, "changed")
	assertStatus(t, err, 404)
}

func TestTask_UpdateCompletion(t *testing.T) {
	store := &mocks.TaskStore{}
	svc := NewTask(store, testutil.MakeNoopLogger())
	id := uuid.New()

	store.On("UpdateCompletion", mock.Anything, "a@b.co", id, true).Return(nil)
	store.On("ListByOwner", mock.Anything, "a@b.co").
		Return([]model.Task{{ID: id, Completed: true}}, nil)

	tasks, err := svc.UpdateCompletion(context.Background(), taskIdentity, id, true)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)
}

func TestTask_Delete(t *testing.T) {
	store := &mocks.TaskStore{}
	svc := NewTask(store, testutil.MakeNoopLogger())
	id := uuid.New()

	store.On("Delete", mock.Anything, "a@b.co", id).Return(nil)
	store.On("ListByOwner", mock.Anything, "a@b.co").Return([]model.Task{}, nil)

	tasks, err := svc.Delete(context.Background(), taskIdentity, id)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTask_Delete_NotFound(t *testing.T) {
	store := &mocks.TaskStore{}
	svc := NewTask(store, testutil.MakeNoopLogger())
	id := uuid.New()

	store.On("Delete", mock.Anything, "a@b.co", id).Return(model.ErrNotFound)

	_, err := svc.Delete(context.Background(), taskIdentity, id)
	assertStatus(t, err, 404)
}
