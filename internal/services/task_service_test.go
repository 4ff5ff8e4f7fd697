package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earenas/taskboard/internal/apperr"
	"github.com/earenas/taskboard/internal/models"
)

func seedOwner(t *testing.T, users *UserService, username string) models.User {
	t.Helper()
	user, err := users.CreateUser(username, "123", false)
	require.NoError(t, err)
	return user
}

func TestCreateTasksAssignsSequentialIDs(t *testing.T) {
	db := newTestDB(t)
	users, tasks := NewUserService(db), NewTaskService(db)
	owner := seedOwner(t, users, "user")

	created, err := tasks.CreateTasks(owner.ID, []string{"First task", "Second task"})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(2), created[1].ID)
	assert.Equal(t, "First task", created[0].TaskContent)
	assert.False(t, created[0].IsComplete)
	assert.Equal(t, owner.ID, created[0].UserID)
}

func TestListTasksIsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	users, tasks := NewUserService(db), NewTaskService(db)
	alice := seedOwner(t, users, "alice")
	bob := seedOwner(t, users, "bob")

	_, err := tasks.CreateTasks(alice.ID, []string{"alice 1", "alice 2"})
	require.NoError(t, err)
	_, err = tasks.CreateTasks(bob.ID, []string{"bob 1"})
	require.NoError(t, err)

	listed, err := tasks.ListTasks(alice.ID, TaskFilter{Page: 1})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, task := range listed {
		assert.Equal(t, alice.ID, task.UserID)
	}
}

func TestListTasksCompletionFilters(t *testing.T) {
	db := newTestDB(t)
	users, tasks := NewUserService(db), NewTaskService(db)
	owner := seedOwner(t, users, "user")

	_, err := tasks.CreateTasks(owner.ID, []string{"a", "b", "c"})
	require.NoError(t, err)
	_, err = tasks.SwitchComplete(2)
	require.NoError(t, err)

	complete, err := tasks.ListTasks(owner.ID, TaskFilter{OnlyComplete: true, Page: 1})
	require.NoError(t, err)
	require.Len(t, complete, 1)
	assert.Equal(t, int64(2), complete[0].ID)

	uncomplete, err := tasks.ListTasks(owner.ID, TaskFilter{OnlyUncomplete: true, Page: 1})
	require.NoError(t, err)
	require.Len(t, uncomplete, 2)
	assert.Equal(t, int64(1), uncomplete[0].ID)
	assert.Equal(t, int64(3), uncomplete[1].ID)
}

func TestListTasksPaginationWindows(t *testing.T) {
	db := newTestDB(t)
	users, tasks := NewUserService(db), NewTaskService(db)
	owner := seedOwner(t, users, "user")

	contents := make([]string, 7)
	for i := range contents {
		contents[i] = fmt.Sprintf("task %d", i+1)
	}
	_, err := tasks.CreateTasks(owner.ID, contents)
	require.NoError(t, err)

	all, err := tasks.ListTasks(owner.ID, TaskFilter{Page: 1})
	require.NoError(t, err)
	require.Len(t, all, 7)

	// Each page must be the matching window of the full ordered sequence.
	limit := 3
	for page := 1; page <= 3; page++ {
		listed, err := tasks.ListTasks(owner.ID, TaskFilter{Limit: limit, Page: page})
		require.NoError(t, err)

		start := (page - 1) * limit
		end := start + limit
		if end > len(all) {
			end = len(all)
		}
		assert.Equal(t, all[start:end], listed, "page %d", page)
	}
}

func TestListTasksRejectsContradictoryFilters(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskService(db)

	_, err := tasks.ListTasks(1, TaskFilter{OnlyComplete: true, OnlyUncomplete: true, Page: 1})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.UnprocessableQuery))

	_, err = tasks.ListTasks(1, TaskFilter{Limit: 5, Page: 0})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.UnprocessableQuery))

	_, err = tasks.ListTasks(1, TaskFilter{Limit: -1, Page: 1})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.UnprocessableQuery))
}

func TestSwitchCompleteIsIdempotentInPairs(t *testing.T) {
	db := newTestDB(t)
	users, tasks := NewUserService(db), NewTaskService(db)
	owner := seedOwner(t, users, "user")

	created, err := tasks.CreateTasks(owner.ID, []string{"a"})
	require.NoError(t, err)
	id := created[0].ID

	once, err := tasks.SwitchComplete(id)
	require.NoError(t, err)
	assert.True(t, once.IsComplete)

	twice, err := tasks.SwitchComplete(id)
	require.NoError(t, err)
	assert.False(t, twice.IsComplete)
}

func TestChangeContent(t *testing.T) {
	db := newTestDB(t)
	users, tasks := NewUserService(db), NewTaskService(db)
	owner := seedOwner(t, users, "user")

	created, err := tasks.CreateTasks(owner.ID, []string{"old"})
	require.NoError(t, err)

	updated, err := tasks.ChangeContent(created[0].ID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.TaskContent)
	assert.Equal(t, created[0].ID, updated.ID)
	assert.Equal(t, owner.ID, updated.UserID)
}

func TestDeleteTask(t *testing.T) {
	db := newTestDB(t)
	users, tasks := NewUserService(db), NewTaskService(db)
	owner := seedOwner(t, users, "user")

	created, err := tasks.CreateTasks(owner.ID, []string{"a"})
	require.NoError(t, err)

	require.NoError(t, tasks.DeleteTask(created[0].ID))

	_, err = tasks.GetTaskByID(created[0].ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestGetTaskByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskService(db)

	_, err := tasks.GetTaskByID(99)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, "Task with id=99 not found", err.Error())
}
