package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/earenas/taskboard/internal/access"
	"github.com/earenas/taskboard/internal/apperr"
	"github.com/earenas/taskboard/internal/auth"
	"github.com/earenas/taskboard/internal/models"
	"github.com/earenas/taskboard/internal/services"
)

// TaskHandler handles HTTP requests for the per-user task lists.
type TaskHandler struct {
	tasks      services.TaskServiceProvider
	maxContent int
}

// NewTaskHandler creates a new TaskHandler. maxContent caps the length of a
// single task's content.
func NewTaskHandler(tasks services.TaskServiceProvider, maxContent int) *TaskHandler {
	return &TaskHandler{tasks: tasks, maxContent: maxContent}
}

// List returns the authenticated user's tasks. Query parameters:
// only_complete, only_uncomplete (mutually exclusive booleans), limit and
// page (1-based). Without a limit all matching tasks are returned in
// insertion order.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := requestUser(r)
	if err != nil {
		respondError(w, err)
		return
	}

	filter, err := parseListQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	tasks, err := h.tasks.ListTasks(user.ID, filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

// Get returns a single task owned by the authenticated user.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadOwnedTask(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"task": task})
}

// Create inserts one task per task_content query value, owned by the
// authenticated user.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := requestUser(r)
	if err != nil {
		respondError(w, err)
		return
	}

	contents := r.URL.Query()["task_content"]
	if len(contents) == 0 {
		respondError(w, apperr.New(apperr.UnprocessableQuery, "Content for the Task was not given"))
		return
	}
	for _, content := range contents {
		if err := h.checkContent(content); err != nil {
			respondError(w, err)
			return
		}
	}

	tasks, err := h.tasks.CreateTasks(user.ID, contents)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to create tasks")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("%d tasks created successfully", len(tasks)),
		"tasks":   tasks,
	})
}

// Delete removes a task owned by the authenticated user.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadOwnedTask(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.tasks.DeleteTask(task.ID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Task with id=%d deleted successfully", task.ID),
	})
}

// Change replaces the content of a task owned by the authenticated user with
// the task_content query value.
func (h *TaskHandler) Change(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadOwnedTask(r)
	if err != nil {
		respondError(w, err)
		return
	}

	query := r.URL.Query()
	if !query.Has("task_content") {
		respondError(w, apperr.New(apperr.UnprocessableQuery, "Content for the Task was not given"))
		return
	}
	content := query.Get("task_content")
	if err := h.checkContent(content); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.tasks.ChangeContent(task.ID, content)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Task changed successfully",
		"task":    updated,
	})
}

// Switch toggles the completion flag of a task owned by the authenticated
// user.
func (h *TaskHandler) Switch(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadOwnedTask(r)
	if err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.tasks.SwitchComplete(task.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Task complete field switched successfully",
		"task":    updated,
	})
}

// Help describes the available endpoints and their query parameters.
func (h *TaskHandler) Help(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"Endpoints Available Query Parameters": []map[string]any{
			{"/": map[string]string{
				"only_complete":   "bool",
				"only_uncomplete": "bool",
				"limit":           "int",
				"page":            "int",
			}},
			{"/get/{task_id}": map[string]string{"task_id": "int"}},
			{"/post/": map[string]string{"task_content": "list[str]"}},
			{"/delete/{task_id}": map[string]string{"task_id": "int"}},
			{"/change/{task_id}/": map[string]string{
				"task_id":      "int",
				"task_content": "str",
			}},
			{"/switch/{task_id}/": map[string]string{"task_id": "int"}},
			{"/logout/": map[string]string{
				"description": "Clears the access token cookie and redirects to /login/",
				"params":      "None",
			}},
		},
	})
}

// loadOwnedTask resolves the {taskID} route parameter to a task the
// authenticated user owns. Absence wins over ownership: a missing task is a
// 404 even if the id could never belong to the requester.
func (h *TaskHandler) loadOwnedTask(r *http.Request) (models.Task, error) {
	user, err := requestUser(r)
	if err != nil {
		return models.Task{}, err
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		return models.Task{}, apperr.New(apperr.UnprocessableQuery, "Task id must be an integer")
	}

	task, err := h.tasks.GetTaskByID(id)
	if err != nil {
		return models.Task{}, err
	}

	if err := access.Authorize(user, task); err != nil {
		log.Warn().Int64("user_id", user.ID).Int64("task_id", task.ID).Msg("Denied access to task")
		return models.Task{}, err
	}
	return task, nil
}

func (h *TaskHandler) checkContent(content string) error {
	if len(content) > h.maxContent {
		return apperr.New(apperr.UnprocessableQuery,
			"Task content exceeds the maximum length of %d characters", h.maxContent)
	}
	return nil
}

func requestUser(r *http.Request) (models.User, error) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		return models.User{}, fmt.Errorf("no authenticated user in request context")
	}
	return user, nil
}

func parseListQuery(r *http.Request) (services.TaskFilter, error) {
	query := r.URL.Query()
	filter := services.TaskFilter{Page: 1}

	if raw := query.Get("only_complete"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperr.New(apperr.UnprocessableQuery, "only_complete must be a boolean")
		}
		filter.OnlyComplete = v
	}
	if raw := query.Get("only_uncomplete"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperr.New(apperr.UnprocessableQuery, "only_uncomplete must be a boolean")
		}
		filter.OnlyUncomplete = v
	}
	if raw := query.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperr.New(apperr.UnprocessableQuery, "limit must be an integer")
		}
		if v <= 0 {
			return filter, apperr.New(apperr.UnprocessableQuery,
				"Unprocessable queries: limit must be greater than 0. For more info visit /help/")
		}
		filter.Limit = v
	}
	if raw := query.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperr.New(apperr.UnprocessableQuery, "page must be an integer")
		}
		filter.Page = v
	}

	return filter, filter.Validate()
}
