package services

import (
	"database/sql"
	"fmt"

	"github.com/earenas/taskboard/internal/apperr"
	"github.com/earenas/taskboard/internal/models"
)

// TaskFilter narrows and paginates an owner-scoped task listing.
// OnlyComplete and OnlyUncomplete are mutually exclusive. Limit == 0 means
// pagination is off and all matching rows are returned; Page is 1-based and
// only consulted when Limit is set.
type TaskFilter struct {
	OnlyComplete   bool
	OnlyUncomplete bool
	Limit          int
	Page           int
}

// Validate rejects contradictory or degenerate filter combinations. Both
// completion filters at once, or a non-positive limit/page, would silently
// produce misleading pages, so they are client errors.
func (f TaskFilter) Validate() error {
	if f.OnlyComplete && f.OnlyUncomplete {
		return apperr.New(apperr.UnprocessableQuery,
			"Unprocessable queries: only_complete and only_uncomplete cannot both be set. For more info visit /help/")
	}
	if f.Limit < 0 {
		return apperr.New(apperr.UnprocessableQuery,
			"Unprocessable queries: limit must be greater than 0. For more info visit /help/")
	}
	if f.Limit > 0 && f.Page < 1 {
		return apperr.New(apperr.UnprocessableQuery,
			"Unprocessable queries: page must be greater than 0. For more info visit /help/")
	}
	return nil
}

// TaskServiceProvider defines the interface for task services.
type TaskServiceProvider interface {
	GetTaskByID(id int64) (models.Task, error)
	ListTasks(ownerID int64, filter TaskFilter) ([]models.Task, error)
	CreateTasks(ownerID int64, contents []string) ([]models.Task, error)
	ChangeContent(id int64, content string) (models.Task, error)
	SwitchComplete(id int64) (models.Task, error)
	DeleteTask(id int64) error
}

// TaskService provides task storage and the owner-scoped query engine.
type TaskService struct {
	db *sql.DB
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *sql.DB) *TaskService {
	return &TaskService{db: db}
}

// GetTaskByID retrieves a single task regardless of owner. Ownership is the
// caller's concern; absence is reported before it can be checked.
func (s *TaskService) GetTaskByID(id int64) (models.Task, error) {
	var task models.Task
	row := s.db.QueryRow(
		"SELECT id, user_id, task_content, is_complete FROM tasks WHERE id = ?", id)
	err := row.Scan(&task.ID, &task.UserID, &task.TaskContent, &task.IsComplete)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, apperr.New(apperr.NotFound, "Task with id=%d not found", id)
		}
		return models.Task{}, fmt.Errorf("querying task %d: %w", id, err)
	}
	return task, nil
}

// ListTasks returns ownerID's tasks matching filter, in ascending id order.
// The owner predicate is unconditional: no filter combination can widen the
// result beyond the owner's rows.
func (s *TaskService) ListTasks(ownerID int64, filter TaskFilter) ([]models.Task, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := "SELECT id, user_id, task_content, is_complete FROM tasks WHERE user_id = ?"
	args := []any{ownerID}

	switch {
	case filter.OnlyComplete:
		query += " AND is_complete = 1"
	case filter.OnlyUncomplete:
		query += " AND is_complete = 0"
	}

	query += " ORDER BY id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for user %d: %w", ownerID, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.UserID, &task.TaskContent, &task.IsComplete); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// CreateTasks inserts one task per content string, owned by ownerID, inside
// a single transaction. Either every task becomes visible or none does.
func (s *TaskService) CreateTasks(ownerID int64, contents []string) ([]models.Task, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO tasks(user_id, task_content, is_complete) VALUES(?, ?, 0)")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	tasks := make([]models.Task, 0, len(contents))
	for _, content := range contents {
		res, err := stmt.Exec(ownerID, content)
		if err != nil {
			return nil, fmt.Errorf("inserting task for user %d: %w", ownerID, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, models.Task{
			ID:          id,
			UserID:      ownerID,
			TaskContent: content,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ChangeContent replaces a task's content and returns the updated task.
func (s *TaskService) ChangeContent(id int64, content string) (models.Task, error) {
	if _, err := s.db.Exec("UPDATE tasks SET task_content = ? WHERE id = ?", content, id); err != nil {
		return models.Task{}, fmt.Errorf("updating task %d: %w", id, err)
	}
	return s.GetTaskByID(id)
}

// SwitchComplete flips a task's completion flag and returns the updated task.
func (s *TaskService) SwitchComplete(id int64) (models.Task, error) {
	if _, err := s.db.Exec("UPDATE tasks SET is_complete = NOT is_complete WHERE id = ?", id); err != nil {
		return models.Task{}, fmt.Errorf("toggling task %d: %w", id, err)
	}
	return s.GetTaskByID(id)
}

// DeleteTask removes a task from the database.
func (s *TaskService) DeleteTask(id int64) error {
	if _, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return nil
}
