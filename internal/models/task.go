package models

// Task is a single to-do item. UserID is set at creation and never
// transferred to another owner.
type Task struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	TaskContent string `json:"task_content"`
	IsComplete  bool   `json:"is_complete"`
}
