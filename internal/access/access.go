// Package access enforces the single-owner model: a task is visible to and
// mutable by exactly the user that created it. There is no admin override,
// no shared ownership and no group ACLs.
package access

import (
	"github.com/earenas/taskboard/internal/apperr"
	"github.com/earenas/taskboard/internal/models"
)

// Authorize permits the operation iff user owns task. The failure names both
// ids for auditability. Callers must have established that the task exists
// first; absence is a 404, not a 403.
func Authorize(user models.User, task models.Task) error {
	if task.UserID != user.ID {
		return apperr.New(apperr.Forbidden,
			"User with id=%d does not have access to the task with id=%d", user.ID, task.ID)
	}
	return nil
}
