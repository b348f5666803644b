// Package policy holds the authorization rules for task operations. It is
// pure decision logic: no I/O, no state. The caller is responsible for
// authenticating the actor and loading the task with its creator id and
// assignee set before asking.
package policy

import (
	"kanban-board-api/internal/models"
)

// Operation is the kind of action an actor wants to perform on a task.
type Operation string

const (
	OpRead         Operation = "read"
	OpUpdateFields Operation = "update_fields"
	OpUpdateStatus Operation = "update_status"
	OpDelete       Operation = "delete"
	OpAssign       Operation = "assign"
	OpUnassign     Operation = "unassign"
	OpLogTime      Operation = "log_time"
)

// Allowed reports whether the actor may perform op on the task.
//
// Structural operations (update_fields, delete, assign, unassign) belong to
// the creator alone. Read, status updates and time logging are open to the
// creator or any current assignee. Everything else is denied.
func Allowed(actorID string, task *models.Task, op Operation) bool {
	if actorID == "" || task == nil {
		return false
	}

	switch op {
	case OpUpdateFields, OpDelete, OpAssign, OpUnassign:
		return task.CreatorID == actorID
	case OpRead, OpUpdateStatus, OpLogTime:
		return task.CreatorID == actorID || task.IsAssignee(actorID)
	}
	return false
}
