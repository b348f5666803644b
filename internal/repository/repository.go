package repository

import (
	"context"
	"fmt"

	"kanban-board-api/internal/models"
)

// StorageError wraps a backing-store failure (connectivity, constraint
// violation). Callers treat it as an internal error and do not interpret it
// further.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TaskFilter narrows task listings. All fields are optional and AND together.
// VisibleTo restricts results to tasks the given user created or is assigned
// to ("my tasks" scope); leave nil for a global listing.
type TaskFilter struct {
	Status     *models.TaskStatus
	Type       *models.TaskType
	CreatorID  *string
	AssigneeID *string
	VisibleTo  *string
	Offset     int
	Limit      int
}

// UserRepository owns User rows. Lookups return (nil, nil) when no row
// matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

// TaskRepository owns Task rows and the task_assignees links; it is the sole
// mutator of both. GetByID returns (nil, nil) when no row matches.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	// UpdateWithAssignees persists the task's fields and replaces its
	// assignee set in a single transaction.
	UpdateWithAssignees(ctx context.Context, task *models.Task, assignees []models.User) error
	Delete(ctx context.Context, id string) error
	AddAssignee(ctx context.Context, taskID string, user *models.User) error
	RemoveAssignee(ctx context.Context, taskID, userID string) error
}
