package sqlite

import (
	"context"
	"errors"

	"kanban-board-api/internal/models"
	"kanban-board-api/internal/repository"

	"gorm.io/gorm"
)

// priorityOrder ranks rows for listing: high first, unrecognized values last.
// Secondary key is creation time, newest first.
const priorityOrder = "CASE priority " +
	"WHEN 'high' THEN 0 " +
	"WHEN 'medium' THEN 1 " +
	"WHEN 'low' THEN 2 " +
	"ELSE 3 END, created_at DESC"

// TaskRepo is the gorm-backed implementation of repository.TaskRepository.
type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, task *models.Task) error {
	// gorm persists the task row and its assignee links in one transaction
	if err := r.db.WithContext(ctx).Omit("Creator").Create(task).Error; err != nil {
		return &repository.StorageError{Op: "create task", Err: err}
	}
	return nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Assignees").
		Where("id = ?", id).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &repository.StorageError{Op: "get task", Err: err}
	}
	return &task, nil
}

func (r *TaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]models.Task, error) {
	query := r.db.WithContext(ctx).Model(&models.Task{}).
		Preload("Creator").
		Preload("Assignees")

	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.Type != nil {
		query = query.Where("tasks.type = ?", *filter.Type)
	}
	if filter.CreatorID != nil {
		query = query.Where("tasks.creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where(
			"tasks.id IN (SELECT task_id FROM task_assignees WHERE user_id = ?)",
			*filter.AssigneeID,
		)
	}
	if filter.VisibleTo != nil {
		query = query.Where(
			"tasks.creator_id = ? OR tasks.id IN (SELECT task_id FROM task_assignees WHERE user_id = ?)",
			*filter.VisibleTo, *filter.VisibleTo,
		)
	}

	query = query.Order(priorityOrder)
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, &repository.StorageError{Op: "list tasks", Err: err}
	}
	return tasks, nil
}

func (r *TaskRepo) Update(ctx context.Context, task *models.Task) error {
	err := r.db.WithContext(ctx).
		Omit("Creator", "Assignees").
		Save(task).Error
	if err != nil {
		return &repository.StorageError{Op: "update task", Err: err}
	}
	return nil
}

func (r *TaskRepo) UpdateWithAssignees(ctx context.Context, task *models.Task, assignees []models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Creator", "Assignees").Save(task).Error; err != nil {
			return err
		}
		if err := tx.Model(task).Association("Assignees").Replace(&assignees); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return &repository.StorageError{Op: "update task with assignees", Err: err}
	}
	task.Assignees = assignees
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task := models.Task{ID: id}
		// remove assignment links first, then the row
		if err := tx.Model(&task).Association("Assignees").Clear(); err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
	if err != nil {
		return &repository.StorageError{Op: "delete task", Err: err}
	}
	return nil
}

func (r *TaskRepo) AddAssignee(ctx context.Context, taskID string, user *models.User) error {
	task := models.Task{ID: taskID}
	if err := r.db.WithContext(ctx).Model(&task).Association("Assignees").Append(user); err != nil {
		return &repository.StorageError{Op: "add assignee", Err: err}
	}
	return nil
}

func (r *TaskRepo) RemoveAssignee(ctx context.Context, taskID, userID string) error {
	task := models.Task{ID: taskID}
	if err := r.db.WithContext(ctx).Model(&task).Association("Assignees").Delete(&models.User{ID: userID}); err != nil {
		return &repository.StorageError{Op: "remove assignee", Err: err}
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepo)(nil)
