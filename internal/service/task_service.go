package service

import (
	"context"
	"strings"

	"kanban-board-api/internal/models"
	"kanban-board-api/internal/policy"
	"kanban-board-api/internal/repository"

	"github.com/google/uuid"
)

// Task event names published after successful mutations.
const (
	EventTaskCreated       = "task_created"
	EventTaskUpdated       = "task_updated"
	EventTaskStatusChanged = "task_status_changed"
	EventTaskDeleted       = "task_deleted"
	EventTaskAssigned      = "task_assigned"
	EventTaskUnassigned    = "task_unassigned"
)

// EventPublisher delivers task change notifications to interested users.
// Implementations must not block the calling goroutine for long.
type EventPublisher interface {
	PublishTaskEvent(event, taskID string, userIDs []string)
}

// TaskService orchestrates the task use cases. It holds no state of its own:
// every call loads the task, consults the authorization policy, and mutates
// through the repository.
type TaskService struct {
	tasks  repository.TaskRepository
	users  repository.UserRepository
	events EventPublisher
}

// NewTaskService constructs a TaskService. events may be nil when no realtime
// delivery is wired (tests).
func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository, events EventPublisher) *TaskService {
	return &TaskService{tasks: tasks, users: users, events: events}
}

type CreateTaskInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Type        models.TaskType     `json:"type"`
	Priority    models.TaskPriority `json:"priority"`
	AssigneeIDs []string            `json:"assignee_ids"`
}

// UpdateTaskInput patches the non-status fields of a task. Only fields that
// are present are applied. AssigneeIDs, when present, replaces the whole
// assignee set (an empty list clears it).
type UpdateTaskInput struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Type        *models.TaskType     `json:"type"`
	Priority    *models.TaskPriority `json:"priority"`
	AssigneeIDs *[]string            `json:"assignee_ids"`
}

// ListTasksInput carries the optional listing filters; all provided filters
// AND together. Skip and Limit apply after ordering.
type ListTasksInput struct {
	Status     string
	Type       string
	CreatorID  string
	AssigneeID string
	Skip       int
	Limit      int
}

// Create makes a new task owned by the actor, with status at its initial
// value and zero time spent. Unknown assignee ids reject the whole operation.
func (s *TaskService) Create(ctx context.Context, actorID string, input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, invalidf("title", "must not be empty")
	}
	if len(title) > models.MaxTitleLength {
		return nil, invalidf("title", "must be at most %d characters", models.MaxTitleLength)
	}

	taskType := input.Type
	if taskType == "" {
		taskType = models.TypeGeneral
	}
	if !taskType.Valid() {
		return nil, invalidf("type", "unknown value %q", string(input.Type))
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, invalidf("priority", "unknown value %q", string(input.Priority))
	}

	assignees, err := s.resolveAssignees(ctx, input.AssigneeIDs)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: input.Description,
		Type:        taskType,
		Status:      models.StatusTodo,
		Priority:    priority,
		TimeSpent:   0,
		CreatorID:   actorID,
		Assignees:   assignees,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	created, err := s.tasks.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventTaskCreated, created)
	return created, nil
}

// Get returns the task when the actor is its creator or an assignee. A
// missing task is reported as not found before any permission check.
func (s *TaskService) Get(ctx context.Context, actorID, taskID string) (*models.Task, error) {
	return s.load(ctx, actorID, taskID, policy.OpRead)
}

// List returns the actor's tasks (created by or assigned to the actor),
// narrowed by the provided filters, ordered by priority then newest first.
func (s *TaskService) List(ctx context.Context, actorID string, input ListTasksInput) ([]models.Task, error) {
	filter, err := buildFilter(input)
	if err != nil {
		return nil, err
	}
	filter.VisibleTo = &actorID
	return s.tasks.List(ctx, *filter)
}

// ListAll returns tasks across all users with the same filters and ordering.
func (s *TaskService) ListAll(ctx context.Context, input ListTasksInput) ([]models.Task, error) {
	filter, err := buildFilter(input)
	if err != nil {
		return nil, err
	}
	return s.tasks.List(ctx, *filter)
}

// UpdateFields applies a partial update to the task's non-status fields.
// Creator only. A replacement assignee set referencing an unknown user
// rejects the whole update with nothing written.
func (s *TaskService) UpdateFields(ctx context.Context, actorID, taskID string, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.load(ctx, actorID, taskID, policy.OpUpdateFields)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, invalidf("title", "must not be empty")
		}
		if len(title) > models.MaxTitleLength {
			return nil, invalidf("title", "must be at most %d characters", models.MaxTitleLength)
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, invalidf("type", "unknown value %q", string(*input.Type))
		}
		task.Type = *input.Type
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, invalidf("priority", "unknown value %q", string(*input.Priority))
		}
		task.Priority = *input.Priority
	}

	if input.AssigneeIDs != nil {
		assignees, err := s.resolveAssignees(ctx, *input.AssigneeIDs)
		if err != nil {
			return nil, err
		}
		if err := s.tasks.UpdateWithAssignees(ctx, task, assignees); err != nil {
			return nil, err
		}
	} else {
		if err := s.tasks.Update(ctx, task); err != nil {
			return nil, err
		}
	}

	updated, err := s.tasks.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventTaskUpdated, updated)
	return updated, nil
}

// UpdateStatus moves the task to the given status. Creator or assignee. Any
// enum value may be set from any other; no forward-only progression is
// enforced.
func (s *TaskService) UpdateStatus(ctx context.Context, actorID, taskID string, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, invalidf("status", "unknown value %q", string(status))
	}

	task, err := s.load(ctx, actorID, taskID, policy.OpUpdateStatus)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	s.publish(EventTaskStatusChanged, task)
	return task, nil
}

// Delete removes the task and its assignment links. Creator only. Deleting
// an already-deleted id reports not found.
func (s *TaskService) Delete(ctx context.Context, actorID, taskID string) error {
	task, err := s.load(ctx, actorID, taskID, policy.OpDelete)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	s.publish(EventTaskDeleted, task)
	return nil
}

// Assign adds the user to the task's assignee set. Creator only. Assigning a
// user who is already assigned is a no-op success.
func (s *TaskService) Assign(ctx context.Context, actorID, taskID, userID string) (*models.Task, error) {
	task, err := s.load(ctx, actorID, taskID, policy.OpAssign)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if task.IsAssignee(userID) {
		return task, nil
	}

	if err := s.tasks.AddAssignee(ctx, taskID, user); err != nil {
		return nil, err
	}
	task.Assignees = append(task.Assignees, *user)
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	s.publish(EventTaskAssigned, task)
	return task, nil
}

// Unassign removes the user from the task's assignee set. Creator only.
// Removing a user who is not assigned is a no-op success.
func (s *TaskService) Unassign(ctx context.Context, actorID, taskID, userID string) (*models.Task, error) {
	task, err := s.load(ctx, actorID, taskID, policy.OpUnassign)
	if err != nil {
		return nil, err
	}

	if !task.IsAssignee(userID) {
		return task, nil
	}

	if err := s.tasks.RemoveAssignee(ctx, taskID, userID); err != nil {
		return nil, err
	}
	kept := task.Assignees[:0]
	for i := range task.Assignees {
		if task.Assignees[i].ID != userID {
			kept = append(kept, task.Assignees[i])
		}
	}
	task.Assignees = kept
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	s.publish(EventTaskUnassigned, task)
	return task, nil
}

// LogTime accumulates spent minutes onto the task. Creator or assignee. The
// delta must be strictly positive; time_spent never decreases.
func (s *TaskService) LogTime(ctx context.Context, actorID, taskID string, minutes int64) (*models.Task, error) {
	if minutes <= 0 {
		return nil, invalidf("minutes", "must be a positive integer")
	}

	task, err := s.load(ctx, actorID, taskID, policy.OpLogTime)
	if err != nil {
		return nil, err
	}

	task.TimeSpent += minutes
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	s.publish(EventTaskUpdated, task)
	return task, nil
}

// load fetches the task and applies the policy for op. Existence is checked
// first so non-existent tasks never leak through a forbidden response.
func (s *TaskService) load(ctx context.Context, actorID, taskID string, op policy.Operation) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if !policy.Allowed(actorID, task, op) {
		return nil, ErrForbidden
	}
	return task, nil
}

// resolveAssignees maps ids to users, deduplicating and rejecting the whole
// set when any id is unknown.
func (s *TaskService) resolveAssignees(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := s.users.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(users) != len(unique) {
		found := make(map[string]struct{}, len(users))
		for i := range users {
			found[users[i].ID] = struct{}{}
		}
		for _, id := range unique {
			if _, ok := found[id]; !ok {
				return nil, invalidf("assignee_ids", "unknown user %q", id)
			}
		}
	}
	return users, nil
}

func buildFilter(input ListTasksInput) (*repository.TaskFilter, error) {
	filter := &repository.TaskFilter{
		Offset: input.Skip,
		Limit:  input.Limit,
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit < 0 {
		filter.Limit = 0
	}

	if input.Status != "" {
		status := models.TaskStatus(input.Status)
		if !status.Valid() {
			return nil, invalidf("status", "unknown value %q", input.Status)
		}
		filter.Status = &status
	}
	if input.Type != "" {
		taskType := models.TaskType(input.Type)
		if !taskType.Valid() {
			return nil, invalidf("type", "unknown value %q", input.Type)
		}
		filter.Type = &taskType
	}
	if input.CreatorID != "" {
		creatorID := input.CreatorID
		filter.CreatorID = &creatorID
	}
	if input.AssigneeID != "" {
		assigneeID := input.AssigneeID
		filter.AssigneeID = &assigneeID
	}
	return filter, nil
}

// publish notifies the creator and all current assignees of a task change.
func (s *TaskService) publish(event string, task *models.Task) {
	if s.events == nil || task == nil {
		return
	}
	recipients := append([]string{task.CreatorID}, task.AssigneeIDs()...)
	s.events.PublishTaskEvent(event, task.ID, recipients)
}
