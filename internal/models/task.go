package models

import (
	"time"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Valid reports whether the status is one of the known enum values.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Valid reports whether the priority is one of the known enum values.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// SortRank returns the listing rank of a priority: high tasks come first,
// unrecognized or absent priorities sort last.
func (p TaskPriority) SortRank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// TaskType represents the work profile of a task
type TaskType string

const (
	TypeDevelopment   TaskType = "development"
	TypeAnalytics     TaskType = "analytics"
	TypeDocumentation TaskType = "documentation"
	TypeTesting       TaskType = "testing"
	TypeGeneral       TaskType = "general"
)

// Valid reports whether the type is one of the known enum values.
func (t TaskType) Valid() bool {
	switch t {
	case TypeDevelopment, TypeAnalytics, TypeDocumentation, TypeTesting, TypeGeneral:
		return true
	}
	return false
}

// MaxTitleLength bounds task titles at the validation boundary.
const MaxTitleLength = 200

// Task represents a task in the system. The creator is set once at creation
// and never changes; assignees form a many-to-many set mutable by the creator.
type Task struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	Type        TaskType     `json:"type" gorm:"not null;default:'general'"`
	Status      TaskStatus   `json:"status" gorm:"not null;default:'todo'"`
	Priority    TaskPriority `json:"priority" gorm:"not null;default:'medium';index"`
	TimeSpent   int64        `json:"timeSpent" gorm:"column:time_spent;not null;default:0"`
	CreatorID   string       `json:"creatorId" gorm:"column:creator_id;not null;index"`
	Creator     User         `json:"creator" gorm:"foreignKey:CreatorID"`
	Assignees   []User       `json:"assignees" gorm:"many2many:task_assignees"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// IsAssignee reports whether the given user is in the task's assignee set.
func (t *Task) IsAssignee(userID string) bool {
	for i := range t.Assignees {
		if t.Assignees[i].ID == userID {
			return true
		}
	}
	return false
}

// AssigneeIDs returns the ids of the current assignees in stored order.
func (t *Task) AssigneeIDs() []string {
	ids := make([]string, 0, len(t.Assignees))
	for i := range t.Assignees {
		ids = append(ids, t.Assignees[i].ID)
	}
	return ids
}
