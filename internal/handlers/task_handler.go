package handlers

import (
	"net/http"
	"strconv"

	"kanban-board-api/internal/models"
	"kanban-board-api/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler exposes the task endpoints.
type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// UpdateStatusRequest represents a minimal request to change status
type UpdateStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// AssignRequest names the user to add to the assignee set.
type AssignRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// LogTimeRequest carries the minutes to accumulate.
type LogTimeRequest struct {
	Minutes int64 `json:"minutes" binding:"required"`
}

func listInput(c *gin.Context) service.ListTasksInput {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}

	return service.ListTasksInput{
		Status:     c.Query("status"),
		Type:       c.Query("type"),
		CreatorID:  c.Query("author_id"),
		AssigneeID: c.Query("assigned_user_id"),
		Skip:       skip,
		Limit:      limit,
	}
}

// List handles GET /api/tasks
// Returns the actor's tasks (created by or assigned to), filtered by the
// optional status/type/author_id/assigned_user_id query params.
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), userID, listInput(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// ListAll handles GET /api/tasks/all
// Returns tasks across all users with the same filters and ordering.
func (h *TaskHandler) ListAll(c *gin.Context) {
	if _, ok := actorID(c); !ok {
		return
	}

	tasks, err := h.tasks.ListAll(c.Request.Context(), listInput(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Get handles GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update handles PATCH /api/tasks/:id
// Applies only the fields present in the payload.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.UpdateTaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.UpdateFields(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateStatus handles PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Assign handles POST /api/tasks/:id/assignees
func (h *TaskHandler) Assign(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.Assign(c.Request.Context(), userID, c.Param("id"), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Unassign handles DELETE /api/tasks/:id/assignees/:userId
func (h *TaskHandler) Unassign(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	task, err := h.tasks.Unassign(c.Request.Context(), userID, c.Param("id"), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// LogTime handles POST /api/tasks/:id/time
func (h *TaskHandler) LogTime(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req LogTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.tasks.LogTime(c.Request.Context(), userID, c.Param("id"), req.Minutes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}
