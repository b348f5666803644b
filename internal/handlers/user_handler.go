package handlers

import (
	"net/http"

	"kanban-board-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user directory and profile endpoints.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	// Map to safe response payload
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
			AvatarURL: u.AvatarURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"users": resp,
		"count": len(resp),
	})
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateAvatarRequest carries the new avatar reference.
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatarUrl" binding:"required"`
}

// UpdateAvatar handles PUT /api/users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UpdateAvatar(c.Request.Context(), userID, req.AvatarURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
