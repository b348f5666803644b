package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"kanban-board-api/internal/auth"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/models"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/repository/sqlite"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type handlerEnv struct {
	router   *gin.Engine
	tokens   *auth.TokenManager
	userRepo repository.UserRepository
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", "iss", "aud", time.Hour)
	userRepo := sqlite.NewUserRepo(db)
	taskRepo := sqlite.NewTaskRepo(db)

	authHandler := NewAuthHandler(service.NewAuthService(userRepo, tokens))
	userHandler := NewUserHandler(service.NewUserService(userRepo))
	taskHandler := NewTaskHandler(service.NewTaskService(taskRepo, userRepo, nil))

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(tokens))
	protected.GET("/users", userHandler.List)
	protected.GET("/tasks/:id", taskHandler.Get)
	protected.POST("/tasks", taskHandler.Create)
	protected.PATCH("/tasks/:id", taskHandler.Update)
	protected.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)
	protected.DELETE("/tasks/:id", taskHandler.Delete)
	protected.POST("/tasks/:id/assignees", taskHandler.Assign)
	protected.DELETE("/tasks/:id/assignees/:userId", taskHandler.Unassign)
	protected.POST("/tasks/:id/time", taskHandler.LogTime)

	return &handlerEnv{router: r, tokens: tokens, userRepo: userRepo}
}

func (e *handlerEnv) seedUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, e.userRepo.Create(t.Context(), user))

	token, err := e.tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)
	return user, token
}

func (e *handlerEnv) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
