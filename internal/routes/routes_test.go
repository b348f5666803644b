package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kanban-board-api/internal/auth"
	"kanban-board-api/internal/handlers"
	"kanban-board-api/internal/logger"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository/sqlite"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	log := logger.Nop()
	tokens := auth.NewTokenManager("test-secret", "iss", "aud", time.Hour)
	userRepo := sqlite.NewUserRepo(db)
	taskRepo := sqlite.NewTaskRepo(db)
	hub := realtime.NewHub()

	return Setup(Handlers{
		Auth:  handlers.NewAuthHandler(service.NewAuthService(userRepo, tokens)),
		Users: handlers.NewUserHandler(service.NewUserService(userRepo)),
		Tasks: handlers.NewTaskHandler(service.NewTaskService(taskRepo, userRepo, hub)),
		WS:    handlers.NewWSHandler(hub, log),
	}, tokens, log)
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := newTestEngine(t)

	for _, path := range []string{"/api/tasks", "/api/users", "/api/users/me"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
}
