package routes

import (
	"kanban-board-api/internal/auth"
	"kanban-board-api/internal/handlers"
	"kanban-board-api/internal/logger"
	"kanban-board-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth  *handlers.AuthHandler
	Users *handlers.UserHandler
	Tasks *handlers.TaskHandler
	WS    *handlers.WSHandler
}

// Setup wires middlewares and handlers onto a new gin engine.
func Setup(h Handlers, tokens *auth.TokenManager, log *logger.Logger) *gin.Engine {
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestLogger(log))

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	// Protected routes (authentication required)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(tokens))
	{
		protected.POST("/auth/refresh", h.Auth.Refresh)
		protected.POST("/auth/password", h.Auth.ChangePassword)

		protected.GET("/users", h.Users.List)
		protected.GET("/users/me", h.Users.Me)
		protected.PUT("/users/me/avatar", h.Users.UpdateAvatar)

		protected.GET("/tasks", h.Tasks.List)
		protected.GET("/tasks/all", h.Tasks.ListAll)
		protected.GET("/tasks/:id", h.Tasks.Get)
		protected.POST("/tasks", h.Tasks.Create)
		protected.PATCH("/tasks/:id", h.Tasks.Update)
		protected.PATCH("/tasks/:id/status", h.Tasks.UpdateStatus)
		protected.DELETE("/tasks/:id", h.Tasks.Delete)
		protected.POST("/tasks/:id/assignees", h.Tasks.Assign)
		protected.DELETE("/tasks/:id/assignees/:userId", h.Tasks.Unassign)
		protected.POST("/tasks/:id/time", h.Tasks.LogTime)

		protected.GET("/ws", h.WS.Serve)
	}

	return ginRouter
}
