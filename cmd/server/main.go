package main

import (
	"kanban-board-api/internal/auth"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/handlers"
	"kanban-board-api/internal/logger"
	"kanban-board-api/internal/realtime"
	"kanban-board-api/internal/repository/cached"
	"kanban-board-api/internal/repository/sqlite"
	"kanban-board-api/internal/routes"
	"kanban-board-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)

	userRepo := cached.NewUserRepo(sqlite.NewUserRepo(db), cfg.UserCacheTTL)
	taskRepo := sqlite.NewTaskRepo(db)

	hub := realtime.NewHub()

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo, userRepo, hub)

	router := routes.Setup(routes.Handlers{
		Auth:  handlers.NewAuthHandler(authService),
		Users: handlers.NewUserHandler(userService),
		Tasks: handlers.NewTaskHandler(taskService),
		WS:    handlers.NewWSHandler(hub, log),
	}, tokens, log)

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
