package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8008", cfg.Addr)
	require.Equal(t, "kanban-board.db", cfg.DBPath)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "kanban-board-api", cfg.JWTIssuer)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.Equal(t, "from-env", cfg.JWTSecret)
}
