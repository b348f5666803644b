package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin_HTTP(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"firstName": "Alice",
		"lastName":  "Smith",
		"username":  "alice",
		"password":  "s3cret-pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotContains(t, w.Body.String(), "s3cret-pw")

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "s3cret-pw",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice", resp.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice",
		"password": "s3cret-pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	env := newHandlerEnv(t)

	payload := map[string]string{"username": "alice", "password": "s3cret-pw"}
	w := env.do(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
