package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testManager() *TokenManager {
	return NewTokenManager("test-secret", "kanban-board-api", "kanban-board-clients", time.Hour)
}

func TestIssueAndVerifyToken(t *testing.T) {
	m := testManager()

	token, err := m.Issue("u-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestVerifyToken_Invalid(t *testing.T) {
	m := testManager()
	_, err := m.Verify("invalid.token")
	require.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	m := testManager()
	token, err := m.Issue("u-1", "alice")
	require.NoError(t, err)

	other := NewTokenManager("other-secret", "kanban-board-api", "kanban-board-clients", time.Hour)
	_, err = other.Verify(token)
	require.Error(t, err)
}

func TestVerifyToken_WrongIssuer(t *testing.T) {
	issuer := NewTokenManager("test-secret", "someone-else", "kanban-board-clients", time.Hour)
	token, err := issuer.Issue("u-1", "alice")
	require.NoError(t, err)

	_, err = testManager().Verify(token)
	require.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", "kanban-board-api", "kanban-board-clients", time.Nanosecond)
	token, err := m.Issue("u-1", "alice")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = m.Verify(token)
	require.Error(t, err)
}
