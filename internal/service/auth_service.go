package service

import (
	"context"
	"strings"

	"kanban-board-api/internal/auth"
	"kanban-board-api/internal/models"
	"kanban-board-api/internal/repository"

	"github.com/google/uuid"
)

// AuthService handles registration, login and credential changes.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Register creates a new account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, invalidf("username", "must not be empty")
	}
	if len(input.Password) < 6 {
		return nil, invalidf("password", "must be at least 6 characters")
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.IsActive || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Refresh validates an existing token and issues a fresh one for the same
// subject.
func (s *AuthService) Refresh(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if user == nil || !user.IsActive {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username)
}

// ChangePassword replaces the actor's password after verifying the old one.
func (s *AuthService) ChangePassword(ctx context.Context, actorID, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return invalidf("password", "must be at least 6 characters")
	}

	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}
