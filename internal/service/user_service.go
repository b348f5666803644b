package service

import (
	"context"
	"strings"

	"kanban-board-api/internal/models"
	"kanban-board-api/internal/repository"
)

// UserService exposes profile reads and the small profile mutations.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// UpdateAvatar stores a new avatar reference for the actor. Upload and
// storage of the image itself happen elsewhere; only the reference is kept.
func (s *UserService) UpdateAvatar(ctx context.Context, actorID, avatarURL string) (*models.User, error) {
	avatarURL = strings.TrimSpace(avatarURL)
	if avatarURL == "" {
		return nil, invalidf("avatarUrl", "must not be empty")
	}

	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.AvatarURL = avatarURL
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
