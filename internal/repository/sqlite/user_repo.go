package sqlite

import (
	"context"
	"errors"

	"kanban-board-api/internal/models"
	"kanban-board-api/internal/repository"

	"gorm.io/gorm"
)

// UserRepo is the gorm-backed implementation of repository.UserRepository.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return &repository.StorageError{Op: "create user", Err: err}
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &repository.StorageError{Op: "get user", Err: err}
	}
	return &user, nil
}

func (r *UserRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, &repository.StorageError{Op: "get users", Err: err}
	}
	return users, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &repository.StorageError{Op: "get user by username", Err: err}
	}
	return &user, nil
}

func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return &repository.StorageError{Op: "update user", Err: err}
	}
	return nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, &repository.StorageError{Op: "list users", Err: err}
	}
	return users, nil
}

var _ repository.UserRepository = (*UserRepo)(nil)
