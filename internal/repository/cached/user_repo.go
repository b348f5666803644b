package cached

import (
	"context"
	"time"

	"kanban-board-api/internal/cache"
	"kanban-board-api/internal/models"
	"kanban-board-api/internal/repository"
)

// UserRepo is a read-through cache over a repository.UserRepository. Lookups
// by id are served from a TTL cache; mutations write through and invalidate.
// Assignee resolution hits user lookups on every task mutation, which is what
// this exists for.
type UserRepo struct {
	inner repository.UserRepository
	byID  cache.Cache[string, models.User]
	ttl   time.Duration
}

func NewUserRepo(inner repository.UserRepository, ttl time.Duration) *UserRepo {
	return &UserRepo{
		inner: inner,
		byID:  cache.NewSimpleCache[string, models.User](),
		ttl:   ttl,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	if err := r.inner.Create(ctx, user); err != nil {
		return err
	}
	r.byID.Set(user.ID, *user, r.ttl)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := r.byID.Get(id); ok {
		return &u, nil
	}
	user, err := r.inner.GetByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}
	r.byID.Set(id, *user, r.ttl)
	return user, nil
}

func (r *UserRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if u, ok := r.byID.Get(id); ok {
			users = append(users, u)
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return users, nil
	}

	fetched, err := r.inner.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, u := range fetched {
		r.byID.Set(u.ID, u, r.ttl)
	}
	return append(users, fetched...), nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	// login lookups always read the authoritative row
	return r.inner.GetByUsername(ctx, username)
}

func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	if err := r.inner.Update(ctx, user); err != nil {
		return err
	}
	r.byID.Delete(user.ID)
	return nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	return r.inner.List(ctx)
}

var _ repository.UserRepository = (*UserRepo)(nil)
