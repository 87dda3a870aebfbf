// Package memory holds map-backed repositories used by tests and by
// STORAGE_DRIVER=memory for local runs without Postgres.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	users    map[string]entity.User
	emailIDs map[string]string // lower-case email to user id
	lock     sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:    make(map[string]entity.User),
		emailIDs: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	email := strings.ToLower(u.Email)
	if _, ok := r.emailIDs[email]; ok {
		return repository.ErrDuplicate
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.Email = email
	u.CreatedAt, u.UpdatedAt = now, now
	r.users[u.ID] = *u
	r.emailIDs[email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	id, ok := r.emailIDs[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.users[id]
	return &u, nil
}
