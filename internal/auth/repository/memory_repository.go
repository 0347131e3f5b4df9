package repository

import (
	"context"
	"sync"
	"time"

	authdomain "around-backend/internal/auth/domain"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory UserRepository with the same field
// validation rules as the mongo-backed one. Tests build on it instead of a
// running store.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]authdomain.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]authdomain.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// Remove drops a record directly. The API exposes no deletion path; this
// exists so tests can simulate an account deleted out of band.
func (r *MemoryRepository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u := user
	return &u, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]authdomain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *MemoryRepository) UpdateProfile(_ context.Context, id, name, about string) (*authdomain.User, error) {
	if err := validateLength(name); err != nil {
		return nil, err
	}
	if err := validateLength(about); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	user.Name = name
	user.About = about
	user.UpdatedAt = time.Now()
	r.users[id] = user
	u := user
	return &u, nil
}

func (r *MemoryRepository) UpdateAvatar(_ context.Context, id, avatar string) (*authdomain.User, error) {
	if err := validateURL(avatar); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	user.Avatar = avatar
	user.UpdatedAt = time.Now()
	r.users[id] = user
	u := user
	return &u, nil
}
