// Package memory provides the process-memory credential and todo stores.
// State lives only for the lifetime of the process; durability across
// restarts is out of scope.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/zegenlabs/todo-api/internal/core/domain"
)

// AuthRepository stores users keyed by username. Mutation is append-only and
// serialized by the mutex; lookups return clones so callers never share a
// record with the store.
type AuthRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{users: make(map[string]*domain.User)}
}

// Create assigns an id and stores the user. Duplicate usernames are rejected
// with domain.ErrUserExists.
func (r *AuthRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	stored := cloneUser(user)
	stored.ID = uuid.NewString()
	r.users[stored.Username] = stored

	return cloneUser(stored), nil
}

func (r *AuthRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}
