package ports

import (
	"context"

	"github.com/zegenlabs/todo-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential storage.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
