package ports

import (
	"context"

	"github.com/zegenlabs/todo-api/internal/core/domain"
)

type TodoService interface {
	Append(ctx context.Context, task string) (*domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
}
