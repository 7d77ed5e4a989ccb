package ports

import (
	"context"

	"github.com/zegenlabs/todo-api/internal/core/domain"
)

// TodoRepository defines the interface for task list storage. Append assigns
// the id; List returns items in insertion order.
type TodoRepository interface {
	Append(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	List(ctx context.Context) ([]domain.Todo, error)
}
