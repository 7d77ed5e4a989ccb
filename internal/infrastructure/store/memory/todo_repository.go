package memory

import (
	"context"
	"sync"

	"github.com/zegenlabs/todo-api/internal/core/domain"
)

// TodoRepository stores todos in insertion order. Ids come from an in-lock
// counter, so they are unique and monotonically increasing within a process
// run even under concurrent appends.
type TodoRepository struct {
	mu     sync.RWMutex
	todos  []domain.Todo
	nextID int64
}

func NewTodoRepository() *TodoRepository {
	return &TodoRepository{}
}

// Append assigns the next id, stores a copy of the todo, and returns it.
func (r *TodoRepository) Append(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *todo
	stored.ID = r.nextID
	r.todos = append(r.todos, stored)

	created := stored
	return &created, nil
}

// List returns a copy of the whole list in insertion order. The result is
// never nil, so an empty list serializes as a JSON array.
func (r *TodoRepository) List(_ context.Context) ([]domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Todo, len(r.todos))
	copy(out, r.todos)
	return out, nil
}
