package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zegenlabs/todo-api/internal/core/domain"
	"github.com/zegenlabs/todo-api/internal/core/ports"
)

// TodoService implements the shared task list. All authenticated users see
// and append to the same list; there is no per-user scoping.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

// Append creates a new pending todo and returns it with its assigned id.
func (s *TodoService) Append(ctx context.Context, task string) (*domain.Todo, error) {
	if strings.TrimSpace(task) == "" {
		return nil, domain.ErrEmptyTask
	}

	todo := &domain.Todo{
		Task:      task,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Append(ctx, todo)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to append todo")
		return nil, err
	}

	s.logger.Info().Int64("todo_id", created.ID).Msg("todo created")
	return created, nil
}

// List returns every todo in insertion order.
func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	return s.repo.List(ctx)
}
