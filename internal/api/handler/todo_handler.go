package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zegenlabs/todo-api/internal/api/metrics"
	"github.com/zegenlabs/todo-api/internal/core/domain"
	"github.com/zegenlabs/todo-api/internal/core/ports"
)

// TodoHandler handles HTTP requests for the shared task list.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// List handles GET /todos.
//
// @Summary      List all todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	todos, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(&t))
	}

	return c.JSON(http.StatusOK, out)
}

// Create handles POST /todos.
//
// @Summary      Append a todo to the shared list
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo description"
// @Success      201   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	todo, err := h.service.Append(c.Request().Context(), req.Task)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTask) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.TodosCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:        t.ID,
		Task:      t.Task,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}
