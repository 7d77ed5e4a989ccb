package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type createTodoRequest struct {
	Task string `json:"task" validate:"required"`
}

// todoResponse is the transport-layer shape of a todo item, kept separate
// from the domain type so the JSON contract is not coupled to internal
// service changes.
type todoResponse struct {
	ID        int64     `json:"id"`
	Task      string    `json:"task"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
