package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/zegenlabs/todo-api/docs"
	"github.com/zegenlabs/todo-api/internal/api/handler"
	"github.com/zegenlabs/todo-api/internal/api/middleware"
	"github.com/zegenlabs/todo-api/internal/core/service"
	"github.com/zegenlabs/todo-api/internal/infrastructure/config"
	"github.com/zegenlabs/todo-api/internal/infrastructure/store/memory"
	"github.com/zegenlabs/todo-api/internal/pkg/password"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userStore := memory.NewAuthRepository()
	todoStore := memory.NewTodoRepository()
	hasher := password.NewHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userStore, hasher, tokenService)
	todoService := service.NewTodoService(todoStore, log)

	authHandler := handler.NewAuthHandler(authService)
	todoHandler := handler.NewTodoHandler(todoService)
	authGuard := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Task routes (bearer token required) ---
	todos := e.Group("/todos", authGuard)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
