package service

import (
	"context"
	"time"

	"github.com/zegenlabs/todo-api/internal/core/domain"
	"github.com/zegenlabs/todo-api/internal/core/ports"
	"github.com/zegenlabs/todo-api/internal/pkg/password"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	hasher *password.Hasher
	tokens ports.TokenService
}

func NewAuthService(repo ports.AuthRepository, hasher *password.Hasher, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and mints a bearer token. Unknown username
// and wrong password collapse into the same domain.ErrInvalidCredentials so
// the response never reveals which one failed. A lookup miss skips the bcrypt
// comparison, leaving a timing difference; accepted for this scope.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, error) {
	if username == "" || pass == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(pass, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}
