package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, token string, userID uint64) error
	// GetUserByToken resolves a bearer token to its user, or
	// domain.ErrUnauthenticated when the token is unknown.
	GetUserByToken(ctx context.Context, token string) (domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
