package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type AuthService struct {
	userRepository    ports.UserRepository
	sessionRepository ports.SessionRepository
}

func NewAuthService(userRepository ports.UserRepository, sessionRepository ports.SessionRepository) *AuthService {
	return &AuthService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
	}
}

// Login checks credentials and issues an opaque bearer token backed by a
// server-side session row. Invalid email and invalid password are not
// distinguished.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.User{}, domain.ErrUnauthenticated
		}
		return "", domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.User{}, domain.ErrUnauthenticated
	}

	token := newToken()
	if err := s.sessionRepository.CreateSession(ctx, token, user.ID); err != nil {
		return "", domain.User{}, err
	}

	return token, user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrUnauthenticated
	}
	return s.sessionRepository.GetUserByToken(ctx, token)
}

func newToken() string {
	// Two v4 UUIDs give 256 bits of randomness; the dashes carry nothing.
	raw := uuid.NewString() + uuid.NewString()
	return strings.ReplaceAll(raw, "-", "")
}

var _ ports.AuthService = (*AuthService)(nil)
