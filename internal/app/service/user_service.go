package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type UserService struct {
	userRepository     ports.UserRepository
	assigneeRepository ports.AssigneeRepository
}

func NewUserService(userRepository ports.UserRepository, assigneeRepository ports.AssigneeRepository) *UserService {
	return &UserService{
		userRepository:     userRepository,
		assigneeRepository: assigneeRepository,
	}
}

func (s *UserService) CreateUser(ctx context.Context, actor domain.Actor, input domain.CreateUserInput) (domain.User, error) {
	if actor.Role != domain.RoleAdmin {
		return domain.User{}, domain.Forbidden(domain.MsgForbiddenManageUsers)
	}

	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	return s.userRepository.CreateUser(ctx, domain.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hash),
		Role:         role,
		AssigneeID:   input.AssigneeID,
	})
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	return s.userRepository.GetUserByID(ctx, userID)
}

func (s *UserService) ListAssignees(ctx context.Context) ([]domain.Assignee, error) {
	return s.assigneeRepository.ListAssignees(ctx)
}

var _ ports.UserService = (*UserService)(nil)
