package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID uint64) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
}

type AssigneeRepository interface {
	ListAssignees(ctx context.Context) ([]domain.Assignee, error)
	// FindAssigneeByName returns the first profile matching name, or nil
	// when no profile matches. An unmatched name is not an error.
	FindAssigneeByName(ctx context.Context, name string) (*domain.Assignee, error)
}

type UserService interface {
	CreateUser(ctx context.Context, actor domain.Actor, input domain.CreateUserInput) (domain.User, error)
	GetUser(ctx context.Context, userID uint64) (domain.User, error)
	ListAssignees(ctx context.Context) ([]domain.Assignee, error)
}
