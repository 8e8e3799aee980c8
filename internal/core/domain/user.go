package domain

import "time"

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleEmployee   Role = "EMPLOYEE"
	RoleViewer     Role = "VIEWER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleEmployee, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID           uint64
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	AssigneeID   *uint64
	CreatedAt    time.Time
}

// Actor is the authenticated principal a request acts as.
type Actor struct {
	ID         uint64
	Role       Role
	AssigneeID *uint64
}

func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, AssigneeID: u.AssigneeID}
}

// Assignee is a task-assignment target, distinct from a login user.
type Assignee struct {
	ID   uint64
	Name string
}

type CreateUserInput struct {
	Email      string
	Name       string
	Password   string
	Role       Role
	AssigneeID *uint64
}
