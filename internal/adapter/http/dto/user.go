package dto

type UserItem struct {
	ID         uint64  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	AssigneeID *uint64 `json:"assignee_id,omitempty"`
}

type CreateUserRequest struct {
	Email      string  `json:"email" binding:"required,email,max=255"`
	Name       string  `json:"name" binding:"required,max=255"`
	Password   string  `json:"password" binding:"required,min=6,max=72"`
	Role       *string `json:"role" binding:"omitempty,oneof=ADMIN SUPERVISOR EMPLOYEE VIEWER"`
	AssigneeID *uint64 `json:"assignee_id" binding:"omitempty,gt=0"`
}

type AssigneeItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}
