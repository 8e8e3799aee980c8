package dto

type TaskItem struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	OwnerID     *uint64  `json:"owner_id,omitempty"`
	AssigneeID  *uint64  `json:"assignee_id,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string  `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Assignee    *string  `json:"assignee" binding:"omitempty,max=255"`
	DueDate     *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Status      *string  `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Assignee    *string  `json:"assignee" binding:"omitempty,max=255"`
	DueDate     *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Tags        []string `json:"tags" binding:"omitempty,dive,max=64"`
}

type MoveTaskRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in-progress done"`
}

type DeleteTaskResponse struct {
	Success bool `json:"success"`
}
