package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Priority    TaskPriority
	Status      TaskStatus
	OwnerID     *uint64
	AssigneeID  *uint64
	DueDate     *time.Time
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title        string
	Description  *string
	Priority     TaskPriority
	Status       TaskStatus
	AssigneeName *string
	DueDate      *time.Time
	Tags         []string
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish
// "field explicitly set to null" from "field absent from the payload".
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *TaskPriority
	Status         *TaskStatus
	AssigneeName   *string
	AssigneeSet    bool
	DueDate        *time.Time
	DueDateSet     bool
	Tags           []string
	TagsSet        bool
}

// TaskPatch is the repository-level form of an update, with the free-text
// assignee name already resolved to a profile id.
type TaskPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *TaskPriority
	Status         *TaskStatus
	AssigneeID     *uint64
	AssigneeSet    bool
	DueDate        *time.Time
	DueDateSet     bool
	Tags           []string
	TagsSet        bool
}
