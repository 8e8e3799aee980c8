package ports

import (
	"context"

	"taskboard/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, actor domain.Actor, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, actor domain.Actor, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	MoveTask(ctx context.Context, actor domain.Actor, taskID uint64, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, actor domain.Actor, taskID uint64) error
}
