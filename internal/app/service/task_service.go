package service

import (
	"context"
	"strings"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/permission"
	"taskboard/internal/core/ports"
)

type TaskService struct {
	taskRepository     ports.TaskRepository
	assigneeRepository ports.AssigneeRepository
}

func NewTaskService(taskRepository ports.TaskRepository, assigneeRepository ports.AssigneeRepository) *TaskService {
	return &TaskService{
		taskRepository:     taskRepository,
		assigneeRepository: assigneeRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, actor domain.Actor, input domain.CreateTaskInput) (domain.Task, error) {
	if !permission.CanCreate(actor.Role) {
		return domain.Task{}, domain.Forbidden(domain.MsgForbiddenManageTasks)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domain.Task{}, domain.ErrTaskTitleRequired
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	assigneeID, err := s.resolveAssignee(ctx, input.AssigneeName)
	if err != nil {
		return domain.Task{}, err
	}

	ownerID := actor.ID
	return s.taskRepository.CreateTask(ctx, domain.Task{
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		Status:      status,
		OwnerID:     &ownerID,
		AssigneeID:  assigneeID,
		DueDate:     input.DueDate,
		Tags:        input.Tags,
	})
}

func (s *TaskService) UpdateTask(ctx context.Context, actor domain.Actor, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	// Classify against the persisted status, never the client's view of it.
	// A request that changes status is authorized by the move rule alone;
	// any other fields in the same request ride along with it.
	if input.Status != nil && *input.Status != task.Status {
		if !permission.CanMove(moveContext(actor, task)) {
			return domain.Task{}, domain.Forbidden(moveDenialKey(actor.Role))
		}
	} else {
		if !permission.CanEdit(editContext(actor, task)) {
			return domain.Task{}, domain.Forbidden(domain.MsgForbiddenManageTasks)
		}
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return domain.Task{}, domain.ErrTaskTitleRequired
	}

	patch := domain.TaskPatch{
		Title:          input.Title,
		Description:    input.Description,
		DescriptionSet: input.DescriptionSet,
		Priority:       input.Priority,
		Status:         input.Status,
		DueDate:        input.DueDate,
		DueDateSet:     input.DueDateSet,
		Tags:           input.Tags,
		TagsSet:        input.TagsSet,
	}
	if input.AssigneeSet {
		patch.AssigneeSet = true
		patch.AssigneeID, err = s.resolveAssignee(ctx, input.AssigneeName)
		if err != nil {
			return domain.Task{}, err
		}
	}

	return s.taskRepository.UpdateTask(ctx, taskID, patch)
}

func (s *TaskService) MoveTask(ctx context.Context, actor domain.Actor, taskID uint64, status domain.TaskStatus) (domain.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if !permission.CanMove(moveContext(actor, task)) {
		return domain.Task{}, domain.Forbidden(moveDenialKey(actor.Role))
	}

	// Moving a task onto the column it is already in is a successful no-op.
	if task.Status == status {
		return task, nil
	}

	return s.taskRepository.UpdateTaskStatus(ctx, taskID, status)
}

func (s *TaskService) DeleteTask(ctx context.Context, actor domain.Actor, taskID uint64) error {
	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	if !permission.CanDelete(editContext(actor, task)) {
		return domain.Forbidden(domain.MsgForbiddenManageTasks)
	}

	return s.taskRepository.DeleteTask(ctx, taskID)
}

func (s *TaskService) resolveAssignee(ctx context.Context, name *string) (*uint64, error) {
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil, nil
	}

	assignee, err := s.assigneeRepository.FindAssigneeByName(ctx, strings.TrimSpace(*name))
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, nil
	}
	return &assignee.ID, nil
}

func moveContext(actor domain.Actor, task domain.Task) permission.Context {
	return permission.Context{
		Role:            actor.Role,
		ActorID:         actor.ID,
		ActorAssigneeID: actor.AssigneeID,
		TaskOwnerID:     task.OwnerID,
		TaskAssigneeID:  task.AssigneeID,
	}
}

func editContext(actor domain.Actor, task domain.Task) permission.Context {
	return moveContext(actor, task)
}

func moveDenialKey(role domain.Role) string {
	if role == domain.RoleEmployee {
		return domain.MsgForbiddenMoveAssigned
	}
	return domain.MsgForbiddenMoveTasks
}

var _ ports.TaskService = (*TaskService)(nil)
