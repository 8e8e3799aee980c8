package mapper

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}

	if user.AssigneeID != nil {
		value := *user.AssigneeID
		item.AssigneeID = &value
	}

	return item
}

func ToAssigneeItems(assignees []domain.Assignee) []dto.AssigneeItem {
	items := make([]dto.AssigneeItem, 0, len(assignees))
	for _, assignee := range assignees {
		items = append(items, dto.AssigneeItem{ID: assignee.ID, Name: assignee.Name})
	}
	return items
}
