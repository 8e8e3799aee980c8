// Package permission is the single place task authorization rules live.
// Every decision is a pure boolean function; unknown roles are denied.
package permission

import "taskboard/internal/core/domain"

// Context describes one (actor, task) pair under evaluation.
type Context struct {
	Role            domain.Role
	ActorID         uint64
	ActorAssigneeID *uint64
	TaskOwnerID     *uint64
	TaskAssigneeID  *uint64
}

func isManager(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleSupervisor
}

func CanCreate(role domain.Role) bool {
	return isManager(role)
}

// CanEdit ignores ownership on purpose: any admin or supervisor may edit any
// task, even one owned by somebody else.
func CanEdit(ctx Context) bool {
	return isManager(ctx.Role)
}

func CanDelete(ctx Context) bool {
	return CanEdit(ctx)
}

func CanAssign(role domain.Role) bool {
	return isManager(role)
}

func CanChangePriority(ctx Context) bool {
	return CanEdit(ctx)
}

func CanChangeDueDate(ctx Context) bool {
	return CanEdit(ctx)
}

func CanManageTags(ctx Context) bool {
	return CanEdit(ctx)
}

// CanMove is the one context-sensitive rule. Admins and supervisors move
// anything; an employee moves a task only when their linked assignee profile
// is exactly the task's assignee. An unassigned task is never movable by an
// employee, and viewers and unknown roles move nothing.
func CanMove(ctx Context) bool {
	switch ctx.Role {
	case domain.RoleAdmin, domain.RoleSupervisor:
		return true
	case domain.RoleEmployee:
		return ctx.ActorAssigneeID != nil &&
			ctx.TaskAssigneeID != nil &&
			*ctx.ActorAssigneeID == *ctx.TaskAssigneeID
	default:
		return false
	}
}

func CanView(domain.Role) bool {
	return true
}
