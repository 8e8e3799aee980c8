package permission_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/permission"
)

func uintPtr(v uint64) *uint64 {
	return &v
}

func TestCanCreate_OnlyManagers(t *testing.T) {
	require.True(t, permission.CanCreate(domain.RoleAdmin))
	require.True(t, permission.CanCreate(domain.RoleSupervisor))
	require.False(t, permission.CanCreate(domain.RoleEmployee))
	require.False(t, permission.CanCreate(domain.RoleViewer))
	require.False(t, permission.CanCreate(domain.Role("")))
	require.False(t, permission.CanCreate(domain.Role("ROOT")))
}

func TestCanEdit_IgnoresOwnership(t *testing.T) {
	// An admin edits a task they neither own nor are assigned to.
	ctx := permission.Context{
		Role:        domain.RoleAdmin,
		ActorID:     1,
		TaskOwnerID: uintPtr(99),
	}
	require.True(t, permission.CanEdit(ctx))

	// An employee who owns the task still cannot edit it.
	ctx = permission.Context{
		Role:        domain.RoleEmployee,
		ActorID:     7,
		TaskOwnerID: uintPtr(7),
	}
	require.False(t, permission.CanEdit(ctx))
}

func TestCanMove_ByRole(t *testing.T) {
	tests := []struct {
		name string
		ctx  permission.Context
		want bool
	}{
		{
			name: "admin moves anything",
			ctx:  permission.Context{Role: domain.RoleAdmin},
			want: true,
		},
		{
			name: "supervisor moves anything",
			ctx:  permission.Context{Role: domain.RoleSupervisor},
			want: true,
		},
		{
			name: "employee moves own assigned task",
			ctx: permission.Context{
				Role:            domain.RoleEmployee,
				ActorAssigneeID: uintPtr(3),
				TaskAssigneeID:  uintPtr(3),
			},
			want: true,
		},
		{
			name: "employee denied when task assigned to someone else",
			ctx: permission.Context{
				Role:            domain.RoleEmployee,
				ActorAssigneeID: uintPtr(3),
				TaskAssigneeID:  uintPtr(4),
			},
			want: false,
		},
		{
			name: "employee denied on unassigned task",
			ctx: permission.Context{
				Role:            domain.RoleEmployee,
				ActorAssigneeID: uintPtr(3),
				TaskAssigneeID:  nil,
			},
			want: false,
		},
		{
			name: "employee without profile link denied",
			ctx: permission.Context{
				Role:            domain.RoleEmployee,
				ActorAssigneeID: nil,
				TaskAssigneeID:  uintPtr(3),
			},
			want: false,
		},
		{
			name: "viewer never moves",
			ctx: permission.Context{
				Role:            domain.RoleViewer,
				ActorAssigneeID: uintPtr(3),
				TaskAssigneeID:  uintPtr(3),
			},
			want: false,
		},
		{
			name: "unknown role denied",
			ctx: permission.Context{
				Role:            domain.Role("INTERN"),
				ActorAssigneeID: uintPtr(3),
				TaskAssigneeID:  uintPtr(3),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, permission.CanMove(tt.ctx))
		})
	}
}

func TestCanMove_FlipsWhenAssigneeChanges(t *testing.T) {
	ctx := permission.Context{
		Role:            domain.RoleEmployee,
		ActorAssigneeID: uintPtr(10),
		TaskAssigneeID:  uintPtr(10),
	}
	require.True(t, permission.CanMove(ctx))

	// Reassigning the task to a different profile flips the decision.
	ctx.TaskAssigneeID = uintPtr(11)
	require.False(t, permission.CanMove(ctx))
}

func TestViewer_HasNoMutationPermissions(t *testing.T) {
	ctx := permission.Context{
		Role:            domain.RoleViewer,
		ActorID:         5,
		ActorAssigneeID: uintPtr(5),
		TaskOwnerID:     uintPtr(5),
		TaskAssigneeID:  uintPtr(5),
	}

	require.False(t, permission.CanCreate(ctx.Role))
	require.False(t, permission.CanEdit(ctx))
	require.False(t, permission.CanDelete(ctx))
	require.False(t, permission.CanAssign(ctx.Role))
	require.False(t, permission.CanChangePriority(ctx))
	require.False(t, permission.CanChangeDueDate(ctx))
	require.False(t, permission.CanManageTags(ctx))
	require.False(t, permission.CanMove(ctx))
}

func TestCanView_AlwaysTrue(t *testing.T) {
	for _, role := range []domain.Role{
		domain.RoleAdmin,
		domain.RoleSupervisor,
		domain.RoleEmployee,
		domain.RoleViewer,
		domain.Role(""),
	} {
		require.True(t, permission.CanView(role))
	}
}
