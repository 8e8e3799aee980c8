package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/pkg/board"
	"taskboard/pkg/boardclient"
)

// fakeAPI is a scriptable TaskAPI that records every server call.
type fakeAPI struct {
	tasks     []boardclient.Task
	moveErr   error
	updateErr error

	listCalls   int
	moveCalls   []moveCall
	updateCalls int
}

type moveCall struct {
	taskID uint64
	status boardclient.TaskStatus
}

func (f *fakeAPI) ListTasks(context.Context) ([]boardclient.Task, error) {
	f.listCalls++
	tasks := make([]boardclient.Task, len(f.tasks))
	copy(tasks, f.tasks)
	return tasks, nil
}

func (f *fakeAPI) MoveTask(_ context.Context, taskID uint64, status boardclient.TaskStatus) (boardclient.Task, error) {
	f.moveCalls = append(f.moveCalls, moveCall{taskID: taskID, status: status})
	if f.moveErr != nil {
		return boardclient.Task{}, f.moveErr
	}
	for i, task := range f.tasks {
		if task.ID == taskID {
			f.tasks[i].Status = status
			return f.tasks[i], nil
		}
	}
	return boardclient.Task{}, &boardclient.APIError{StatusCode: 404, Message: "Task not found"}
}

func (f *fakeAPI) UpdateTask(_ context.Context, taskID uint64, req boardclient.UpdateTaskRequest) (boardclient.Task, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return boardclient.Task{}, f.updateErr
	}
	for i, task := range f.tasks {
		if task.ID == taskID {
			if req.Title != nil {
				f.tasks[i].Title = *req.Title
			}
			return f.tasks[i], nil
		}
	}
	return boardclient.Task{}, &boardclient.APIError{StatusCode: 404, Message: "Task not found"}
}

func newLoadedEngine(t *testing.T, api *fakeAPI) *board.Engine {
	t.Helper()
	engine := board.New(api)
	require.NoError(t, engine.Load(context.Background()))
	return engine
}

func threeTasks() []boardclient.Task {
	return []boardclient.Task{
		{ID: 1, Title: "Write spec", Status: boardclient.StatusTodo},
		{ID: 2, Title: "Review PR", Status: boardclient.StatusInProgress},
		{ID: 3, Title: "Deploy", Status: boardclient.StatusDone},
	}
}

func TestLoad_PartitionsTasksByColumn(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.Len(t, engine.Column(boardclient.StatusTodo), 1)
	require.Len(t, engine.Column(boardclient.StatusInProgress), 1)
	require.Len(t, engine.Column(boardclient.StatusDone), 1)

	card, ok := engine.Card(1)
	require.True(t, ok)
	require.Equal(t, board.StateSettled, card.State)
}

func TestDragOver_IsSpeculativeAndLocal(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.NoError(t, engine.DragStart(1))
	engine.DragOver(1, board.ColumnTarget(boardclient.StatusDone))

	// Shown in the hovered column, but nothing was sent to the server.
	require.Len(t, engine.Column(boardclient.StatusDone), 2)
	require.Empty(t, engine.Column(boardclient.StatusTodo))
	require.Empty(t, api.moveCalls)

	// Hovering back re-derives the speculative placement.
	engine.DragOver(1, board.ColumnTarget(boardclient.StatusTodo))
	require.Len(t, engine.Column(boardclient.StatusTodo), 1)
	require.Empty(t, api.moveCalls)
}

func TestDragOver_OnAnotherCardUsesItsColumn(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.NoError(t, engine.DragStart(1))
	engine.DragOver(1, board.CardTarget(2))

	require.Len(t, engine.Column(boardclient.StatusInProgress), 2)
	require.Empty(t, api.moveCalls)
}

func TestDrop_OutsideAnyTargetCancelsWithoutServerCall(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.NoError(t, engine.DragStart(1))
	engine.DragOver(1, board.ColumnTarget(boardclient.StatusDone))

	require.NoError(t, engine.Drop(context.Background(), 1, nil))

	require.Empty(t, api.moveCalls)
	card, _ := engine.Card(1)
	require.Equal(t, board.StateSettled, card.State)
	require.Equal(t, boardclient.StatusTodo, card.Task.Status)
}

func TestDrop_OnOriginalColumnIsNoOp(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.NoError(t, engine.DragStart(1))
	target := board.ColumnTarget(boardclient.StatusTodo)
	require.NoError(t, engine.Drop(context.Background(), 1, &target))

	require.Empty(t, api.moveCalls)
}

func TestDrop_CommitsOnSuccess(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.NoError(t, engine.DragStart(1))
	engine.DragOver(1, board.ColumnTarget(boardclient.StatusDone))
	target := board.ColumnTarget(boardclient.StatusDone)
	require.NoError(t, engine.Drop(context.Background(), 1, &target))

	require.Equal(t, []moveCall{{taskID: 1, status: boardclient.StatusDone}}, api.moveCalls)

	card, _ := engine.Card(1)
	require.Equal(t, board.StateSettled, card.State)
	require.Equal(t, boardclient.StatusDone, card.Task.Status)
	// The optimistic value already matched truth: no refetch.
	require.Equal(t, 1, api.listCalls)
}

func TestDrop_RollsBackByRefetchOnFailure(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	api.moveErr = &boardclient.APIError{
		StatusCode: 403,
		Message:    "you can only move tasks assigned to you",
	}
	engine := newLoadedEngine(t, api)

	require.NoError(t, engine.DragStart(1))
	engine.DragOver(1, board.ColumnTarget(boardclient.StatusDone))
	target := board.ColumnTarget(boardclient.StatusDone)
	err := engine.Drop(context.Background(), 1, &target)

	// The server's reason reaches the caller verbatim.
	require.ErrorContains(t, err, "assigned to you")

	// Rollback is a full refetch, not a local patch.
	require.Equal(t, 2, api.listCalls)
	card, _ := engine.Card(1)
	require.Equal(t, board.StateSettled, card.State)
	require.Equal(t, boardclient.StatusTodo, card.Task.Status)
}

func TestDragStart_RejectedWhileMovePending(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.NoError(t, engine.DragStart(1))
	require.ErrorIs(t, engine.DragStart(2), board.ErrDragActive)
}

func TestDrop_WithoutDragRejected(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.ErrorIs(t, engine.Drop(context.Background(), 1, nil), board.ErrNoActiveDrag)
}

func TestDragStart_UnknownTask(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	require.ErrorIs(t, engine.DragStart(99), board.ErrUnknownTask)
}

func TestUpdateFields_RefusesStatusChanges(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	status := "done"
	err := engine.UpdateFields(context.Background(), 1, boardclient.UpdateTaskRequest{Status: &status})
	require.ErrorIs(t, err, board.ErrStatusViaMove)
	require.Zero(t, api.updateCalls)
}

func TestUpdateFields_AppliesServerResult(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	engine := newLoadedEngine(t, api)

	title := "Write the full spec"
	require.NoError(t, engine.UpdateFields(context.Background(), 1, boardclient.UpdateTaskRequest{Title: &title}))

	card, _ := engine.Card(1)
	require.Equal(t, "Write the full spec", card.Task.Title)
}

func TestUpdateFields_RefetchesOnFailure(t *testing.T) {
	api := &fakeAPI{tasks: threeTasks()}
	api.updateErr = &boardclient.APIError{StatusCode: 403, Message: "you do not have permission to manage tasks"}
	engine := newLoadedEngine(t, api)

	title := "nope"
	err := engine.UpdateFields(context.Background(), 1, boardclient.UpdateTaskRequest{Title: &title})
	require.ErrorContains(t, err, "permission")
	require.Equal(t, 2, api.listCalls)
}
