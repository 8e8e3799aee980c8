// Package board holds the client-side board state and reconciles optimistic
// drag-and-drop moves against the task API. The board is a projection of
// server state: it owns nothing the server does not also own, and on any
// failed mutation it re-derives itself with a full refetch instead of
// patching locally.
//
// The engine expects the UI's single-pointer interaction model: one goroutine,
// one drag gesture at a time, at most one move in flight.
package board

import (
	"context"
	"errors"
	"fmt"

	"taskboard/pkg/boardclient"
)

// Columns is the fixed column order of the board.
var Columns = []boardclient.TaskStatus{
	boardclient.StatusTodo,
	boardclient.StatusInProgress,
	boardclient.StatusDone,
}

type CardState int

const (
	// StateSettled means the local status matches the last server truth.
	StateSettled CardState = iota
	// StatePending means a move request is in flight for this card.
	StatePending
	// StateRolledBack means the last move failed; the board is re-derived
	// from the server before the card is shown again.
	StateRolledBack
)

func (s CardState) String() string {
	switch s {
	case StateSettled:
		return "settled"
	case StatePending:
		return "pending"
	case StateRolledBack:
		return "rolled-back"
	default:
		return fmt.Sprintf("cardstate(%d)", int(s))
	}
}

var (
	ErrUnknownTask   = errors.New("board: unknown task")
	ErrDragActive    = errors.New("board: a drag gesture is already active")
	ErrMovePending   = errors.New("board: a move is already in flight")
	ErrNoActiveDrag  = errors.New("board: no active drag for task")
	ErrStatusViaMove = errors.New("board: status changes must go through a move")
)

// TaskAPI is the slice of the task API the engine needs.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]boardclient.Task, error)
	MoveTask(ctx context.Context, taskID uint64, status boardclient.TaskStatus) (boardclient.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, req boardclient.UpdateTaskRequest) (boardclient.Task, error)
}

// Target identifies what a gesture is over: a column or another card.
type Target struct {
	column boardclient.TaskStatus
	taskID uint64
}

func ColumnTarget(status boardclient.TaskStatus) Target {
	return Target{column: status}
}

func CardTarget(taskID uint64) Target {
	return Target{taskID: taskID}
}

type Card struct {
	Task  boardclient.Task
	State CardState
}

type dragSession struct {
	taskID         uint64
	originalStatus boardclient.TaskStatus
}

type Engine struct {
	api   TaskAPI
	cards map[uint64]*Card
	order []uint64

	drag      *dragSession
	pendingID uint64
}

func New(api TaskAPI) *Engine {
	return &Engine{
		api:   api,
		cards: make(map[uint64]*Card),
	}
}

// Load replaces the whole board with the server's task list. Any drag or
// pending state is discarded; every card comes back settled.
func (e *Engine) Load(ctx context.Context) error {
	tasks, err := e.api.ListTasks(ctx)
	if err != nil {
		return err
	}

	cards := make(map[uint64]*Card, len(tasks))
	order := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		cards[task.ID] = &Card{Task: task, State: StateSettled}
		order = append(order, task.ID)
	}

	e.cards = cards
	e.order = order
	e.drag = nil
	e.pendingID = 0
	return nil
}

// Column returns the tasks currently shown in a column, including any card
// speculatively placed there by an in-progress drag.
func (e *Engine) Column(status boardclient.TaskStatus) []boardclient.Task {
	var tasks []boardclient.Task
	for _, id := range e.order {
		if card := e.cards[id]; card.Task.Status == status {
			tasks = append(tasks, card.Task)
		}
	}
	return tasks
}

func (e *Engine) Card(taskID uint64) (Card, bool) {
	card, ok := e.cards[taskID]
	if !ok {
		return Card{}, false
	}
	return *card, true
}

// DragStart records the card's status so a cancelled gesture can restore it.
// It is a pure UI affordance: nothing is persisted and no request is made.
func (e *Engine) DragStart(taskID uint64) error {
	if e.pendingID != 0 {
		return ErrMovePending
	}
	if e.drag != nil {
		return ErrDragActive
	}

	card, ok := e.cards[taskID]
	if !ok {
		return ErrUnknownTask
	}

	e.drag = &dragSession{taskID: taskID, originalStatus: card.Task.Status}
	return nil
}

// DragOver speculatively shows the dragged card in the hovered column. It is
// visual only, re-derived on every pointer move, and never calls the server.
func (e *Engine) DragOver(taskID uint64, over Target) {
	if e.drag == nil || e.drag.taskID != taskID {
		return
	}
	if over.taskID == taskID {
		return
	}

	status, ok := e.resolveTarget(over)
	if !ok {
		return
	}
	e.cards[taskID].Task.Status = status
}

// Drop finishes the gesture. A nil target, or a target that resolves to the
// original column, cancels the move locally with no server call. Otherwise
// the card goes Pending and a move request is issued: on success the card
// settles in the new column; on any failure the card is rolled back and the
// whole board is refetched, since other mutations may have landed meanwhile.
// The server's error (with its reason) is returned either way.
func (e *Engine) Drop(ctx context.Context, taskID uint64, over *Target) error {
	if e.drag == nil || e.drag.taskID != taskID {
		return ErrNoActiveDrag
	}

	original := e.drag.originalStatus
	e.drag = nil

	card := e.cards[taskID]

	final := original
	if over != nil && over.taskID != taskID {
		if status, ok := e.resolveTarget(*over); ok {
			final = status
		}
	}

	if final == original {
		card.Task.Status = original
		card.State = StateSettled
		return nil
	}

	card.Task.Status = final
	card.State = StatePending
	e.pendingID = taskID

	moved, err := e.api.MoveTask(ctx, taskID, final)
	if err != nil {
		card.State = StateRolledBack
		e.pendingID = 0
		if refetchErr := e.Load(ctx); refetchErr != nil {
			return errors.Join(err, refetchErr)
		}
		return err
	}

	card.Task = moved
	card.State = StateSettled
	e.pendingID = 0
	return nil
}

// UpdateFields dispatches a general field update. It refuses status changes:
// those carry different authorization on the server and must go through a
// drag/Drop move, never be merged into an edit.
func (e *Engine) UpdateFields(ctx context.Context, taskID uint64, req boardclient.UpdateTaskRequest) error {
	if req.Status != nil {
		return ErrStatusViaMove
	}
	if _, ok := e.cards[taskID]; !ok {
		return ErrUnknownTask
	}

	updated, err := e.api.UpdateTask(ctx, taskID, req)
	if err != nil {
		if refetchErr := e.Load(ctx); refetchErr != nil {
			return errors.Join(err, refetchErr)
		}
		return err
	}

	card := e.cards[taskID]
	card.Task = updated
	return nil
}

func (e *Engine) resolveTarget(over Target) (boardclient.TaskStatus, bool) {
	if over.column != "" {
		return over.column, true
	}
	if card, ok := e.cards[over.taskID]; ok {
		return card.Task.Status, true
	}
	return "", false
}
