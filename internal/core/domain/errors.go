package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrTaskTitleRequired = errors.New("task title required")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
)

// Message keys for forbidden reasons, resolved through the translator at the
// HTTP boundary so the client sees the reason verbatim.
const (
	MsgForbiddenManageTasks  = "forbiddenManageTasks"
	MsgForbiddenMoveTasks    = "forbiddenMoveTasks"
	MsgForbiddenMoveAssigned = "forbiddenMoveAssigned"
	MsgForbiddenManageUsers  = "forbiddenManageUsers"
)

// ForbiddenError is returned when a valid actor lacks permission. It always
// carries a message key so the user-facing layer can show the reason.
type ForbiddenError struct {
	MessageKey string
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.MessageKey
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

func Forbidden(messageKey string) error {
	return &ForbiddenError{MessageKey: messageKey}
}
