package apierrors

const (
	MsgFailListTask       = "errorListTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailMoveTask       = "failMoveTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgUnauthenticated    = "unauthenticated"
	MsgInvalidCredentials = "invalidCredentials"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgEmailTaken         = "emailTaken"
	MsgUserNotFound       = "userNotFound"
	MsgFailCreateUser     = "failCreateUser"
	MsgFailListAssignees  = "failListAssignees"
)
