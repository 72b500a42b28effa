package approval

import "errors"

var (
	ErrUnknownAction      = errors.New("unknown approval action")
	ErrIllegalTransition  = errors.New("transition not allowed from the current status")
	ErrTransitionRejected = errors.New("transition rejected by the hr backend")
	ErrRecordNotFound     = errors.New("approval record not found")
)
