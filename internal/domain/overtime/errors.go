package overtime

import "errors"

var (
	ErrOvertimeNotFound = errors.New("overtime request not found")
)
