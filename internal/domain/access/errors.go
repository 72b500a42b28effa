package access

import "errors"

var (
	ErrSessionMissing = errors.New("session is missing from request context")
	ErrAccessDenied   = errors.New("access to this route is not allowed for the current session")
	ErrRouteUnknown   = errors.New("route is not registered in the route table")
)
