package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/domain/menu"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
)

// RequireRoute admits the request when the session may open the console route
// at path. The descriptor is resolved when the router is built; an unknown
// path panics.
func RequireRoute(table *menu.Table, path string) func(http.Handler) http.Handler {
	descriptor, err := table.Lookup(path)
	if err != nil {
		panic(fmt.Sprintf("middleware: %v", err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := SessionFrom(r.Context())
			if !ok {
				response.HandleError(w, access.ErrSessionMissing)
				return
			}

			if !descriptor.CanAccess(session) {
				response.HandleError(w, fmt.Errorf("%s: %w", descriptor.Path, access.ErrAccessDenied))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
