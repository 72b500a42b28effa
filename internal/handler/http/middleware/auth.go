package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-console-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/backend"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type sessionKey struct{}

// WithSession stores the caller's session in ctx.
func WithSession(ctx context.Context, session access.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFrom returns the session stored by AuthRequired.
func SessionFrom(ctx context.Context) (access.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(access.Session)
	return session, ok
}

// AuthRequired runs after jwtauth.Verifier. It turns the verified token into an
// access.Session and forwards the same credential to backend calls.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			session, err := jwtService.Session(r.Context(), token)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := WithSession(r.Context(), session)
			ctx = backend.WithToken(ctx, jwtauth.TokenFromHeader(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
