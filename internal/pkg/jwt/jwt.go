package jwt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/access"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenTypeAccess is the only token type accepted for console sessions.
const TokenTypeAccess = "access"

var ErrInvalidToken = errors.New("invalid session token")

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	// Session decodes a verified token into the caller's session.
	Session(ctx context.Context, token jwt.Token) (access.Session, error)
	// GenerateAccessToken mints a token for session, used by tests and local
	// tooling; production tokens are issued by the HR backend.
	GenerateAccessToken(session access.Session, ttl time.Duration) (token string, expiresAt int64, err error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) Session(ctx context.Context, token jwt.Token) (access.Session, error) {
	if token == nil {
		return access.Session{}, ErrInvalidToken
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return access.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return SessionFromClaims(claims)
}

// SessionFromClaims builds a session from token claims. Numeric claims are
// accepted and rendered as decimal strings; absent claims stay empty.
func SessionFromClaims(claims map[string]interface{}) (access.Session, error) {
	if t, ok := claims["type"]; ok {
		if s, _ := t.(string); s != TokenTypeAccess {
			return access.Session{}, fmt.Errorf("%w: token type %v", ErrInvalidToken, t)
		}
	}

	session := access.Session{
		UserID:    claimString(claims["user_id"]),
		Username:  claimString(claims["username"]),
		RoleID:    claimString(claims["role_id"]),
		CompanyID: claimString(claims["company_id"]),
	}
	if session.UserID == "" {
		return access.Session{}, fmt.Errorf("%w: user_id claim missing", ErrInvalidToken)
	}
	return session, nil
}

func (j *JWTService) GenerateAccessToken(session access.Session, ttl time.Duration) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(ttl).Unix()

	claims := map[string]interface{}{
		"user_id":    session.UserID,
		"username":   session.Username,
		"role_id":    session.RoleID,
		"company_id": session.CompanyID,
		"type":       TokenTypeAccess,
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func claimString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
