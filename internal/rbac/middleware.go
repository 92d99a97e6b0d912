package rbac

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/staffdesk/staffdesk/internal/platform/httpx"
	"github.com/staffdesk/staffdesk/internal/shared"
	"github.com/staffdesk/staffdesk/internal/token"
)

// TokenVerifier verifies a bearer token string.
type TokenVerifier interface {
	Verify(tokenString string) (token.Identity, error)
}

// Middleware wires the two-stage access gate for HTTP handlers.
type Middleware struct {
	Tokens      TokenVerifier
	Permissions PermissionSource
	Logger      *slog.Logger
}

// Authenticate is the first gate stage. It authenticates the bearer token,
// resolves the role's permission document, and attaches the principal to
// the request context. Failures short-circuit with 401; a role missing its
// permission record is an integrity fault and responds 500.
func (m Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httpx.RespondError(w, shared.Errorf(shared.ErrUnauthenticated, "Empty Authorization Header"))
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.RespondError(w, shared.Errorf(shared.ErrUnauthenticated, "Invalid Authentication Format"))
			return
		}
		identity, err := m.Tokens.Verify(parts[1])
		if err != nil {
			httpx.RespondError(w, shared.Errorf(shared.ErrUnauthenticated, "Invalid Token"))
			return
		}
		perms, err := m.Permissions.PermissionsForRole(r.Context(), identity.Role)
		if err != nil {
			if errors.Is(err, ErrRoleNotFound) {
				m.logger().Error("authenticated role has no permission record", slog.String("role", identity.Role))
			} else {
				m.logger().Error("load role permissions", slog.String("role", identity.Role), slog.Any("error", err))
			}
			httpx.RespondError(w, fmt.Errorf("load permissions for role %s: %w", identity.Role, err))
			return
		}
		principal := &Principal{UserID: identity.UserID, Role: identity.Role, Permissions: perms}
		next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), principal)))
	})
}

// Require is the second gate stage. The page/action pair is fixed at route
// registration time; it is never derived from request data. Requests that
// somehow reach it without a principal are rejected as unauthenticated.
func (m Middleware) Require(page, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if principal == nil {
				httpx.RespondError(w, shared.Errorf(shared.ErrUnauthenticated, "Unauthorized"))
				return
			}
			if !Allowed(principal.Permissions, page, action) {
				httpx.RespondError(w, shared.Errorf(shared.ErrForbidden, "Forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m Middleware) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}
