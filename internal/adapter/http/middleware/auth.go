package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/infrastructure/auth"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// ClaimsContextKey is the context key for the authenticated user's claims
	ClaimsContextKey ContextKey = "claims"
)

// AuthMiddleware creates an authentication middleware
func AuthMiddleware(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole creates a middleware that checks for a minimum role
func RequireRole(minRole domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaimsFromContext(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			switch minRole {
			case domain.RoleSuperadmin:
				if claims.Role != domain.RoleSuperadmin {
					http.Error(w, "insufficient permissions", http.StatusForbidden)
					return
				}
			case domain.RoleAdmin:
				if claims.Role != domain.RoleSuperadmin && claims.Role != domain.RoleAdmin {
					http.Error(w, "insufficient permissions", http.StatusForbidden)
					return
				}
			case domain.RoleUser:
				// All authenticated users pass
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClaimsFromContext extracts the authenticated user's claims from context
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok
}

// TenantFromRequest resolves the tenant a request is scoped to. Regular users
// are always pinned to their own tenant; superadmins may address another
// tenant through the tenant_id query parameter.
func TenantFromRequest(r *http.Request) (int64, bool) {
	claims, ok := GetClaimsFromContext(r.Context())
	if !ok {
		return 0, false
	}
	if claims.Role == domain.RoleSuperadmin {
		if raw := r.URL.Query().Get("tenant_id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				return id, true
			}
		}
	}
	return claims.TenantID, true
}
