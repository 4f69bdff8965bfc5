package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the identity token.
const (
	RoleDMC       = "dmc"
	RoleDS        = "ds"
	RoleVolunteer = "volunteer"
)

// Claims identifies the caller of an authenticated route. Officers carry
// the district they triage for.
type Claims struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	District string `json:"district,omitempty"`
	jwt.RegisteredClaims
}

// Actor is the name recorded against actions taken by this identity.
func (c *Claims) Actor() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Role + "-" + c.UserID
}

// VolunteerID returns the numeric user id of a volunteer, or 0.
func (c *Claims) VolunteerID() int {
	if c.Role != RoleVolunteer {
		return 0
	}
	id, err := strconv.Atoi(c.UserID)
	if err != nil {
		return 0
	}
	return id
}

type claimsKey struct{}

// ClaimsFromContext returns the identity stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}

// WithClaims returns a copy of ctx carrying c.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// RequireAuth validates JWT tokens for protected routes and stores the
// claims in the request context.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole rejects requests whose token role is not one of roles.
// It must run after RequireAuth.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Authorization required")
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, "Insufficient permissions")
		})
	}
}
