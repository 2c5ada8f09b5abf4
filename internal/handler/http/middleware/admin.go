package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/auth"
	"github.com/relojcontrol/timeclock-backend-go/internal/domain/user"
	"github.com/relojcontrol/timeclock-backend-go/internal/handler/http/response"
)

// AdminOnly rejects requests whose token role is not ADMIN.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || user.Role(role) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// StaffOnly allows ADMIN and RRHH roles through. Employee self-service
// routes do not use it.
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || (user.Role(role) != user.RoleAdmin && user.Role(role) != user.RoleRRHH) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
