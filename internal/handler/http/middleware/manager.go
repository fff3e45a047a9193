package middleware

import (
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// ManagerOnly guards routes that change other people's data: approvals,
// schedule edits, sick leave logging, payroll.
func ManagerOnly(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		isManager, _ := claims["is_manager"].(bool)
		if !isManager {
			response.Forbidden(w, "Manager role required")
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
