package middleware

import (
	"net/http"

	"github.com/darrylcauldwell/workforce-backend-go/internal/handler/http/response"
	"github.com/darrylcauldwell/workforce-backend-go/internal/pkg/token"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			tok, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if tok == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			staffID, ok := claims["staff_id"].(string)
			if !ok || staffID == "" {
				response.HandleError(w, token.ErrIdentityMissing)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
