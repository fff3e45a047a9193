// Package token verifies access tokens minted by the external identity
// provider and exposes the acting user's identity claims. This service never
// issues tokens itself.
package token

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrIdentityMissing = errors.New("identity claims missing from token")

// Identity is the contract surface supplied by the identity/role provider:
// who is acting, and whether their role flags grant manager operations.
type Identity struct {
	StaffID   string
	IsManager bool
}

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	IdentityFromContext(ctx context.Context) (Identity, error)
}

type tokenService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewService(secretKey string) Service {
	return &tokenService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *tokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

// IdentityFromContext reads the verified claims placed on the request context
// by the jwtauth verifier middleware.
func (s *tokenService) IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return Identity{}, ErrIdentityMissing
	}

	isManager, _ := claims["is_manager"].(bool)

	return Identity{StaffID: staffID, IsManager: isManager}, nil
}
