package ports

import (
	"context"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

// RegisterInput carries the raw registration payload. Email and Phone are
// optional but at least one must be non-blank.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}

// LoginInput identifies a user by email or phone plus password. When both
// are supplied, email wins and phone is ignored.
type LoginInput struct {
	Email    string
	Phone    string
	Password string
}

// LoginResult bundles the issued bearer token with the authenticated user.
type LoginResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}
