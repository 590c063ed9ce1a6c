package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrismart/marketplace-api/internal/core/domain"
	"github.com/agrismart/marketplace-api/internal/core/ports"
	"github.com/agrismart/marketplace-api/internal/metrics"
)

const minPasswordLength = 6

// TokenIssuer abstracts the bearer-token signer (internal/core/token).
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

// AuthService implements registration and login over the user store.
type AuthService struct {
	users      ports.UserRepository
	tokens     TokenIssuer
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens TokenIssuer, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, log: log}
}

// Register validates the input, hashes the password, and inserts the user in
// a single write. Duplicate email/phone surfaces from the store's unique
// indexes as ErrEmailTaken/ErrPhoneTaken; there is no pre-check, so two
// concurrent registrations with the same email cannot both succeed.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case in.Password == "":
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	case in.Role == "":
		return nil, fmt.Errorf("%w: role is required", domain.ErrValidation)
	case utf8.RuneCountInString(in.Password) < minPasswordLength:
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	case !domain.IsRegistrableRole(in.Role):
		return nil, fmt.Errorf("%w: role must be one of: %s", domain.ErrValidation, strings.Join(domain.RegistrableRoles, ", "))
	case email == "" && phone == "":
		return nil, fmt.Errorf("%w: email or phone is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         in.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(created.Role).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login resolves the user by email when one is supplied, otherwise by phone,
// verifies the password, and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if email == "" && phone == "" {
		return nil, fmt.Errorf("%w: email or phone is required", domain.ErrValidation)
	}

	var (
		user *domain.User
		err  error
	)
	if email != "" {
		user, err = s.users.FindByEmail(ctx, email)
	} else {
		user, err = s.users.FindByPhone(ctx, phone)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return &ports.LoginResult{Token: tok, User: user}, nil
}
