package ports

import (
	"context"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

// UserRepository defines the persistence interface for marketplace identities.
//
// Create must rely on the store's unique constraints for email/phone and
// return domain.ErrEmailTaken or domain.ErrPhoneTaken when one is violated;
// callers never pre-check, so the constraint is the single source of truth
// under concurrent registration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.User, error)
}
