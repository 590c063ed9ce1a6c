package ports

import (
	"context"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

// ListingRepository defines the persistence interface for produce listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	FindAll(ctx context.Context) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
}
