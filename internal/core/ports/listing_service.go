package ports

import (
	"context"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

// CreateListingInput carries the fields a farmer supplies for a new listing.
type CreateListingInput struct {
	CropName     string
	Quantity     float64
	Unit         string
	PricePerUnit float64
	Location     string
	Description  string
}

// UpdateListingInput is a partial update; nil fields are left untouched.
type UpdateListingInput struct {
	CropName     *string
	Quantity     *float64
	Unit         *string
	PricePerUnit *float64
	Location     *string
	Description  *string
}

// ListingDetail is a listing joined with its farmer's contact snapshot.
// Farmer is nil when the owning user record no longer exists.
type ListingDetail struct {
	Listing domain.Listing
	Farmer  *domain.FarmerContact
}

type ListingService interface {
	Create(ctx context.Context, farmerID string, in CreateListingInput) (*domain.Listing, error)
	List(ctx context.Context) ([]ListingDetail, error)
	Get(ctx context.Context, id string) (*ListingDetail, error)
	Update(ctx context.Context, farmerID, id string, in UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, farmerID, id string) error
}
