package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrismart/marketplace-api/internal/core/domain"
	"github.com/agrismart/marketplace-api/internal/core/ports"
	"github.com/agrismart/marketplace-api/internal/metrics"
)

// ListingService implements produce listing CRUD with farmer ownership rules.
type ListingService struct {
	listings ports.ListingRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewListingService(listings ports.ListingRepository, users ports.UserRepository, log zerolog.Logger) *ListingService {
	return &ListingService{listings: listings, users: users, log: log}
}

func (s *ListingService) Create(ctx context.Context, farmerID string, in ports.CreateListingInput) (*domain.Listing, error) {
	cropName := strings.TrimSpace(in.CropName)
	location := strings.TrimSpace(in.Location)

	switch {
	case cropName == "":
		return nil, fmt.Errorf("%w: crop_name is required", domain.ErrValidation)
	case in.Quantity <= 0:
		return nil, fmt.Errorf("%w: quantity must be greater than zero", domain.ErrValidation)
	case in.PricePerUnit <= 0:
		return nil, fmt.Errorf("%w: price_per_unit must be greater than zero", domain.ErrValidation)
	case location == "":
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}

	unit := domain.ListingUnit(in.Unit)
	if in.Unit == "" {
		unit = domain.UnitKg
	} else if !unit.IsValid() {
		return nil, fmt.Errorf("%w: unit must be one of: kg, bag, crate", domain.ErrValidation)
	}

	now := time.Now().UTC()
	listing := &domain.Listing{
		FarmerID:     farmerID,
		CropName:     cropName,
		Quantity:     in.Quantity,
		Unit:         unit,
		PricePerUnit: in.PricePerUnit,
		Location:     location,
		Description:  strings.TrimSpace(in.Description),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.listings.Create(ctx, listing)
	if err != nil {
		return nil, err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(string(created.Unit)).Inc()
	s.log.Info().Str("listing_id", created.ID).Str("farmer_id", farmerID).Str("crop", created.CropName).Msg("listing created")
	return created, nil
}

// List returns all listings, newest first, each joined with its farmer's
// contact snapshot.
func (s *ListingService) List(ctx context.Context) ([]ports.ListingDetail, error) {
	listings, err := s.listings.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	contacts, err := s.farmerContacts(ctx, listings)
	if err != nil {
		return nil, err
	}

	details := make([]ports.ListingDetail, len(listings))
	for i, l := range listings {
		details[i] = ports.ListingDetail{Listing: l, Farmer: contacts[l.FarmerID]}
	}
	return details, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*ports.ListingDetail, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contacts, err := s.farmerContacts(ctx, []domain.Listing{*listing})
	if err != nil {
		return nil, err
	}
	return &ports.ListingDetail{Listing: *listing, Farmer: contacts[listing.FarmerID]}, nil
}

// Update applies the non-nil fields of in to the listing. Only the owning
// farmer may update a listing.
func (s *ListingService) Update(ctx context.Context, farmerID, id string, in ports.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.FarmerID != farmerID {
		return nil, domain.ErrForbidden
	}

	if in.CropName != nil {
		name := strings.TrimSpace(*in.CropName)
		if name == "" {
			return nil, fmt.Errorf("%w: crop_name cannot be blank", domain.ErrValidation)
		}
		listing.CropName = name
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be greater than zero", domain.ErrValidation)
		}
		listing.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		unit := domain.ListingUnit(*in.Unit)
		if !unit.IsValid() {
			return nil, fmt.Errorf("%w: unit must be one of: kg, bag, crate", domain.ErrValidation)
		}
		listing.Unit = unit
	}
	if in.PricePerUnit != nil {
		if *in.PricePerUnit <= 0 {
			return nil, fmt.Errorf("%w: price_per_unit must be greater than zero", domain.ErrValidation)
		}
		listing.PricePerUnit = *in.PricePerUnit
	}
	if in.Location != nil {
		loc := strings.TrimSpace(*in.Location)
		if loc == "" {
			return nil, fmt.Errorf("%w: location cannot be blank", domain.ErrValidation)
		}
		listing.Location = loc
	}
	if in.Description != nil {
		listing.Description = strings.TrimSpace(*in.Description)
	}

	listing.UpdatedAt = time.Now().UTC()
	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}

	s.log.Info().Str("listing_id", listing.ID).Str("farmer_id", farmerID).Msg("listing updated")
	return listing, nil
}

// Delete removes a listing. Only the owning farmer may delete it.
func (s *ListingService) Delete(ctx context.Context, farmerID, id string) error {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.FarmerID != farmerID {
		return domain.ErrForbidden
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("listing_id", id).Str("farmer_id", farmerID).Msg("listing deleted")
	return nil
}

// farmerContacts resolves the owning users for a set of listings in a single
// batched lookup. Missing users are simply absent from the map.
func (s *ListingService) farmerContacts(ctx context.Context, listings []domain.Listing) (map[string]*domain.FarmerContact, error) {
	seen := make(map[string]struct{}, len(listings))
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		if _, ok := seen[l.FarmerID]; !ok {
			seen[l.FarmerID] = struct{}{}
			ids = append(ids, l.FarmerID)
		}
	}
	if len(ids) == 0 {
		return map[string]*domain.FarmerContact{}, nil
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve farmers: %w", err)
	}

	contacts := make(map[string]*domain.FarmerContact, len(users))
	for _, u := range users {
		contacts[u.ID] = &domain.FarmerContact{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
	}
	return contacts, nil
}
