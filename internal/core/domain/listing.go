package domain

import "time"

// ListingUnit is the unit of sale for a produce listing.
type ListingUnit string

const (
	UnitKg    ListingUnit = "kg"
	UnitBag   ListingUnit = "bag"
	UnitCrate ListingUnit = "crate"
)

// IsValid reports whether u is a known unit.
func (u ListingUnit) IsValid() bool {
	switch u {
	case UnitKg, UnitBag, UnitCrate:
		return true
	}
	return false
}

// FarmerContact is the seller snapshot joined into listing reads.
type FarmerContact struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Listing is a produce offer published by a farmer.
type Listing struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	FarmerID     string      `json:"farmer_id" bson:"farmer_id"`
	CropName     string      `json:"crop_name" bson:"crop_name"`
	Quantity     float64     `json:"quantity" bson:"quantity"`
	Unit         ListingUnit `json:"unit" bson:"unit"`
	PricePerUnit float64     `json:"price_per_unit" bson:"price_per_unit"`
	Location     string      `json:"location" bson:"location"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}
