package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createListingRequest struct {
	CropName     string  `json:"crop_name"      validate:"required"`
	Quantity     float64 `json:"quantity"       validate:"required,gt=0"`
	Unit         string  `json:"unit"           validate:"omitempty,oneof=kg bag crate"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0"`
	Location     string  `json:"location"       validate:"required"`
	Description  string  `json:"description"`
}

// updateListingRequest is a partial update; absent fields stay unchanged.
type updateListingRequest struct {
	CropName     *string  `json:"crop_name"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
	PricePerUnit *float64 `json:"price_per_unit"`
	Location     *string  `json:"location"`
	Description  *string  `json:"description"`
}

type farmerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type listingResponse struct {
	ID           string          `json:"id"`
	FarmerID     string          `json:"farmer_id"`
	Farmer       *farmerResponse `json:"farmer,omitempty"`
	CropName     string          `json:"crop_name"`
	Quantity     float64         `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit float64         `json:"price_per_unit"`
	Location     string          `json:"location"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
