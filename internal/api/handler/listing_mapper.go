package handler

import (
	"github.com/agrismart/marketplace-api/internal/core/domain"
	"github.com/agrismart/marketplace-api/internal/core/ports"
)

func toCreateListingInput(req createListingRequest) ports.CreateListingInput {
	return ports.CreateListingInput{
		CropName:     req.CropName,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Location:     req.Location,
		Description:  req.Description,
	}
}

func toUpdateListingInput(req updateListingRequest) ports.UpdateListingInput {
	return ports.UpdateListingInput{
		CropName:     req.CropName,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Location:     req.Location,
		Description:  req.Description,
	}
}

func toListingResponse(l domain.Listing, farmer *domain.FarmerContact) listingResponse {
	resp := listingResponse{
		ID:           l.ID,
		FarmerID:     l.FarmerID,
		CropName:     l.CropName,
		Quantity:     l.Quantity,
		Unit:         string(l.Unit),
		PricePerUnit: l.PricePerUnit,
		Location:     l.Location,
		Description:  l.Description,
		CreatedAt:    l.CreatedAt.UTC(),
		UpdatedAt:    l.UpdatedAt.UTC(),
	}
	if farmer != nil {
		resp.Farmer = &farmerResponse{
			ID:    farmer.ID,
			Name:  farmer.Name,
			Email: farmer.Email,
			Phone: farmer.Phone,
		}
	}
	return resp
}

func toListingListResponse(details []ports.ListingDetail) []listingResponse {
	out := make([]listingResponse, len(details))
	for i, d := range details {
		out[i] = toListingResponse(d.Listing, d.Farmer)
	}
	return out
}
