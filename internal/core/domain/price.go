package domain

// PriceInsight is a reference market price for a crop in a given location.
type PriceInsight struct {
	Crop         string  `json:"crop"`
	Unit         string  `json:"unit"`
	AveragePrice float64 `json:"average_price"`
	Location     string  `json:"location"`
}
