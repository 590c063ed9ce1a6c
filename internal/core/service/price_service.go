package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agrismart/marketplace-api/internal/core/domain"
	"github.com/agrismart/marketplace-api/internal/metrics"
)

// PriceCache abstracts the read-through cache in front of the price board
// (Redis in production).
type PriceCache interface {
	Get(ctx context.Context) ([]domain.PriceInsight, bool, error)
	Set(ctx context.Context, insights []domain.PriceInsight) error
}

// referencePrices is the static market price table served by the API.
var referencePrices = []domain.PriceInsight{
	{Crop: "Maize", Unit: "kg", AveragePrice: 50, Location: "Nairobi"},
	{Crop: "Beans", Unit: "kg", AveragePrice: 120, Location: "Nairobi"},
	{Crop: "Tomatoes", Unit: "kg", AveragePrice: 80, Location: "Nairobi"},
	{Crop: "Potatoes", Unit: "kg", AveragePrice: 60, Location: "Nakuru"},
	{Crop: "Onions", Unit: "kg", AveragePrice: 70, Location: "Eldoret"},
}

// PriceService serves crop price insights through an optional cache. Cache
// failures are logged and the static table is served directly, so the price
// board never goes down with Redis.
type PriceService struct {
	cache PriceCache
	log   zerolog.Logger
}

func NewPriceService(cache PriceCache, log zerolog.Logger) *PriceService {
	return &PriceService{cache: cache, log: log}
}

func (s *PriceService) Insights(ctx context.Context) ([]domain.PriceInsight, error) {
	if s.cache != nil {
		insights, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("price cache read failed, serving reference table")
		} else if ok {
			metrics.PriceCacheTotal.WithLabelValues("hit").Inc()
			return insights, nil
		}
	}

	insights := make([]domain.PriceInsight, len(referencePrices))
	copy(insights, referencePrices)

	if s.cache != nil {
		if err := s.cache.Set(ctx, insights); err != nil {
			s.log.Warn().Err(err).Msg("price cache write failed")
		}
		metrics.PriceCacheTotal.WithLabelValues("miss").Inc()
	}
	return insights, nil
}
