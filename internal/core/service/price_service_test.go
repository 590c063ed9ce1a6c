package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

type stubPriceCache struct {
	cached  []domain.PriceInsight
	getErr  error
	setErr  error
	setCnt  int
	lastSet []domain.PriceInsight
}

func (c *stubPriceCache) Get(_ context.Context) ([]domain.PriceInsight, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if c.cached == nil {
		return nil, false, nil
	}
	return c.cached, true, nil
}

func (c *stubPriceCache) Set(_ context.Context, insights []domain.PriceInsight) error {
	c.setCnt++
	c.lastSet = insights
	return c.setErr
}

func TestPriceService_MissPopulatesCache(t *testing.T) {
	cache := &stubPriceCache{}
	svc := NewPriceService(cache, zerolog.Nop())

	insights, err := svc.Insights(context.Background())
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	if len(insights) != 5 {
		t.Fatalf("expected 5 reference prices, got %d", len(insights))
	}
	if cache.setCnt != 1 {
		t.Fatalf("expected cache populated once, got %d", cache.setCnt)
	}
	if insights[0].Crop != "Maize" || insights[0].Location != "Nairobi" {
		t.Fatalf("unexpected first row: %+v", insights[0])
	}
}

func TestPriceService_Hit(t *testing.T) {
	cache := &stubPriceCache{cached: []domain.PriceInsight{
		{Crop: "Maize", Unit: "kg", AveragePrice: 55, Location: "Nairobi"},
	}}
	svc := NewPriceService(cache, zerolog.Nop())

	insights, err := svc.Insights(context.Background())
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	if len(insights) != 1 || insights[0].AveragePrice != 55 {
		t.Fatalf("expected cached row, got %+v", insights)
	}
	if cache.setCnt != 0 {
		t.Fatalf("cache must not be rewritten on hit")
	}
}

func TestPriceService_DegradesOnCacheFailure(t *testing.T) {
	cache := &stubPriceCache{getErr: errors.New("redis down")}
	svc := NewPriceService(cache, zerolog.Nop())

	insights, err := svc.Insights(context.Background())
	if err != nil {
		t.Fatalf("expected degrade, got error: %v", err)
	}
	if len(insights) != 5 {
		t.Fatalf("expected reference table, got %d rows", len(insights))
	}
}

func TestPriceService_NoCacheConfigured(t *testing.T) {
	svc := NewPriceService(nil, zerolog.Nop())

	insights, err := svc.Insights(context.Background())
	if err != nil {
		t.Fatalf("insights failed: %v", err)
	}
	if len(insights) != 5 {
		t.Fatalf("expected reference table, got %d rows", len(insights))
	}
}
