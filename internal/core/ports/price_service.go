package ports

import (
	"context"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

type PriceService interface {
	Insights(ctx context.Context) ([]domain.PriceInsight, error)
}
