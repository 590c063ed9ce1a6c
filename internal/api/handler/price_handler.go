package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrismart/marketplace-api/internal/core/ports"
)

// PriceHandler serves the market price board.
type PriceHandler struct {
	service ports.PriceService
}

func NewPriceHandler(service ports.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

// Insights handles GET /prices.
//
// @Summary      Market price insights
// @Tags         prices
// @Produce      json
// @Success      200  {array}   domain.PriceInsight
// @Failure      500  {object}  errorResponse
// @Router       /prices [get]
func (h *PriceHandler) Insights(c echo.Context) error {
	insights, err := h.service.Insights(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insights)
}
