package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snacksprint/storefront/internal/server/http/dto"
	"github.com/snacksprint/storefront/internal/usecase"
)

// CatalogHandler serves the restaurant list.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/restaurants.
func (h *CatalogHandler) List(c *gin.Context) {
	query := usecase.CatalogQuery{
		Search: c.Query("search"),
		SortBy: c.Query("sort"),
	}
	if raw := c.Query("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		query.MinRating = rating
	}
	if raw := c.Query("veg"); raw != "" {
		veg, err := strconv.ParseBool(raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		query.PureVeg = veg
	}

	restaurants, err := h.facade.Restaurants(c.Request.Context(), query)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewRestaurantResponses(restaurants))
}
