package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/server/http/dto"
)

// ProfileHandler manages favourites and saved addresses.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler creates ProfileHandler instance.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Favorites handles GET /api/favorites.
func (h *ProfileHandler) Favorites(c *gin.Context) {
	favorites, err := h.facade.Favorites(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewRestaurantResponses(favorites))
}

// ToggleFavorite handles POST /api/favorites.
func (h *ProfileHandler) ToggleFavorite(c *gin.Context) {
	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	favorite, err := h.facade.ToggleFavorite(c.Request.Context(), CurrentUserID(c), req.RestaurantID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.FavoriteResponse{RestaurantID: req.RestaurantID, Favorite: favorite})
}

// Addresses handles GET /api/addresses.
func (h *ProfileHandler) Addresses(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewAddressResponses(addresses))
}

// SaveAddress handles POST /api/addresses.
func (h *ProfileHandler) SaveAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	saved, err := h.facade.SaveAddress(c.Request.Context(), CurrentUserID(c), req.Label, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AddressResponse{
		ID:      saved.ID,
		Label:   saved.Label,
		Address: saved.FullAddress,
	})
}

// SetDefaultAddress handles PATCH /api/addresses/:id/default.
func (h *ProfileHandler) SetDefaultAddress(c *gin.Context) {
	addressID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetDefaultAddress(c.Request.Context(), CurrentUserID(c), addressID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
