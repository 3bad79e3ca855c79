package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/server/http/dto"
)

// CartHandler processes cart reads and mutations.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	snapshot, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(snapshot))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snapshot, err := h.facade.AddToCart(c.Request.Context(), CurrentUserID(c), model.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(snapshot))
}

// UpdateItem handles PATCH /api/cart/items/:id.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snapshot, err := h.facade.UpdateCartItem(c.Request.Context(), CurrentUserID(c), itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(snapshot))
}

// RemoveItem handles DELETE /api/cart/items/:id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snapshot, err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), itemID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(snapshot))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyPromo handles POST /api/cart/promo.
func (h *CartHandler) ApplyPromo(c *gin.Context) {
	var req dto.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snapshot, err := h.facade.ApplyPromo(c.Request.Context(), CurrentUserID(c), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPromoCode):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewCartResponse(snapshot))
}
