package storefront

import (
	"net/http"
	"strconv"

	"lumiere/internal/cart"
	"lumiere/internal/session"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// Add one of a menu item
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		ID *int `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	item, ok := h.catalog.Find(*req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	var resp sessionResponse
	if !h.withSession(c, func(s *session.Session) error {
		s.Cart.AddItem(item)
		s.View.ItemAdded(item.Name)
		resp = snapshot(s)
		return nil
	}) {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// Change a line's quantity by delta; unknown ids are a no-op
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req struct {
		Delta *int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}
	if *req.Delta > cart.MaxQuantity || *req.Delta < -cart.MaxQuantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta out of range"})
		return
	}

	var resp sessionResponse
	if !h.withSession(c, func(s *session.Session) error {
		s.Cart.SetQuantity(id, *req.Delta)
		if s.Cart.IsEmpty() {
			s.View.ShowCheckout = false
		}
		resp = snapshot(s)
		return nil
	}) {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// Empty the cart
// --------------------------------------------------
func (h *Handler) ClearCart(c *gin.Context) {
	var resp sessionResponse
	if !h.withSession(c, func(s *session.Session) error {
		s.Cart.Clear()
		s.View.ShowCheckout = false
		resp = snapshot(s)
		return nil
	}) {
		return
	}
	c.JSON(http.StatusOK, resp)
}
