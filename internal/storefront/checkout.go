package storefront

import (
	"net/http"

	"lumiere/internal/middleware"
	"lumiere/internal/order"
	"lumiere/internal/session"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	Name            string `json:"name"`
	LocationOrTable string `json:"locationOrTable"`
	Notes           string `json:"notes"`
	OrderType       string `json:"orderType"`
}

// --------------------------------------------------
// Build the order message and handoff link
// --------------------------------------------------
// The cart is left alone; clients clear it with DELETE /cart once the
// handoff link has been opened.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var handoff *order.Handoff
	if !h.withSession(c, func(s *session.Session) error {
		t := s.View.OrderType
		if req.OrderType != "" {
			parsed, err := order.ParseType(req.OrderType)
			if err != nil {
				return err
			}
			t = parsed
		}

		customer := order.Customer{
			Name:            req.Name,
			LocationOrTable: req.LocationOrTable,
			Notes:           req.Notes,
		}

		// keep what was typed so the form survives a failed submit
		s.View.OrderType = t
		s.View.Customer = customer

		var err error
		handoff, err = order.Checkout(s.Cart, customer, t, h.destination)
		return err
	}) {
		return
	}

	h.log.WithField("session", middleware.SessionID(c)).Info("order handed off")
	c.JSON(http.StatusOK, handoff)
}
