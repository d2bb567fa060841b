package storefront

import (
	"context"
	"net/http"

	"lumiere/internal/cart"
	"lumiere/internal/menu"
	"lumiere/internal/middleware"
	"lumiere/internal/order"
	"lumiere/internal/session"
	"lumiere/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Recommender is satisfied by recommend.Service. It receives the catalog
// projection, never prices.
type Recommender interface {
	Recommend(ctx context.Context, prompt string, projection []string) string
}

type Handler struct {
	catalog     *menu.Catalog
	sessions    *session.Store
	recommender Recommender
	destination order.Destination
	log         logrus.FieldLogger
}

func NewHandler(
	catalog *menu.Catalog,
	sessions *session.Store,
	recommender Recommender,
	destination order.Destination,
	log logrus.FieldLogger,
) *Handler {
	return &Handler{
		catalog:     catalog,
		sessions:    sessions,
		recommender: recommender,
		destination: destination,
		log:         log,
	}
}

type sessionResponse struct {
	State      view.State     `json:"state"`
	Cart       cart.Snapshot  `json:"cart"`
	OrderTypes []order.Option `json:"orderTypes"`
}

func snapshot(s *session.Session) sessionResponse {
	return sessionResponse{State: s.View, Cart: s.Cart.Snapshot(), OrderTypes: order.Options()}
}

// withSession runs fn against the caller's session and turns a vanished
// session into a 410 so the client starts over.
func (h *Handler) withSession(c *gin.Context, fn func(*session.Session) error) bool {
	err := h.sessions.Update(middleware.SessionID(c), fn)
	if err == nil {
		return true
	}

	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusGone, gin.H{"error": "session expired"})
	case errors.Is(err, order.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, errBadRequest),
		errors.Is(err, order.ErrUnknownType),
		errors.Is(err, view.ErrCheckoutEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.WithError(err).Error("session update failed")
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return false
}

var errBadRequest = errors.New("bad request")

// --------------------------------------------------
// Session state
// --------------------------------------------------
func (h *Handler) GetSession(c *gin.Context) {
	var resp sessionResponse
	if !h.withSession(c, func(s *session.Session) error {
		resp = snapshot(s)
		return nil
	}) {
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PatchView(c *gin.Context) {
	var patch view.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var resp sessionResponse
	if !h.withSession(c, func(s *session.Session) error {
		if err := s.View.Apply(patch, h.catalog.Categories(), s.Cart.IsEmpty()); err != nil {
			if errors.Is(err, order.ErrUnknownType) || errors.Is(err, view.ErrCheckoutEmptyCart) {
				return err
			}
			return errors.Wrap(errBadRequest, err.Error())
		}
		resp = snapshot(s)
		return nil
	}) {
		return
	}
	c.JSON(http.StatusOK, resp)
}
