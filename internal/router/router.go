package router

import (
	"time"

	"lumiere/internal/menu"
	"lumiere/internal/middleware"
	"lumiere/internal/order"
	"lumiere/internal/session"
	"lumiere/internal/storefront"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Deps struct {
	Catalog     *menu.Catalog
	Sessions    *session.Store
	Tokens      *session.Tokens
	Recommender storefront.Recommender
	Destination order.Destination
	CORSOrigins []string
	Logger      logrus.FieldLogger
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionHeader},
			ExposeHeaders:    []string{middleware.SessionHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── MENU ─────────────────────────
	menuHandler := menu.NewHandler(d.Catalog)
	r.GET("/menu", menuHandler.List)
	r.GET("/menu/:id", menuHandler.Get)

	// ───────────────────────── STOREFRONT ─────────────────────────
	shop := storefront.NewHandler(d.Catalog, d.Sessions, d.Recommender, d.Destination, d.Logger)

	s := r.Group("")
	s.Use(middleware.Session(d.Sessions, d.Tokens, d.Logger))
	{
		s.GET("/session", shop.GetSession)
		s.PATCH("/session/view", shop.PatchView)

		s.POST("/cart/items", shop.AddItem)
		s.PATCH("/cart/items/:id", shop.UpdateQuantity)
		s.DELETE("/cart", shop.ClearCart)

		s.POST("/checkout", shop.Checkout)
		s.POST("/recommendations", shop.Recommend)
	}

	return r
}
