package httpserver

import (
	"log"
	"time"

	"developerhorizon/internal/service/cart"
	"developerhorizon/internal/service/catalog"
	"developerhorizon/internal/service/checkout"
	"developerhorizon/internal/service/order"
	"developerhorizon/internal/service/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the routes are built from.
type Deps struct {
	Sessions  *session.Service
	Carts     *cart.Manager
	Catalog   *catalog.Store
	Checkouts *checkout.Manager
	Orders    *order.Service
}

// buildRouter wires the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api.Use(sessionMiddleware(deps.Sessions))

	limiter := newRateLimiter()
	api.Use(limiter.middleware())

	api.GET("/products", h.listProducts)
	api.GET("/products/:productId", h.getProduct)

	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.addCartItem)
	api.DELETE("/cart/items", h.removeCartItem)
	api.PUT("/cart/items/:variantId", h.updateCartItemQuantity)
	api.DELETE("/cart", h.clearCart)

	api.GET("/checkout", h.getCheckout)
	api.PUT("/checkout", h.updateCheckoutDraft)
	api.PUT("/checkout/shipping", h.selectShipping)

	api.POST("/orders", h.submitOrder)
	api.POST("/orders/status", h.orderStatus)
	api.GET("/orders/success", h.orderSuccess)

	return router
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
