package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"xutix/internal/admin"
	"xutix/internal/mw"
)

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

func NewRouter(shop *Shop, adminSvc *admin.Service, sc SessionConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Public routes
	r.Get("/api/catalog", CatalogHandler(shop.Calc))
	r.Post("/api/quote", QuoteHandler(shop.Calc))

	// Session routes
	r.Group(func(r chi.Router) {
		r.Use(mw.SessionMiddleware(sc.Secret, sc.TTL))

		r.Get("/api/cart", GetCartHandler(shop))
		r.Post("/api/cart/items", AddCartItemHandler(shop))
		r.Delete("/api/cart/items/{id}", RemoveCartItemHandler(shop))

		r.Post("/api/checkout/start", StartCheckoutHandler(shop))
		r.Get("/api/checkout", GetCheckoutHandler(shop))
		r.Post("/api/checkout", PlaceOrderHandler(shop))
		r.Post("/api/buy-now", BuyNowHandler(shop))
		r.Get("/api/payment-verification", PaymentVerificationHandler(shop))
	})

	// Operator routes
	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/orders", ListAdminOrdersHandler(adminSvc))
		r.Get("/orders/{id}", GetAdminOrderHandler(adminSvc))
		r.Post("/orders/{id}/status", UpdateAdminOrderStatusHandler(adminSvc))
		r.Post("/orders/{id}/deliver", DeliverAdminOrderHandler(adminSvc))
		r.Get("/stats", AdminStatsHandler(adminSvc))
	})

	return r
}
