package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kalyanram2201/KrishiSathi/internal/cart"
	"github.com/kalyanram2201/KrishiSathi/internal/catalog"
	"github.com/kalyanram2201/KrishiSathi/internal/checkout"
	"github.com/kalyanram2201/KrishiSathi/internal/orders"
)

// Deps carries everything the router wires into handlers. OrdersRepo and
// the advisory dependencies may be nil; the matching routes are simply not
// mounted.
type Deps struct {
	Cart     *cart.Store
	Checkout *checkout.Manager
	Catalog  *catalog.Catalog

	OrdersRepo orders.Repository
	Advisory   *AdvisoryHandler
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	cartHandler := NewCartHandler(d.Cart, d.Catalog)
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{productId}", cartHandler.UpdateQuantity)
		r.Delete("/items/{productId}", cartHandler.RemoveItem)
	})

	checkoutHandler := NewCheckoutHandler(d.Checkout)
	r.Route("/api/checkout", func(r chi.Router) {
		r.Get("/", checkoutHandler.GetSession)
		r.Post("/", checkoutHandler.Open)
		r.Put("/contact", checkoutHandler.UpdateContact)
		r.Post("/submit", checkoutHandler.Submit)
		r.Post("/cancel", checkoutHandler.Cancel)
		r.Post("/retry", checkoutHandler.Retry)
	})

	catalogHandler := NewCatalogHandler(d.Catalog)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", catalogHandler.ListProducts)
		r.Get("/{productId}", catalogHandler.GetProduct)
	})

	if d.OrdersRepo != nil {
		r.Get("/api/orders", NewOrdersHandler(d.OrdersRepo).ListOrders)
	}

	if d.Advisory != nil {
		r.Post("/api/advisory/crops", d.Advisory.SuggestCrops)
		r.Post("/api/advisory/disease", d.Advisory.DetectDisease)
		r.Get("/api/weather", d.Advisory.GetWeather)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "krishisathi"})
}
