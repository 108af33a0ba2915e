package router

import (
	"net/http"
	"strings"

	"foodexpress/internal/handler"
	"foodexpress/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	foodHandler *handler.FoodHandler,
	authHandler *handler.AuthHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	verifier middleware.TokenVerifier,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public auth routes
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/login", authHandler.Login)

	// Public catalogue routes
	foodRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/food" && r.URL.Path != "/api/food/" {
			foodHandler.GetByID(w, r)
			return
		}
		foodHandler.List(w, r)
	}
	mux.HandleFunc("/api/food", foodRouteHandler)
	mux.HandleFunc("/api/food/", foodRouteHandler)

	// Order routes (authenticated user)
	orderRoutes := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/":
			orderHandler.Place(w, r)
		case r.URL.Path == "/api/orders/my-orders":
			orderHandler.MyOrders(w, r)
		case strings.HasPrefix(r.URL.Path, "/api/orders/"):
			orderHandler.GetByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})
	requireUser := middleware.RequireUser(verifier, logger)
	mux.Handle("/api/orders", requireUser(orderRoutes))
	mux.Handle("/api/orders/", requireUser(orderRoutes))

	// Admin routes
	adminRoutes := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/admin/foods" || r.URL.Path == "/api/admin/foods/":
			adminHandler.Foods(w, r)
		case strings.HasPrefix(r.URL.Path, "/api/admin/foods/"):
			adminHandler.FoodByID(w, r)
		case r.URL.Path == "/api/admin/orders" || r.URL.Path == "/api/admin/orders/":
			adminHandler.Orders(w, r)
		case strings.HasPrefix(r.URL.Path, "/api/admin/orders/"):
			adminHandler.OrderByID(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	})
	requireAdmin := middleware.RequireAdmin(verifier, logger)
	mux.Handle("/api/admin/", requireAdmin(adminRoutes))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
