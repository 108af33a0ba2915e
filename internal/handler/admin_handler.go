package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"foodexpress/internal/auth"
	"foodexpress/internal/model"
	"foodexpress/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminHandler handles catalogue and order management HTTP requests.
type AdminHandler struct {
	catalog service.CatalogService
	orders  service.OrderService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(catalog service.CatalogService, orders service.OrderService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		orders:  orders,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// adminSession extracts the admin capability from the request context.
func adminSession(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (auth.AdminSession, bool) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required", logger)
		return auth.AdminSession{}, false
	}

	admin, ok := session.AsAdmin()
	if !ok {
		writeError(w, http.StatusForbidden, "admin privilege required", logger)
		return auth.AdminSession{}, false
	}

	return admin, true
}

// Foods handles GET and POST /api/admin/foods requests.
func (h *AdminHandler) Foods(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminSession(w, r, h.logger)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		items, err := h.catalog.ListAll(r.Context(), admin)
		if err != nil {
			writeServiceError(w, err, "failed to retrieve food items", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, items)

	case http.MethodPost:
		var req model.CreateFoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}

		item, err := h.catalog.Create(r.Context(), admin, &req)
		if err != nil {
			writeServiceError(w, err, "failed to create food item", h.logger)
			return
		}
		writeJSON(w, http.StatusCreated, item)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// FoodByID handles PUT and DELETE /api/admin/foods/{id} requests.
func (h *AdminHandler) FoodByID(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminSession(w, r, h.logger)
	if !ok {
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/admin/foods/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid food ID format", h.logger)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req model.UpdateFoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}

		item, err := h.catalog.Update(r.Context(), admin, id, &req)
		if err != nil {
			writeServiceError(w, err, "failed to update food item", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, item)

	case http.MethodDelete:
		if err := h.catalog.Delete(r.Context(), admin, id); err != nil {
			writeServiceError(w, err, "failed to delete food item", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Food item deleted successfully"})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// Orders handles GET /api/admin/orders requests.
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminSession(w, r, h.logger)
	if !ok {
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	orders, err := h.orders.ListAll(r.Context(), admin)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// OrderByID handles PUT /api/admin/orders/{id} requests (status updates).
func (h *AdminHandler) OrderByID(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminSession(w, r, h.logger)
	if !ok {
		return
	}

	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/admin/orders/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), admin, id, req.Status)
	if err != nil {
		writeServiceError(w, err, "failed to update order status", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
