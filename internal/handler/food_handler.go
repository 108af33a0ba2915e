package handler

import (
	"net/http"
	"strings"

	"foodexpress/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FoodHandler handles public catalogue HTTP requests.
type FoodHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service service.CatalogService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// List handles GET /api/food requests with optional search and category filters.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	items, err := h.service.ListAvailable(r.Context(), search, category)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve food items", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/food/{id} requests.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/food/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "food ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid food ID format", h.logger)
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve food item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
