package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodexpress/internal/auth"
	"foodexpress/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminTestSession() auth.UserSession {
	return auth.UserSession{UserID: uuid.New(), Email: "admin@fooddelivery.com", Admin: true}
}

func TestAdminHandler_Foods(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("List includes unavailable items", func(t *testing.T) {
		items := []model.FoodItem{
			{ID: uuid.New(), Name: "Pizza", Available: true},
			{ID: uuid.New(), Name: "Sold Out", Available: false},
		}

		catalog := new(MockCatalogService)
		catalog.On("ListAll", mock.Anything, mock.Anything).Return(items, nil)

		req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/foods", nil), adminTestSession())
		rec := httptest.NewRecorder()

		h := NewAdminHandler(catalog, new(MockOrderService), logger)
		h.Foods(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []model.FoodItem
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("Create", func(t *testing.T) {
		created := &model.FoodItem{ID: uuid.New(), Name: "Masala Dosa", Price: 99}

		catalog := new(MockCatalogService)
		catalog.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(created, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"name":        "Masala Dosa",
			"description": "Crispy rice crepe",
			"price":       99,
		})
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/admin/foods", bytes.NewReader(body)), adminTestSession())
		rec := httptest.NewRecorder()

		h := NewAdminHandler(catalog, new(MockOrderService), logger)
		h.Foods(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Non-admin session is rejected", func(t *testing.T) {
		req := withSession(httptest.NewRequest(http.MethodGet, "/api/admin/foods", nil),
			auth.UserSession{UserID: uuid.New()})
		rec := httptest.NewRecorder()

		h := NewAdminHandler(new(MockCatalogService), new(MockOrderService), logger)
		h.Foods(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("No session is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/foods", nil)
		rec := httptest.NewRecorder()

		h := NewAdminHandler(new(MockCatalogService), new(MockOrderService), logger)
		h.Foods(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminHandler_FoodByID(t *testing.T) {
	logger := zerolog.Nop()
	foodID := uuid.New()

	t.Run("Update", func(t *testing.T) {
		updated := &model.FoodItem{ID: foodID, Name: "Pizza", Price: 14.99}

		catalog := new(MockCatalogService)
		catalog.On("Update", mock.Anything, mock.Anything, foodID, mock.Anything).Return(updated, nil)

		body, _ := json.Marshal(map[string]interface{}{"price": 14.99})
		req := withSession(httptest.NewRequest(http.MethodPut, "/api/admin/foods/"+foodID.String(), bytes.NewReader(body)), adminTestSession())
		rec := httptest.NewRecorder()

		h := NewAdminHandler(catalog, new(MockOrderService), logger)
		h.FoodByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Delete not found", func(t *testing.T) {
		catalog := new(MockCatalogService)
		catalog.On("Delete", mock.Anything, mock.Anything, foodID).Return(model.ErrFoodNotFound)

		req := withSession(httptest.NewRequest(http.MethodDelete, "/api/admin/foods/"+foodID.String(), nil), adminTestSession())
		rec := httptest.NewRecorder()

		h := NewAdminHandler(catalog, new(MockOrderService), logger)
		h.FoodByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		req := withSession(httptest.NewRequest(http.MethodDelete, "/api/admin/foods/not-a-uuid", nil), adminTestSession())
		rec := httptest.NewRecorder()

		h := NewAdminHandler(new(MockCatalogService), new(MockOrderService), logger)
		h.FoodByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_OrderByID(t *testing.T) {
	logger := zerolog.Nop()
	orderID := uuid.New()

	tests := []struct {
		name           string
		status         model.OrderStatus
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			status:         model.StatusOutForDelivery,
			mockReturn:     &model.OrderResponse{ID: orderID, Status: model.StatusOutForDelivery},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid status",
			status:         model.OrderStatus("teleported"),
			mockError:      model.ErrInvalidStatus,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Not found",
			status:         model.StatusConfirmed,
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderService)
			orders.On("UpdateStatus", mock.Anything, mock.Anything, orderID, tt.status).Return(tt.mockReturn, tt.mockError)

			body, _ := json.Marshal(&model.UpdateOrderStatusRequest{Status: tt.status})
			req := withSession(httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+orderID.String(), bytes.NewReader(body)), adminTestSession())
			rec := httptest.NewRecorder()

			h := NewAdminHandler(new(MockCatalogService), orders, logger)
			h.OrderByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
