package handler

import (
	"bytes"
	"context"
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

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, session auth.UserSession, req *model.PlaceOrderRequest) (*model.OrderResponse, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListForUser(ctx context.Context, session auth.UserSession) ([]model.OrderResponse, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, session auth.UserSession, id uuid.UUID) (*model.OrderResponse, error) {
	args := m.Called(ctx, session, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) ListAll(ctx context.Context, admin auth.AdminSession) ([]model.OrderResponse, error) {
	args := m.Called(ctx, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderResponse), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, admin auth.AdminSession, id uuid.UUID, status model.OrderStatus) (*model.OrderResponse, error) {
	args := m.Called(ctx, admin, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}

// withSession attaches a session to the request context the way the auth
// middleware does.
func withSession(r *http.Request, session auth.UserSession) *http.Request {
	return r.WithContext(auth.ContextWithSession(r.Context(), session))
}

func TestOrderHandler_Place(t *testing.T) {
	logger := zerolog.Nop()
	session := auth.UserSession{UserID: uuid.New(), Email: "user@fooddelivery.com"}

	orderID := uuid.New()
	testResponse := &model.OrderResponse{
		ID:     orderID,
		UserID: session.UserID,
		Status: model.StatusPending,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		session        *auth.UserSession
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name: "Success",
			requestBody: &model.PlaceOrderRequest{
				Items: []model.OrderItemRequest{{FoodID: uuid.New(), Quantity: 2}},
			},
			session:        &session,
			mockReturn:     testResponse,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Empty cart",
			requestBody:    &model.PlaceOrderRequest{},
			session:        &session,
			mockError:      model.ErrEmptyCart,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name: "Item unavailable",
			requestBody: &model.PlaceOrderRequest{
				Items: []model.OrderItemRequest{{FoodID: uuid.New(), Quantity: 1}},
			},
			session:        &session,
			mockError:      model.ErrItemUnavailable,
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "No session",
			requestBody:    &model.PlaceOrderRequest{},
			session:        nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid body",
			requestBody:    "{not json",
			session:        &session,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			if tt.expectService {
				svc.On("Place", mock.Anything, session, mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", &body)
			if tt.session != nil {
				req = withSession(req, *tt.session)
			}
			rec := httptest.NewRecorder()

			h := NewOrderHandler(svc, logger)
			h.Place(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_MyOrders(t *testing.T) {
	logger := zerolog.Nop()
	session := auth.UserSession{UserID: uuid.New()}

	svc := new(MockOrderService)
	svc.On("ListForUser", mock.Anything, session).Return([]model.OrderResponse{
		{ID: uuid.New(), UserID: session.UserID, Status: model.StatusPending},
	}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil), session)
	rec := httptest.NewRecorder()

	h := NewOrderHandler(svc, logger)
	h.MyOrders(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var orders []model.OrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&orders))
	assert.Len(t, orders, 1)
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	session := auth.UserSession{UserID: uuid.New()}
	orderID := uuid.New()

	tests := []struct {
		name           string
		path           string
		mockReturn     *model.OrderResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/orders/" + orderID.String(),
			mockReturn:     &model.OrderResponse{ID: orderID, UserID: session.UserID},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			path:           "/api/orders/" + orderID.String(),
			mockError:      model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Forbidden",
			path:           "/api/orders/" + orderID.String(),
			mockError:      model.ErrForbidden,
			expectedStatus: http.StatusForbidden,
			expectService:  true,
		},
		{
			name:           "Invalid ID",
			path:           "/api/orders/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockOrderService)
			if tt.expectService {
				svc.On("Get", mock.Anything, session, orderID).Return(tt.mockReturn, tt.mockError)
			}

			req := withSession(httptest.NewRequest(http.MethodGet, tt.path, nil), session)
			rec := httptest.NewRecorder()

			h := NewOrderHandler(svc, logger)
			h.GetByID(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
