package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodexpress/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	logger := zerolog.Nop()

	resp := &model.AuthResponse{
		Token: "signed-token",
		User:  model.User{ID: uuid.New(), Name: "Test User", Email: "user@fooddelivery.com"},
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockReturn     *model.AuthResponse
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			requestBody:    &model.RegisterRequest{Name: "Test User", Email: "user@fooddelivery.com", Password: "user123"},
			mockReturn:     resp,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Duplicate email",
			requestBody:    &model.RegisterRequest{Name: "Test User", Email: "user@fooddelivery.com", Password: "user123"},
			mockError:      model.ErrDuplicateEmail,
			expectedStatus: http.StatusConflict,
			expectService:  true,
		},
		{
			name:           "Invalid body",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			if tt.expectService {
				svc.On("Register", mock.Anything, mock.Anything).Return(tt.mockReturn, tt.mockError)
			}

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &body)
			rec := httptest.NewRecorder()

			h := NewAuthHandler(svc, logger)
			h.Register(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, mock.Anything).Return(&model.AuthResponse{Token: "signed-token"}, nil)

		body, _ := json.Marshal(&model.LoginRequest{Email: "user@fooddelivery.com", Password: "user123"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h := NewAuthHandler(svc, logger)
		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp model.AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidCredentials)

		body, _ := json.Marshal(&model.LoginRequest{Email: "user@fooddelivery.com", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h := NewAuthHandler(svc, logger)
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
		rec := httptest.NewRecorder()

		h := NewAuthHandler(new(MockAuthService), logger)
		h.Login(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
