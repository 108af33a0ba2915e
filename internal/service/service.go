package service

import (
	"context"

	"foodexpress/internal/auth"
	"foodexpress/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines operations for the food catalogue.
type CatalogService interface {
	// ListAvailable retrieves available food items, optionally filtered by a
	// search term and category.
	ListAvailable(ctx context.Context, search, category string) ([]model.FoodItem, error)

	// GetByID retrieves a single food item by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error)

	// ListAll retrieves every food item, including unavailable ones.
	ListAll(ctx context.Context, admin auth.AdminSession) ([]model.FoodItem, error)

	// Create adds a new food item to the catalogue.
	Create(ctx context.Context, admin auth.AdminSession, req *model.CreateFoodRequest) (*model.FoodItem, error)

	// Update applies a partial update to a food item.
	Update(ctx context.Context, admin auth.AdminSession, id uuid.UUID, req *model.UpdateFoodRequest) (*model.FoodItem, error)

	// Delete removes a food item from the catalogue.
	Delete(ctx context.Context, admin auth.AdminSession, id uuid.UUID) error
}

// AuthService defines registration and login operations.
type AuthService interface {
	// Register creates a new account and issues a bearer token.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

// OrderService defines operations for placing and managing orders.
type OrderService interface {
	// Place validates the requested items against the catalogue and persists
	// a new order with a price snapshot of each line.
	Place(ctx context.Context, session auth.UserSession, req *model.PlaceOrderRequest) (*model.OrderResponse, error)

	// ListForUser retrieves the caller's orders, newest first.
	ListForUser(ctx context.Context, session auth.UserSession) ([]model.OrderResponse, error)

	// Get retrieves a single order. Only the owner or an admin may read it.
	Get(ctx context.Context, session auth.UserSession, id uuid.UUID) (*model.OrderResponse, error)

	// ListAll retrieves every order with user summaries resolved.
	ListAll(ctx context.Context, admin auth.AdminSession) ([]model.OrderResponse, error)

	// UpdateStatus overwrites an order's status.
	UpdateStatus(ctx context.Context, admin auth.AdminSession, id uuid.UUID, status model.OrderStatus) (*model.OrderResponse, error)
}
