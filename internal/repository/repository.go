package repository

import (
	"context"

	"foodexpress/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FoodRepository defines the interface for catalogue data access operations.
type FoodRepository interface {
	// ListAvailable retrieves available food items, newest first, optionally
	// filtered by a case-insensitive substring on name/description and an
	// exact category.
	ListAvailable(ctx context.Context, search, category string) ([]model.FoodItem, error)

	// ListAll retrieves every food item including unavailable ones, newest first.
	ListAll(ctx context.Context) ([]model.FoodItem, error)

	// GetByID retrieves a single food item by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error)

	// GetByIDs retrieves multiple food items by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.FoodItem, error)

	// Create inserts a new food item.
	Create(ctx context.Context, item *model.FoodItem) error

	// Update overwrites an existing food item. Returns model.ErrFoodNotFound
	// when no row matches.
	Update(ctx context.Context, item *model.FoodItem) error

	// Delete removes a food item. Returns model.ErrFoodNotFound when no row
	// matches.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the interface for account data access operations.
type UserRepository interface {
	// Create inserts a new user. Returns model.ErrDuplicateEmail when the
	// email is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail retrieves a user by email. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID retrieves a user by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByIDs retrieves multiple users by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
}

// OrderRepository defines the interface for order ledger access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's line items within the provided
	// transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. The order is
	// nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByUser retrieves a user's orders, newest first, with line items
	// grouped by order ID.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, map[uuid.UUID][]model.OrderItem, error)

	// ListAll retrieves every order, newest first, with line items grouped by
	// order ID.
	ListAll(ctx context.Context) ([]model.Order, map[uuid.UUID][]model.OrderItem, error)

	// UpdateStatus overwrites an order's status and returns the updated
	// order. The order is nil when absent.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}
