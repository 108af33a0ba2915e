package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is one of the fixed order lifecycle values.
type OrderStatus string

// Order lifecycle values. Any status may overwrite any other; only set
// membership is validated.
const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out for delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// ValidStatus reports whether s is a member of the order lifecycle set.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// DefaultDeliveryAddress is recorded when an order omits the address.
const DefaultDeliveryAddress = "Not specified"

// Order represents a placed order.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          uuid.UUID   `json:"userId" db:"user_id"`
	TotalAmount     float64     `json:"totalAmount" db:"total_amount"`
	DeliveryAddress string      `json:"deliveryAddress" db:"delivery_address"`
	Phone           string      `json:"phone" db:"phone"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line item snapshot. Price is the unit price captured at
// order time; later catalogue price changes never alter it.
type OrderItem struct {
	ID       uuid.UUID `json:"-" db:"id"`
	OrderID  uuid.UUID `json:"-" db:"order_id"`
	FoodID   uuid.UUID `json:"foodId" db:"food_id"`
	LineNo   int       `json:"-" db:"line_no"`
	Quantity int       `json:"quantity" db:"quantity"`
	Price    float64   `json:"price" db:"price"`
}

// PlaceOrderRequest represents the payload for placing an order.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Phone           string             `json:"phone"`
}

// OrderItemRequest is a single requested item.
type OrderItemRequest struct {
	FoodID   uuid.UUID `json:"foodId"`
	Quantity int       `json:"quantity"`
}

// UpdateOrderStatusRequest represents the admin status-update payload.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// OrderLine is a line item with its food item resolved for display.
// Food is nil when the referenced item has since been deleted.
type OrderLine struct {
	FoodID   uuid.UUID `json:"foodId"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Food     *FoodItem `json:"food,omitempty"`
}

// OrderResponse is an order with line items (and, on admin listings, the
// owning user) resolved.
type OrderResponse struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"userId"`
	Items           []OrderLine  `json:"items"`
	TotalAmount     float64      `json:"totalAmount"`
	DeliveryAddress string       `json:"deliveryAddress"`
	Phone           string       `json:"phone"`
	Status          OrderStatus  `json:"status"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	User            *UserSummary `json:"user,omitempty"`
}
