package model

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a food item is created without the optional fields.
const (
	DefaultFoodImage    = "https://via.placeholder.com/300x200?text=Food+Item"
	DefaultFoodCategory = "General"
)

// CategoryAll is the sentinel category value that disables category filtering.
const CategoryAll = "all"

// FoodItem represents a dish in the catalogue.
type FoodItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Image       string    `json:"image" db:"image"`
	Category    string    `json:"category" db:"category"`
	Available   bool      `json:"available" db:"available"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateFoodRequest represents the admin payload for creating a food item.
type CreateFoodRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Available   *bool    `json:"available"`
}

// UpdateFoodRequest represents the admin payload for updating a food item.
// Nil fields are left unchanged.
type UpdateFoodRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
}
