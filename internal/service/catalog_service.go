package service

import (
	"context"
	"fmt"
	"time"

	"foodexpress/internal/auth"
	"foodexpress/internal/model"
	"foodexpress/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	foodRepo repository.FoodRepository
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(foodRepo repository.FoodRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		foodRepo: foodRepo,
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

// ListAvailable retrieves available food items, optionally filtered.
func (s *catalogService) ListAvailable(ctx context.Context, search, category string) ([]model.FoodItem, error) {
	if category == model.CategoryAll {
		category = ""
	}

	items, err := s.foodRepo.ListAvailable(ctx, search, category)
	if err != nil {
		s.logger.Error().Err(err).
			Str("search", search).
			Str("category", category).
			Msg("failed to list available food items")
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	s.logger.Debug().
		Int("count", len(items)).
		Str("search", search).
		Str("category", category).
		Msg("listed available food items")

	return items, nil
}

// GetByID retrieves a single food item by ID.
func (s *catalogService) GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error) {
	item, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to get food item")
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}

	if item == nil {
		return nil, model.ErrFoodNotFound
	}

	return item, nil
}

// ListAll retrieves every food item, including unavailable ones.
func (s *catalogService) ListAll(ctx context.Context, admin auth.AdminSession) ([]model.FoodItem, error) {
	items, err := s.foodRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list food items")
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	return items, nil
}

// Create adds a new food item to the catalogue.
func (s *catalogService) Create(ctx context.Context, admin auth.AdminSession, req *model.CreateFoodRequest) (*model.FoodItem, error) {
	if req == nil || req.Name == "" || req.Description == "" || req.Price == nil {
		return nil, model.NewDomainError(model.ErrCodeValidationFailed,
			"Please provide name, description, and price")
	}

	if *req.Price < 0 {
		return nil, model.NewDomainError(model.ErrCodeValidationFailed,
			"Price must not be negative")
	}

	now := time.Now()
	item := &model.FoodItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.Image == "" {
		item.Image = model.DefaultFoodImage
	}
	if item.Category == "" {
		item.Category = model.DefaultFoodCategory
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.foodRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("name", item.Name).Msg("failed to create food item")
		return nil, fmt.Errorf("failed to create food item: %w", err)
	}

	s.logger.Info().
		Str("food_id", item.ID.String()).
		Str("name", item.Name).
		Str("admin_id", admin.UserID.String()).
		Msg("food item created")

	return item, nil
}

// Update applies a partial update to a food item.
func (s *catalogService) Update(ctx context.Context, admin auth.AdminSession, id uuid.UUID, req *model.UpdateFoodRequest) (*model.FoodItem, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeValidationFailed,
			"Please provide fields to update")
	}

	item, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to get food item for update")
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}
	if item == nil {
		return nil, model.ErrFoodNotFound
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, model.NewDomainError(model.ErrCodeValidationFailed,
				"Price must not be negative")
		}
		item.Price = *req.Price
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	item.UpdatedAt = time.Now()

	if err := s.foodRepo.Update(ctx, item); err != nil {
		if err == model.ErrFoodNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to update food item")
		return nil, fmt.Errorf("failed to update food item: %w", err)
	}

	s.logger.Info().
		Str("food_id", item.ID.String()).
		Str("admin_id", admin.UserID.String()).
		Msg("food item updated")

	return item, nil
}

// Delete removes a food item from the catalogue.
func (s *catalogService) Delete(ctx context.Context, admin auth.AdminSession, id uuid.UUID) error {
	if err := s.foodRepo.Delete(ctx, id); err != nil {
		if err == model.ErrFoodNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to delete food item")
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	s.logger.Info().
		Str("food_id", id.String()).
		Str("admin_id", admin.UserID.String()).
		Msg("food item deleted")

	return nil
}
