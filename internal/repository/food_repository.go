package repository

import (
	"context"
	"fmt"

	"foodexpress/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const foodColumns = "id, name, description, price, image, category, available, created_at, updated_at"

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed food repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Logger(),
	}
}

// ListAvailable retrieves available food items, newest first.
func (r *foodRepository) ListAvailable(ctx context.Context, search, category string) ([]model.FoodItem, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM food_items
		WHERE available = TRUE
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR $2 = 'all' OR category = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, search, category)
	if err != nil {
		r.logger.Error().Err(err).
			Str("search", search).
			Str("category", category).
			Msg("failed to query available food items")
		return nil, fmt.Errorf("failed to query food items: %w", err)
	}
	defer rows.Close()

	return scanFoodRows(rows, r.logger)
}

// ListAll retrieves every food item including unavailable ones, newest first.
func (r *foodRepository) ListAll(ctx context.Context) ([]model.FoodItem, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM food_items
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query food items")
		return nil, fmt.Errorf("failed to query food items: %w", err)
	}
	defer rows.Close()

	return scanFoodRows(rows, r.logger)
}

// GetByID retrieves a single food item by its ID.
func (r *foodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FoodItem, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM food_items
		WHERE id = $1
	`

	var f model.FoodItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Description, &f.Price, &f.Image,
		&f.Category, &f.Available, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("food_id", id.String()).Msg("food item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to query food item")
		return nil, fmt.Errorf("failed to query food item: %w", err)
	}

	return &f, nil
}

// GetByIDs retrieves multiple food items by their IDs.
func (r *foodRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.FoodItem, error) {
	if len(ids) == 0 {
		return []model.FoodItem{}, nil
	}

	query := `
		SELECT ` + foodColumns + `
		FROM food_items
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query food items by IDs")
		return nil, fmt.Errorf("failed to query food items by IDs: %w", err)
	}
	defer rows.Close()

	return scanFoodRows(rows, r.logger)
}

// Create inserts a new food item.
func (r *foodRepository) Create(ctx context.Context, item *model.FoodItem) error {
	query := `
		INSERT INTO food_items (id, name, description, price, image, category, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Image,
		item.Category, item.Available, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", item.ID.String()).Msg("failed to create food item")
		return fmt.Errorf("failed to create food item: %w", err)
	}

	r.logger.Debug().Str("food_id", item.ID.String()).Msg("food item created")
	return nil
}

// Update overwrites an existing food item.
func (r *foodRepository) Update(ctx context.Context, item *model.FoodItem) error {
	query := `
		UPDATE food_items
		SET name = $2, description = $3, price = $4, image = $5,
		    category = $6, available = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Image,
		item.Category, item.Available, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", item.ID.String()).Msg("failed to update food item")
		return fmt.Errorf("failed to update food item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrFoodNotFound
	}

	return nil
}

// Delete removes a food item.
func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("food_id", id.String()).Msg("failed to delete food item")
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrFoodNotFound
	}

	r.logger.Debug().Str("food_id", id.String()).Msg("food item deleted")
	return nil
}

// scanFoodRows collects food item rows.
func scanFoodRows(rows pgx.Rows, logger zerolog.Logger) ([]model.FoodItem, error) {
	var items []model.FoodItem
	for rows.Next() {
		var f model.FoodItem
		err := rows.Scan(
			&f.ID, &f.Name, &f.Description, &f.Price, &f.Image,
			&f.Category, &f.Available, &f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan food item row")
			return nil, fmt.Errorf("failed to scan food item: %w", err)
		}
		items = append(items, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating food item rows")
		return nil, fmt.Errorf("error iterating food items: %w", err)
	}

	return items, nil
}
