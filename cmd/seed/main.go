// Command seed wipes and repopulates the database with an admin account, a
// test account, and a sample menu.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"foodexpress/internal/auth"
	"foodexpress/internal/config"
	"foodexpress/internal/database"
	"foodexpress/internal/model"
	"foodexpress/internal/repository"

	"github.com/google/uuid"
)

type seedFood struct {
	name        string
	description string
	price       float64
	image       string
	category    string
}

var foods = []seedFood{
	{"Margherita Pizza", "Classic pizza with tomato sauce, mozzarella cheese, and fresh basil", 12.99, "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400", "Pizza"},
	{"Pepperoni Pizza", "Delicious pizza topped with pepperoni and mozzarella cheese", 14.99, "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=400", "Pizza"},
	{"Chicken Burger", "Juicy grilled chicken burger with lettuce, tomato, and special sauce", 9.99, "https://images.unsplash.com/photo-1606755962773-d324e166a853?w=400", "Burger"},
	{"Beef Burger", "Classic beef burger with cheese, pickles, and onions", 10.99, "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400", "Burger"},
	{"Caesar Salad", "Fresh romaine lettuce with Caesar dressing, croutons, and parmesan", 8.99, "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=400", "Salad"},
	{"Chicken Wings", "Crispy fried chicken wings with your choice of sauce", 11.99, "https://images.unsplash.com/photo-1527477396000-e27163b481c2?w=400", "Appetizer"},
	{"French Fries", "Golden crispy french fries served with ketchup", 4.99, "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400", "Side"},
	{"Chocolate Cake", "Rich and moist chocolate cake with chocolate frosting", 6.99, "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400", "Dessert"},
	{"Pasta Carbonara", "Creamy pasta with bacon, eggs, and parmesan cheese", 13.99, "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400", "Pasta"},
	{"Sushi Platter", "Assorted fresh sushi rolls with soy sauce and wasabi", 18.99, "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400", "Sushi"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Clear existing data
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, users, food_items`); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}

	userRepo := repository.NewUserRepository(pool, logger)
	foodRepo := repository.NewFoodRepository(pool, logger)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	accounts := []struct {
		name     string
		email    string
		password string
		admin    bool
	}{
		{"Admin User", "admin@fooddelivery.com", "admin123", true},
		{"Test User", "user@fooddelivery.com", "user123", false},
	}

	now := time.Now()
	for _, a := range accounts {
		hash, err := hasher.Hash(a.password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &model.User{
			ID:           uuid.New(),
			Name:         a.name,
			Email:        a.email,
			PasswordHash: hash,
			IsAdmin:      a.admin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", a.email, err)
		}

		logger.Info().Str("email", a.email).Bool("admin", a.admin).Msg("user created")
	}

	for i, f := range foods {
		item := &model.FoodItem{
			ID:          uuid.New(),
			Name:        f.name,
			Description: f.description,
			Price:       f.price,
			Image:       f.image,
			Category:    f.category,
			Available:   true,
			// Stagger timestamps so newest-first ordering is stable.
			CreatedAt: now.Add(time.Duration(i) * time.Second),
			UpdatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := foodRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create food item %s: %w", f.name, err)
		}
	}

	logger.Info().Int("count", len(foods)).Msg("food items created")
	logger.Info().Msg("database seeded successfully")

	return nil
}
