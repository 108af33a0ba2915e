package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodexpress/internal/auth"
	"foodexpress/internal/database"
	"foodexpress/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedFoods inserts test catalogue data and returns the rows in insertion
// order. The last item is unavailable.
func SeedFoods(t *testing.T, pool *pgxpool.Pool) []model.FoodItem {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC()

	foods := []model.FoodItem{
		{ID: uuid.New(), Name: "Margherita Pizza", Description: "Classic tomato and mozzarella", Price: 12.99, Category: "Pizza", Available: true},
		{ID: uuid.New(), Name: "Pepperoni Pizza", Description: "Loaded with pepperoni", Price: 14.99, Category: "Pizza", Available: true},
		{ID: uuid.New(), Name: "Caesar Salad", Description: "Crisp romaine with parmesan", Price: 8.99, Category: "Salads", Available: true},
		{ID: uuid.New(), Name: "Chocolate Cake", Description: "Rich chocolate layer cake", Price: 6.49, Category: "Desserts", Available: true},
		{ID: uuid.New(), Name: "Seasonal Soup", Description: "Currently off the menu", Price: 5.99, Category: "Soups", Available: false},
	}

	for i := range foods {
		foods[i].Image = model.DefaultFoodImage
		// Stagger timestamps so newest-first ordering is deterministic.
		foods[i].CreatedAt = now.Add(time.Duration(i) * time.Second)
		foods[i].UpdatedAt = foods[i].CreatedAt

		_, err := pool.Exec(ctx,
			`INSERT INTO food_items (id, name, description, price, image, category, available, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			foods[i].ID, foods[i].Name, foods[i].Description, foods[i].Price,
			foods[i].Image, foods[i].Category, foods[i].Available,
			foods[i].CreatedAt, foods[i].UpdatedAt,
		)
		if err != nil {
			t.Fatalf("failed to seed food %s: %v", foods[i].Name, err)
		}
	}

	return foods
}

// SeedUser inserts a user with the given password and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool, name, email, password string, admin bool) *model.User {
	t.Helper()

	ctx := context.Background()

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      admin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.IsAdmin,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}

	return user
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "users", "food_items"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
