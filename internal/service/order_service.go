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

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	foodRepo  repository.FoodRepository
	userRepo  repository.UserRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	foodRepo repository.FoodRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		foodRepo:  foodRepo,
		userRepo:  userRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Place validates the requested items against the catalogue and persists a
// new order. Every item is checked before anything is written, and each line
// snapshots the unit price in effect at order time.
func (s *orderService) Place(ctx context.Context, session auth.UserSession, req *model.PlaceOrderRequest) (*model.OrderResponse, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	foodIDs := make([]uuid.UUID, 0, len(req.Items))
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("food_id", item.FoodID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return nil, model.ErrInvalidQuantity
		}
		foodIDs = append(foodIDs, item.FoodID)
	}

	foods, err := s.foodRepo.GetByIDs(ctx, foodIDs)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch food items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	foodByID := make(map[uuid.UUID]model.FoodItem, len(foods))
	for _, f := range foods {
		foodByID[f.ID] = f
	}

	for _, item := range req.Items {
		food, ok := foodByID[item.FoodID]
		if !ok || !food.Available {
			s.logger.Warn().
				Str("food_id", item.FoodID.String()).
				Msg("requested food item not available")
			return nil, model.ErrItemUnavailable
		}
	}

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New(),
		UserID:          session.UserID,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.DeliveryAddress == "" {
		order.DeliveryAddress = model.DefaultDeliveryAddress
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		food := foodByID[item.FoodID]
		orderItems[i] = model.OrderItem{
			ID:       uuid.New(),
			OrderID:  order.ID,
			FoodID:   item.FoodID,
			LineNo:   i,
			Quantity: item.Quantity,
			Price:    food.Price,
		}
		order.TotalAmount += food.Price * float64(item.Quantity)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", session.UserID.String()).
		Int("item_count", len(orderItems)).
		Float64("total_amount", order.TotalAmount).
		Msg("order placed")

	return buildOrderResponse(order, orderItems, foodByID, nil), nil
}

// ListForUser retrieves the caller's orders, newest first.
func (s *orderService) ListForUser(ctx context.Context, session auth.UserSession) ([]model.OrderResponse, error) {
	orders, itemsByOrder, err := s.orderRepo.ListByUser(ctx, session.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", session.UserID.String()).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	foodByID, err := s.resolveFoods(ctx, itemsByOrder)
	if err != nil {
		return nil, err
	}

	responses := make([]model.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *buildOrderResponse(&orders[i], itemsByOrder[orders[i].ID], foodByID, nil)
	}

	return responses, nil
}

// Get retrieves a single order. Only the owner or an admin may read it.
func (s *orderService) Get(ctx context.Context, session auth.UserSession, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if order.UserID != session.UserID && !session.Admin {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("user_id", session.UserID.String()).
			Msg("denied access to another user's order")
		return nil, model.ErrForbidden
	}

	foodByID, err := s.resolveFoods(ctx, map[uuid.UUID][]model.OrderItem{id: items})
	if err != nil {
		return nil, err
	}

	return buildOrderResponse(order, items, foodByID, nil), nil
}

// ListAll retrieves every order with user summaries resolved.
func (s *orderService) ListAll(ctx context.Context, admin auth.AdminSession) ([]model.OrderResponse, error) {
	orders, itemsByOrder, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	foodByID, err := s.resolveFoods(ctx, itemsByOrder)
	if err != nil {
		return nil, err
	}

	userByID, err := s.resolveUsers(ctx, orders)
	if err != nil {
		return nil, err
	}

	responses := make([]model.OrderResponse, len(orders))
	for i := range orders {
		var summary *model.UserSummary
		if u, ok := userByID[orders[i].UserID]; ok {
			sum := u.Summary()
			summary = &sum
		}
		responses[i] = *buildOrderResponse(&orders[i], itemsByOrder[orders[i].ID], foodByID, summary)
	}

	return responses, nil
}

// UpdateStatus overwrites an order's status. Only set membership is checked;
// transitions are unrestricted.
func (s *orderService) UpdateStatus(ctx context.Context, admin auth.AdminSession, id uuid.UUID, status model.OrderStatus) (*model.OrderResponse, error) {
	if !model.ValidStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	_, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to fetch order items")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	foodByID, err := s.resolveFoods(ctx, map[uuid.UUID][]model.OrderItem{id: items})
	if err != nil {
		return nil, err
	}

	var summary *model.UserSummary
	user, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", order.UserID.String()).Msg("failed to fetch order owner")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if user != nil {
		u := user.Summary()
		summary = &u
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Str("admin_id", admin.UserID.String()).
		Msg("order status updated")

	return buildOrderResponse(order, items, foodByID, summary), nil
}

// resolveFoods batch-fetches the distinct food items referenced by the given
// line items, so listings avoid a per-order fetch.
func (s *orderService) resolveFoods(ctx context.Context, itemsByOrder map[uuid.UUID][]model.OrderItem) (map[uuid.UUID]model.FoodItem, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, items := range itemsByOrder {
		for _, item := range items {
			if !seen[item.FoodID] {
				seen[item.FoodID] = true
				ids = append(ids, item.FoodID)
			}
		}
	}

	foods, err := s.foodRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to resolve food items")
		return nil, fmt.Errorf("failed to resolve food items: %w", err)
	}

	foodByID := make(map[uuid.UUID]model.FoodItem, len(foods))
	for _, f := range foods {
		foodByID[f.ID] = f
	}
	return foodByID, nil
}

// resolveUsers batch-fetches the distinct owners of the given orders.
func (s *orderService) resolveUsers(ctx context.Context, orders []model.Order) (map[uuid.UUID]model.User, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, o := range orders {
		if !seen[o.UserID] {
			seen[o.UserID] = true
			ids = append(ids, o.UserID)
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to resolve users")
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}

	userByID := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	return userByID, nil
}

// buildOrderResponse merges an order, its line items and the resolved food
// details into the response shape.
func buildOrderResponse(order *model.Order, items []model.OrderItem, foodByID map[uuid.UUID]model.FoodItem, user *model.UserSummary) *model.OrderResponse {
	lines := make([]model.OrderLine, len(items))
	for i, item := range items {
		lines[i] = model.OrderLine{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if f, ok := foodByID[item.FoodID]; ok {
			food := f
			lines[i].Food = &food
		}
	}

	return &model.OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           lines,
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		Phone:           order.Phone,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		User:            user,
	}
}
