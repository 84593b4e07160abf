package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"sjsm-storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

// OrderRepository persists each user's order history under a per-user key.
// Histories are append-only and ordered most-recent-first; there is no update
// or delete.
type OrderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Prepend(ctx context.Context, userID string, order domain.Order) error
}

type orderRepository struct {
	client *redis.Client
}

// NewOrderRepository creates a Redis-backed OrderRepository.
func NewOrderRepository(client *redis.Client) OrderRepository {
	return &orderRepository{client: client}
}

// ListByUser returns the user's orders, newest first. A user with no orders
// gets an empty list, not an error.
func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	data, err := r.client.Get(ctx, ordersKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get orders: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	return orders, nil
}

// Prepend writes the order at the head of the user's history.
func (r *orderRepository) Prepend(ctx context.Context, userID string, order domain.Order) error {
	orders, err := r.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	orders = append([]domain.Order{order}, orders...)
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := r.client.Set(ctx, ordersKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set orders: %w", err)
	}
	return nil
}
