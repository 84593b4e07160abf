package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sjsm-storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

var ErrNoActiveSession = errors.New("no active session")

// SessionRepository persists the active-session user snapshot. The model is
// single-session: at most one user is logged in at a time.
type SessionRepository interface {
	Save(ctx context.Context, user *domain.User) error
	Get(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

// Save overwrites the active-session snapshot.
func (r *sessionRepository) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	if err := r.client.Set(ctx, activeUserKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set active user: %w", err)
	}
	return nil
}

// Get returns the active-session snapshot, if any.
func (r *sessionRepository) Get(ctx context.Context) (*domain.User, error) {
	data, err := r.client.Get(ctx, activeUserKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("redis get active user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal session user: %w", err)
	}
	return &user, nil
}

// Clear removes the active-session snapshot. Clearing an absent session is
// not an error.
func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, activeUserKey).Err(); err != nil {
		return fmt.Errorf("redis del active user: %w", err)
	}
	return nil
}
