package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sjsm-storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// UserRepository defines access to the master user table.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type userRepository struct {
	client *redis.Client
}

// NewUserRepository creates a Redis-backed UserRepository.
func NewUserRepository(client *redis.Client) UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) loadAll(ctx context.Context) ([]domain.User, error) {
	data, err := r.client.Get(ctx, usersKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get users: %w", err)
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	return users, nil
}

func (r *userRepository) saveAll(ctx context.Context, users []domain.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := r.client.Set(ctx, usersKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set users: %w", err)
	}
	return nil
}

// Create appends a new user to the table. Email uniqueness is enforced here;
// a rejected registration leaves the existing record unmodified.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	users, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return ErrUserAlreadyExists
		}
	}
	return r.saveAll(ctx, append(users, *user))
}

// FindByEmail returns the first user with the given email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByID returns the user with the given id.
func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Update replaces the stored record matching the user's id.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	users, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return r.saveAll(ctx, users)
		}
	}
	return ErrUserNotFound
}
