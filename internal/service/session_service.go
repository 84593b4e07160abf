package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sjsm-storefront/internal/domain"
	"sjsm-storefront/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid session token")
)

// SessionService manages registration, login, logout and profile updates for
// the single active shopper session.
type SessionService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, userID string) error
	ActiveUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Street   string
	City     string
}

type sessionService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	carts    *CartService
	secret   string
	tokenTTL time.Duration
}

// NewSessionService creates a SessionService. Tokens are HS256-signed with
// the given secret and expire after tokenTTL.
func NewSessionService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	carts *CartService,
	secret string,
	tokenTTL time.Duration,
) SessionService {
	return &sessionService{
		users:    users,
		sessions: sessions,
		carts:    carts,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new user with a fresh id and a zero loyalty balance,
// persists it, and establishes it as the active session. A duplicate email is
// rejected and leaves the existing record unmodified.
func (s *sessionService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	user := &domain.User{
		ID:            "u-" + uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		Password:      in.Password,
		Phone:         in.Phone,
		Street:        in.Street,
		City:          in.City,
		LoyaltyPoints: 0,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	if err := s.sessions.Save(ctx, user); err != nil {
		return nil, "", fmt.Errorf("establish session: %w", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login matches email and password against the master table. The password is
// required: an omitted password never matches, unlike the permissive lookup
// some historical records were written with. On success the fresh record from
// the master table becomes the active session.
func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}
	if user.Password != password {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return nil, "", fmt.Errorf("establish session: %w", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout clears the active-session snapshot and drops the user's in-memory
// cart. The persisted order history is untouched.
func (s *sessionService) Logout(ctx context.Context, userID string) error {
	if s.carts != nil {
		s.carts.Drop(userID)
	}
	return s.sessions.Clear(ctx)
}

// ActiveUser returns the current record for the session's user, read fresh
// from the master table so loyalty balance changes are always visible.
func (s *sessionService) ActiveUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile merges the set fields into the user and writes the result to
// both the master table and the active-session snapshot.
func (s *sessionService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.Apply(user)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if err := s.sessions.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update session snapshot: %w", err)
	}
	return user, nil
}

func (s *sessionService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}
