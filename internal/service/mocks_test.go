package service

import (
	"context"
	"sync"

	"sjsm-storefront/internal/domain"
	"sjsm-storefront/internal/repository"
)

type mockUserRepository struct {
	mu        sync.Mutex
	users     []domain.User
	createErr error
	updateErr error
}

func (m *mockUserRepository) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrUserAlreadyExists
		}
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) Update(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users[i] = *user
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (m *mockUserRepository) stored(id string) (domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

type mockSessionRepository struct {
	mu      sync.Mutex
	active  *domain.User
	saveErr error
}

func (m *mockSessionRepository) Save(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *user
	m.active = &copied
	return nil
}

func (m *mockSessionRepository) Get(_ context.Context) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return nil, repository.ErrNoActiveSession
	}
	copied := *m.active
	return &copied, nil
}

func (m *mockSessionRepository) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = nil
	return nil
}

type mockOrderRepository struct {
	mu         sync.Mutex
	orders     map[string][]domain.Order
	prependErr error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string][]domain.Order)}
}

func (m *mockOrderRepository) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Order(nil), m.orders[userID]...), nil
}

func (m *mockOrderRepository) Prepend(_ context.Context, userID string, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prependErr != nil {
		return m.prependErr
	}
	m.orders[userID] = append([]domain.Order{order}, m.orders[userID]...)
	return nil
}
