package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"sjsm-storefront/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// Store defines read access to the product catalog plus review submission.
type Store interface {
	List(category, query string) []domain.Product
	FindByID(id int) (*domain.Product, error)
	Categories() []string
	AddReview(productID int, userName string, rating int, comment string) (*domain.Review, error)
}

type memStore struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[int]int // product id -> index into products
}

// NewStore creates a catalog populated with the given products. The product
// set is fixed for the life of the process; only reviews are appended.
func NewStore(products []domain.Product) Store {
	s := &memStore{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	copy(s.products, products)
	for i, p := range s.products {
		s.byID[p.ID] = i
	}
	return s
}

// NewSeededStore creates a catalog with the standard stationery product set.
func NewSeededStore() Store {
	return NewStore(seedProducts())
}

// List returns products, optionally filtered by exact category and by a
// case-insensitive substring match on name or description.
func (s *memStore) List(category, query string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	var out []domain.Product
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return out
}

// FindByID returns a copy of the product with the given id.
func (s *memStore) FindByID(id int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := cloneProduct(s.products[i])
	return &p, nil
}

// Categories returns the distinct category names in sorted order.
func (s *memStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// AddReview appends a review to the product. The product's base rating and
// review counters from the seed data are never rewritten.
func (s *memStore) AddReview(productID int, userName string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[productID]
	if !ok {
		return nil, ErrProductNotFound
	}

	review := domain.Review{
		ID:       uuid.New().String(),
		UserName: userName,
		Rating:   rating,
		Comment:  comment,
		Date:     time.Now().UTC(),
	}
	s.products[i].UserReviews = append(s.products[i].UserReviews, review)
	return &review, nil
}

func cloneProduct(p domain.Product) domain.Product {
	if p.UserReviews != nil {
		reviews := make([]domain.Review, len(p.UserReviews))
		copy(reviews, p.UserReviews)
		p.UserReviews = reviews
	}
	return p
}
