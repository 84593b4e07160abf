package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"sjsm-storefront/internal/domain"
	"sjsm-storefront/internal/pricing"
	"sjsm-storefront/internal/repository"
	"sjsm-storefront/internal/sheets"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const deliveryLeadTime = 3 * 24 * time.Hour

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrAddressRequired   = errors.New("a validated delivery address is required before payment")
	ErrCheckoutInFlight  = errors.New("a payment is already being processed for this session")
	ErrCheckoutConfirmed = errors.New("checkout already confirmed")
)

// PaymentRequest is one payment attempt: the instrument plus whether to
// redeem the loyalty balance against the total.
type PaymentRequest struct {
	Payment      pricing.Payment
	RedeemPoints bool
}

// CheckoutService drives the Address -> Payment -> Confirmed flow. The flow
// is forward-only except that resubmitting the address from the payment step
// is allowed and preserves previously entered data.
type CheckoutService struct {
	carts    *CartService
	users    repository.UserRepository
	sessions repository.SessionRepository
	orders   repository.OrderRepository
	sheets   *sheets.Client
	logger   *zap.Logger

	// processingDelay models the payment gateway round trip.
	processingDelay time.Duration

	mu        sync.Mutex
	addresses map[string]domain.Address
	inFlight  map[string]struct{}
}

// NewCheckoutService wires the checkout flow.
func NewCheckoutService(
	carts *CartService,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	orders repository.OrderRepository,
	sheetsClient *sheets.Client,
	processingDelay time.Duration,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:           carts,
		users:           users,
		sessions:        sessions,
		orders:          orders,
		sheets:          sheetsClient,
		logger:          logger,
		processingDelay: processingDelay,
		addresses:       make(map[string]domain.Address),
		inFlight:        make(map[string]struct{}),
	}
}

// SubmitAddress validates and stores the delivery address, advancing the
// session to the payment step.
func (s *CheckoutService) SubmitAddress(userID string, addr domain.Address) error {
	if err := pricing.ValidateAddress(addr); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[userID] = addr
	return nil
}

// Address returns the stored address for the session, supporting the "back"
// transition from payment without losing entered data.
func (s *CheckoutService) Address(userID string) (domain.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	addr, ok := s.addresses[userID]
	return addr, ok
}

// Quote derives the current money breakdown for the user's cart without any
// state change. It is recomputed on every call; the inputs are cheap.
func (s *CheckoutService) Quote(ctx context.Context, userID string, redeemPoints bool) (pricing.Quote, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return pricing.Quote{}, err
	}

	cart := s.carts.Snapshot(userID)
	return pricing.Compute(
		cart.Subtotal(),
		cart.ShippingCharge(),
		cart.Discount(),
		user.LoyaltyPoints,
		redeemPoints,
	), nil
}

// Pay validates the payment instrument, simulates gateway processing, and on
// success mints the order, settles the loyalty balance, persists both, clears
// the cart and address, and kicks off the best-effort sheet sync.
//
// A second attempt while one is processing is rejected rather than queued.
func (s *CheckoutService) Pay(ctx context.Context, userID string, req PaymentRequest) (*domain.Order, error) {
	s.mu.Lock()
	addr, hasAddr := s.addresses[userID]
	if !hasAddr {
		s.mu.Unlock()
		return nil, ErrAddressRequired
	}
	if _, busy := s.inFlight[userID]; busy {
		s.mu.Unlock()
		return nil, ErrCheckoutInFlight
	}
	s.inFlight[userID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, userID)
		s.mu.Unlock()
	}()

	cart := s.carts.Snapshot(userID)
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	if err := req.Payment.Validate(); err != nil {
		return nil, err
	}

	// Simulated gateway latency. There is no cancellation of an in-progress
	// payment beyond the request context itself.
	if s.processingDelay > 0 {
		select {
		case <-time.After(s.processingDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	quote := pricing.Compute(
		cart.Subtotal(),
		cart.ShippingCharge(),
		cart.Discount(),
		user.LoyaltyPoints,
		req.RedeemPoints,
	)

	now := time.Now().UTC()
	order := domain.Order{
		ID:             "ORD-" + uuid.New().String(),
		Items:          cart.Items,
		Subtotal:       quote.Subtotal,
		DeliveryCharge: quote.ShippingCharge,
		Discount:       quote.CouponDiscount + quote.PointsRedeemed,
		Total:          quote.Total,
		Date:           now,
		DeliveryDate:   now.Add(deliveryLeadTime),
		Status:         domain.OrderStatusProcessing,
		Address:        addr.Flatten(),
		PaymentMode:    req.Payment.Method,
		PointsEarned:   quote.PointsEarned,
	}

	// Balance first, order second: if the order append fails the balance is
	// rolled back, so the user never sees an order without its points effect
	// or a points change without its order.
	previousBalance := user.LoyaltyPoints
	user.LoyaltyPoints = quote.NewBalance(previousBalance)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("settle loyalty balance: %w", err)
	}
	if err := s.orders.Prepend(ctx, userID, order); err != nil {
		user.LoyaltyPoints = previousBalance
		if rbErr := s.users.Update(ctx, user); rbErr != nil {
			s.logger.Error("Failed to roll back loyalty balance",
				zap.String("user_id", userID),
				zap.Error(rbErr),
			)
		}
		return nil, fmt.Errorf("append order: %w", err)
	}
	if err := s.sessions.Save(ctx, user); err != nil {
		s.logger.Warn("Failed to refresh session snapshot after checkout",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	s.carts.Drop(userID)
	s.mu.Lock()
	delete(s.addresses, userID)
	s.mu.Unlock()

	if s.sheets != nil {
		s.sheets.SyncAsync(sheets.Summarize(order, user.Email, addr))
	}

	s.logger.Info("Order confirmed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("total", order.Total),
		zap.Int("points_earned", order.PointsEarned),
	)
	return &order, nil
}
