package transport

import (
	"errors"
	"net/http"

	"sjsm-storefront/internal/domain"
	"sjsm-storefront/internal/middleware"
	"sjsm-storefront/internal/pricing"
	"sjsm-storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddressRequest is the delivery address step of checkout.
type AddressRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Zip      string `json:"zip" validate:"required,len=6,numeric"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
}

// PayRequest is the payment step of checkout.
type PayRequest struct {
	Method       string              `json:"method" validate:"required,oneof=UPI CARD"`
	UPIID        string              `json:"upi_id,omitempty"`
	Card         pricing.CardDetails `json:"card,omitempty"`
	RedeemPoints bool                `json:"redeem_points"`
}

// CheckoutHandler drives the address, quote, and payment steps.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *zap.Logger
}

// NewCheckoutHandler creates a CheckoutHandler.
func NewCheckoutHandler(checkout *service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: logger}
}

// RegisterRoutes mounts the checkout routes behind the session middleware.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router, sessionMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/checkout", func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/address", h.GetAddress)
		r.Post("/address", h.SubmitAddress)
		r.Get("/quote", h.Quote)
		r.Post("/payment", h.Pay)
	})
}

// SubmitAddress validates and stores the delivery address.
func (h *CheckoutHandler) SubmitAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var req AddressRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	addr := domain.Address{
		FullName: req.FullName,
		Street:   req.Street,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Phone:    req.Phone,
	}
	if err := h.checkout.SubmitAddress(userID, addr); err != nil {
		middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, addr)
}

// GetAddress returns the stored address so the payment step can go back
// without losing entered data.
func (h *CheckoutHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	addr, found := h.checkout.Address(userID)
	if !found {
		middleware.RespondWithError(w, http.StatusNotFound, "no address on file")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, addr)
}

// Quote returns the current money breakdown. ?redeem_points=true includes
// loyalty redemption in the computation.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	redeem := r.URL.Query().Get("redeem_points") == "true"
	quote, err := h.checkout.Quote(r.Context(), userID, redeem)
	if err != nil {
		h.logger.Error("Quote failed", zap.String("user_id", userID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute quote")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

// Pay runs the simulated payment and finalizes the order.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var req PayRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.checkout.Pay(r.Context(), userID, service.PaymentRequest{
		Payment: pricing.Payment{
			Method: domain.PaymentMethod(req.Method),
			UPIID:  req.UPIID,
			Card:   req.Card,
		},
		RedeemPoints: req.RedeemPoints,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressRequired):
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrCartEmpty):
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrCheckoutInFlight):
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, pricing.ErrUPIMissingAt),
			errors.Is(err, pricing.ErrUPIPrefixNotPhone),
			errors.Is(err, pricing.ErrCardNumber),
			errors.Is(err, pricing.ErrCardExpiry),
			errors.Is(err, pricing.ErrCardCVV),
			errors.Is(err, pricing.ErrCardHolderName),
			errors.Is(err, pricing.ErrPaymentMethod):
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("Payment failed", zap.String("user_id", userID), zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "payment processing failed")
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, order)
}
