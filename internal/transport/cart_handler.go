package transport

import (
	"errors"
	"net/http"
	"strconv"

	"sjsm-storefront/internal/catalog"
	"sjsm-storefront/internal/domain"
	"sjsm-storefront/internal/middleware"
	"sjsm-storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest adds one unit of a product to the cart.
type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// SetQuantityRequest overwrites a line's quantity. Zero removes the line, so
// the field itself has no minimum.
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CouponRequest applies a coupon code to the cart.
type CouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// CartHandler serves the per-session shopping cart.
type CartHandler struct {
	carts   *service.CartService
	catalog catalog.Store
	logger  *zap.Logger
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(carts *service.CartService, store catalog.Store, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, catalog: store, logger: logger}
}

// RegisterRoutes mounts the cart routes behind the session middleware.
func (h *CartHandler) RegisterRoutes(r chi.Router, sessionMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Put("/items/{productID}", h.SetQuantity)
		r.Delete("/items/{productID}", h.RemoveItem)
		r.Post("/coupon", h.ApplyCoupon)
		r.Delete("/coupon", h.RemoveCoupon)
	})
}

func sessionUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "login required")
	}
	return userID, ok
}

// Get returns the cart snapshot with derived totals.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, h.carts.View(userID))
}

// AddItem adds one unit of the product to the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.FindByID(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Product lookup failed", zap.Int("product_id", req.ProductID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.carts.AddItem(userID, *product))
}

// SetQuantity overwrites the quantity of a cart line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req SetQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.carts.SetQuantity(userID, productID, req.Quantity))
}

// RemoveItem deletes a cart line regardless of quantity.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.carts.RemoveItem(userID, productID))
}

// Clear empties the cart and any applied coupon.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, h.carts.Clear(userID))
}

// ApplyCoupon applies a coupon code against the current cart.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var req CouponRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.carts.ApplyCoupon(userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCouponInvalid), errors.Is(err, domain.ErrCouponMinOrder):
			middleware.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("Coupon application failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to apply coupon")
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, view)
}

// RemoveCoupon clears the applied coupon. Idempotent.
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, h.carts.RemoveCoupon(userID))
}
