package transport

import (
	"errors"
	"net/http"
	"strconv"

	"sjsm-storefront/internal/catalog"
	"sjsm-storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewRequest is the payload for submitting a product review.
type ReviewRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"required"`
}

// CatalogHandler serves product browsing and review submission.
type CatalogHandler struct {
	catalog catalog.Store
	logger  *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(store catalog.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: store, logger: logger}
}

// RegisterRoutes mounts the catalog routes. All are public.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/categories", h.Categories)
		r.Get("/{id}", h.Get)
		r.Post("/{id}/reviews", h.AddReview)
	})
}

// List returns products, optionally filtered by ?category= and ?q=.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.List(r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// Categories returns the distinct category names.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}

// Get returns a single product by id.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.FindByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Product lookup failed", zap.Int("product_id", id), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// AddReview appends a review to a product.
func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req ReviewRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.catalog.AddReview(id, req.UserName, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, catalog.ErrInvalidRating):
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Review submission failed", zap.Int("product_id", id), zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add review")
		}
		return
	}

	h.logger.Info("Review added", zap.Int("product_id", id), zap.String("review_id", review.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, review)
}
