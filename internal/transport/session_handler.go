package transport

import (
	"errors"
	"net/http"

	"sjsm-storefront/internal/domain"
	"sjsm-storefront/internal/middleware"
	"sjsm-storefront/internal/repository"
	"sjsm-storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
}

// LoginRequest is the login payload. Password is required; there is no
// passwordless match.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries the optional profile fields. Absent fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	Street   *string `json:"street,omitempty"`
	City     *string `json:"city,omitempty"`
}

// UserProfile is the user shape returned to clients. The stored password is
// never echoed back.
type UserProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Street        string `json:"street,omitempty"`
	City          string `json:"city,omitempty"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// SessionResponse is returned by register and login.
type SessionResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

func toProfile(u *domain.User) UserProfile {
	return UserProfile{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Street:        u.Street,
		City:          u.City,
		LoyaltyPoints: u.LoyaltyPoints,
	}
}

// SessionHandler serves registration, login, logout and profile management.
type SessionHandler struct {
	sessions service.SessionService
	logger   *zap.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// RegisterRoutes mounts the user routes. Register and login are public and
// rate limited; the rest require a session.
func (h *SessionHandler) RegisterRoutes(r chi.Router, sessionMiddleware, rateLimiter func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if rateLimiter != nil {
				r.Use(rateLimiter)
			}
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(sessionMiddleware)
			r.Post("/logout", h.Logout)
			r.Get("/profile", h.GetProfile)
			r.Put("/profile", h.UpdateProfile)
		})
	})
}

// Register creates an account and establishes the session.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.sessions.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Street:   req.Street,
		City:     req.City,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			middleware.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("Registration failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, SessionResponse{Token: token, User: toProfile(user)})
}

// Login authenticates and establishes the session.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.logger.Info("User logged in", zap.String("user_id", user.ID))
	middleware.RespondWithJSON(w, http.StatusOK, SessionResponse{Token: token, User: toProfile(user)})
}

// Logout tears down the session.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	if err := h.sessions.Logout(r.Context(), userID); err != nil {
		h.logger.Error("Logout failed", zap.String("user_id", userID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to log out")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// GetProfile returns the fresh user record for the session.
func (h *SessionHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	user, err := h.sessions.ActiveUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("Profile lookup failed", zap.String("user_id", userID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, toProfile(user))
}

// UpdateProfile merges the provided fields into the user.
func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.sessions.UpdateProfile(r.Context(), userID, domain.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Street:   req.Street,
		City:     req.City,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("Profile update failed", zap.String("user_id", userID), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toProfile(user))
}
