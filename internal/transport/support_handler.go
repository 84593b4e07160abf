package transport

import (
	"net/http"

	"sjsm-storefront/internal/middleware"
	"sjsm-storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SupportMessageRequest is one message sent to the support widget.
type SupportMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// SupportMessageResponse is the bot's canned reply.
type SupportMessageResponse struct {
	Reply string `json:"reply"`
}

// SupportHandler serves the support widget's auto-reply bot.
type SupportHandler struct {
	support *service.SupportService
	logger  *zap.Logger
}

// NewSupportHandler creates a SupportHandler.
func NewSupportHandler(support *service.SupportService, logger *zap.Logger) *SupportHandler {
	return &SupportHandler{support: support, logger: logger}
}

// RegisterRoutes mounts the support route. The widget is available without a
// session.
func (h *SupportHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/support/message", h.Message)
}

// Message returns the bot's reply after the simulated typing delay.
func (h *SupportHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req SupportMessageRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if fieldErrs := middleware.FormatValidationErrors(err); len(fieldErrs) > 0 {
			middleware.RespondWithValidationErrors(w, fieldErrs)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.support.Reply(r.Context(), req.Message)
	if err != nil {
		h.logger.Debug("Support reply cancelled", zap.Error(err))
		middleware.RespondWithError(w, http.StatusServiceUnavailable, "support is unavailable")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, SupportMessageResponse{Reply: reply})
}
