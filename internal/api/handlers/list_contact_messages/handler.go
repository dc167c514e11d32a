package list_contact_messages

import (
	"net/http"

	"github.com/avergne/CFD-RdvService/internal/api/handlers"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/contact-messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /contact-messages - Failed to list messages: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /contact-messages - Messages listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
