package submit_contact

import (
	"errors"
	"net/http"

	"github.com/avergne/CFD-RdvService/internal/api/handlers"
	"github.com/avergne/CFD-RdvService/internal/service/contact"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidInput       = "nom, email et message sont obligatoires"
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

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /contact - Failed to submit message: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message submitted: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
