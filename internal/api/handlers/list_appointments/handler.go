package list_appointments

import (
	"errors"
	"net/http"

	"github.com/avergne/CFD-RdvService/internal/api/handlers"
	"github.com/avergne/CFD-RdvService/internal/service/appointments"
)

const msgInvalidFilter = "paramètres de filtrage invalides"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: type (optional, formation|livrables), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	typeStr := r.URL.Query().Get("type")
	statusStr := r.URL.Query().Get("status")

	result, err := h.service.List(r.Context(), ToServiceRequest(typeStr, statusStr))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: type=%q, status=%q", typeStr, statusStr)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments listed: type=%q, status=%q, total=%d",
		typeStr, statusStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
