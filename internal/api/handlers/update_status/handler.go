package update_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avergne/CFD-RdvService/internal/api/handlers"
	"github.com/avergne/CFD-RdvService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "identifiant de rendez-vous invalide"
	msgInvalidRequestBody   = "corps de requête invalide"
	msgNotFound             = "rendez-vous introuvable"
	msgInvalidStatus        = "statut de rendez-vous inconnu"
	msgInvalidTransition    = "cette transition de statut n'est pas autorisée"
)

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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), appointmentID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%d",
				appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidTransition):
			// Переход вне таблицы или проигранная гонка со вторым
			// сотрудником: в обоих случаях клиент видит 409
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: appointment_id=%d, status=%q",
				appointmentID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: appointment_id=%d, status=%s",
		appointmentID, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(updated))
}
