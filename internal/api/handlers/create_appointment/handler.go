package create_appointment

import (
	"errors"
	"net/http"

	"github.com/avergne/CFD-RdvService/internal/api/handlers"
	createAppointment "github.com/avergne/CFD-RdvService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidDateFormat  = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidType        = "type de rendez-vous inconnu"
	msgPastDate           = "la date est déjà passée"
	msgWeekend            = "les rendez-vous ne sont disponibles que du lundi au vendredi"
	msgDateTooFar         = "les réservations sont ouvertes jusqu'à trois mois à l'avance"
	msgInvalidTimeSlot    = "ce créneau horaire n'existe pas pour ce type de rendez-vous"
	msgSlotTaken          = "ce créneau vient d'être réservé, veuillez en choisir un autre"
	msgInvalidInput       = "données du formulaire invalides"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			// Проигравший гонку бронирования получает 409, а не 500:
			// клиенту достаточно выбрать другой слот
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s, type=%s",
				req.AppointmentDate, req.AppointmentTime, req.Type)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrInvalidType):
			h.logger.Warn("POST /appointments - Invalid type: %s", req.Type)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, createAppointment.ErrWeekendDate):
			h.logger.Warn("POST /appointments - Weekend date: %s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgWeekend)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Past date: %s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far: %s", req.AppointmentDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: %s (type=%s)",
				req.AppointmentTime, req.Type)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, type=%s, error=%v",
				req.AppointmentDate, req.AppointmentTime, req.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%d, type=%s, date=%s, time=%s",
		result.ID, result.Type, req.AppointmentDate, req.AppointmentTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
