package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/avergne/CFD-RdvService/internal/api/handlers"
	getAvailableSlots "github.com/avergne/CFD-RdvService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "la date est obligatoire"
	msgMissingType = "le type de rendez-vous est obligatoire"
	msgInvalidDate = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidType = "type de rendez-vous inconnu"
	msgPastDate    = "la date est déjà passée"
	msgWeekend     = "les rendez-vous ne sont disponibles que du lundi au vendredi"
	msgDateTooFar  = "les réservations sont ouvertes jusqu'à trois mois à l'avance"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), type (required, formation|livrables)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	typeStr := r.URL.Query().Get("type")
	if typeStr == "" {
		h.logger.Warn("GET /available-slots - Missing type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	useCaseReq, err := ToUseCaseRequest(typeStr, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidType):
			h.logger.Warn("GET /available-slots - Invalid type: %s", typeStr)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, getAvailableSlots.ErrWeekendDate):
			h.logger.Warn("GET /available-slots - Weekend date: %s", dateStr)
			handlers.RespondBadRequest(w, msgWeekend)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Past date: %s", dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far: %s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, type=%s, error=%v",
				dateStr, typeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Пустой список слотов - нормальный успешный ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved: date=%s, type=%s, slots_count=%d",
		dateStr, typeStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
