package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-MarketplaceBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingIDs         = "ID провайдера и услуги обязательны"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast         = "дата уже прошла"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidParams      = "некорректные параметры запроса"
	msgServiceUnavailable = "сервис временно недоступен, повторите запрос"
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

// Handle GET /api/v1/providers/{providerId}/services/{serviceId}/available-slots
// Query params: date (required, YYYY-MM-DD), optionId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID := strings.TrimSpace(vars["providerId"])
	serviceID := strings.TrimSpace(vars["serviceId"])
	if providerID == "" || serviceID == "" {
		h.logger.Warn("GET /providers/{id}/services/{id}/available-slots - Missing provider or service ID")
		handlers.RespondBadRequest(w, msgMissingIDs)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /providers/{id}/services/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(providerID, serviceID, r.URL.Query().Get("optionId"), dateStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/services/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /providers/{id}/services/{id}/available-slots - Service not found: provider_id=%s, service_id=%s",
				providerID, serviceID)
			msg = msgServiceNotFound

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /providers/{id}/services/{id}/available-slots - Date in past: date=%s", dateStr)
			msg = msgDateInPast

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/services/{id}/available-slots - Invalid input: %v", err)
			msg = msgInvalidParams

		default:
			h.logger.Error("GET /providers/{id}/services/{id}/available-slots - Failed to get slots: provider_id=%s, service_id=%s, error=%v",
				providerID, serviceID, err)
			msg = msgServiceUnavailable
		}

		if !handlers.RespondClassified(w, err, msg) {
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /providers/{id}/services/{id}/available-slots - Slots retrieved successfully: provider_id=%s, service_id=%s, slots_count=%d",
		providerID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
