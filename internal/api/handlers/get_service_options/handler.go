package get_service_options

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/catalog"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceUnavailable = "каталог временно недоступен, повторите запрос"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	result, err := h.service.GetServiceOptions(r.Context(), serviceID)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/options - Invalid service ID: %q", serviceID)
			msg = msgInvalidServiceID

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/options - Service not found: service_id=%s", serviceID)
			msg = msgServiceNotFound

		default:
			h.logger.Error("GET /services/{id}/options - Failed to get options: service_id=%s, error=%v", serviceID, err)
			msg = msgServiceUnavailable
		}

		if !handlers.RespondClassified(w, err, msg) {
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/options - Options retrieved successfully: service_id=%s, count=%d",
		serviceID, len(result.Options))
	handlers.RespondJSON(w, http.StatusOK, result)
}
