package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings/models"
)

const (
	msgMissingUserEmail   = "отсутствует email пользователя"
	msgInvalidStatus      = "некорректный статус бронирования"
	msgServiceUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/me/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/me/bookings - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	serviceReq := &models.GetCustomerBookingsRequest{Actor: actor}
	if status := r.URL.Query().Get("status"); status != "" {
		serviceReq.Status = &status
	}

	result, err := h.service.GetCustomerBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/me/bookings - Invalid parameters: %v", err)
			handlers.RespondClassified(w, err, msgInvalidStatus)

		default:
			h.logger.Error("GET /customers/me/bookings - Failed to get bookings: user=%s, error=%v", actor.Email, err)
			if !handlers.RespondClassified(w, err, msgServiceUnavailable) {
				handlers.RespondInternalError(w)
			}
		}
		return
	}

	h.logger.Info("GET /customers/me/bookings - Bookings retrieved successfully: user=%s, count=%d",
		actor.Email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
