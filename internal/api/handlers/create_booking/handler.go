package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-MarketplaceBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserEmail   = "отсутствует email пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDate        = "дата или время бронирования уже прошли"
	msgMissingAddress     = "не заполнен адрес оказания услуги"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidMaterial    = "материал недоступен для выбранной услуги"
	msgSlotNotOffered     = "выбранное время не входит в расписание провайдера"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgServiceUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor.Email))
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: service_id=%s, date=%s, time=%s",
				req.ServiceID, req.Date, req.StartTime)
			msg = msgSlotTaken

		case errors.Is(err, createBooking.ErrMissingAddress):
			h.logger.Warn("POST /bookings - Missing address: %v", err)
			msg = msgMissingAddress

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s, option_id=%s", req.ServiceID, req.OptionID)
			msg = msgServiceNotFound

		case errors.Is(err, createBooking.ErrInvalidMaterial):
			h.logger.Warn("POST /bookings - Invalid material: service_id=%s, option_id=%s", req.ServiceID, req.OptionID)
			msg = msgInvalidMaterial

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /bookings - Slot not offered: service_id=%s, time=%s", req.ServiceID, req.StartTime)
			msg = msgSlotNotOffered

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Booking date in past: date=%s, time=%s", req.Date, req.StartTime)
			msg = msgInvalidDate

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			msg = msgInvalidInput

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%s, customer=%s, error=%v",
				req.ServiceID, actor.Email, err)
			msg = msgServiceUnavailable
		}

		if !handlers.RespondClassified(w, err, msg) {
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, provider_id=%s, customer=%s",
		result.Booking.ID, result.Booking.ProviderID, result.Booking.CustomerEmail)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
