package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings"
)

const (
	maxPayloadBytes = 64 << 10

	headerSignature = "Stripe-Signature"

	msgInvalidPayload     = "некорректное тело запроса"
	msgInvalidSignature   = "некорректная подпись"
	msgServiceUnavailable = "сервис временно недоступен, повторите запрос"
)

type Handler struct {
	service BookingService
	secret  string
	logger  Logger
}

func NewHandler(service BookingService, secret string, logger Logger) *Handler {
	return &Handler{
		service: service,
		secret:  secret,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
// Неизвестные типы событий подтверждаются и игнорируются.
// Временные ошибки возвращают 503, чтобы провайдер повторил доставку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, r.Header.Get(headerSignature), h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Signature verification failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSignature)
		return
	}

	paymentEvt, handled, err := toPaymentEvent(event)
	if !handled {
		h.logger.Info("POST /payments/webhook - Ignoring event: id=%s, type=%s", event.ID, event.Type)
		handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})
		return
	}
	if err != nil {
		// Повтор доставки не поможет
		h.logger.Warn("POST /payments/webhook - Unusable event: id=%s, type=%s, error=%v", event.ID, event.Type, err)
		handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})
		return
	}

	paymentRef := paymentEvt.PaymentIntentID
	result, err := h.service.ApplyEvent(r.Context(), paymentEvt.BookingID, paymentEvt.Event, &paymentRef)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /payments/webhook - Booking not found: booking_id=%s, event_id=%s",
				paymentEvt.BookingID, event.ID)
			handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})

		case errors.Is(err, domain.ErrInvalidTransition):
			h.logger.Warn("POST /payments/webhook - Event not applicable: booking_id=%s, event=%s, error=%v",
				paymentEvt.BookingID, paymentEvt.Event, err)
			handlers.RespondJSON(w, http.StatusOK, AckResponse{Received: true})

		default:
			h.logger.Error("POST /payments/webhook - Failed to apply event: booking_id=%s, event=%s, error=%v",
				paymentEvt.BookingID, paymentEvt.Event, err)
			if !handlers.RespondClassified(w, err, msgServiceUnavailable) {
				handlers.RespondInternalError(w)
			}
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Event processed: booking_id=%s, event=%s, applied=%t, status=%s",
		paymentEvt.BookingID, paymentEvt.Event, result.Applied, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, AckResponse{
		Received: true,
		Applied:  result.Applied,
		Status:   result.Booking.Status,
	})
}
