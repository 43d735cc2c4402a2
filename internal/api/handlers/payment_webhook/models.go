package payment_webhook

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v76"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

const (
	eventPaymentIntentSucceeded = "payment_intent.succeeded"
	eventPaymentIntentFailed    = "payment_intent.payment_failed"

	// MetadataBookingID ключ метаданных PaymentIntent с ID бронирования
	MetadataBookingID = "booking_id"
)

// AckResponse ответ платежному провайдеру
type AckResponse struct {
	Received bool   `json:"received"`
	Applied  bool   `json:"applied"`
	Status   string `json:"status,omitempty"`
}

// paymentEvent событие оплаты, относящееся к бронированию
type paymentEvent struct {
	BookingID       string
	PaymentIntentID string
	Event           domain.BookingEvent
}

// toPaymentEvent извлекает событие жизненного цикла из события Stripe.
// ok == false для типов событий, которые сервис не обрабатывает.
func toPaymentEvent(event stripe.Event) (paymentEvent, bool, error) {
	var lifecycleEvent domain.BookingEvent
	switch string(event.Type) {
	case eventPaymentIntentSucceeded:
		lifecycleEvent = domain.EventPaymentSucceeded
	case eventPaymentIntentFailed:
		lifecycleEvent = domain.EventPaymentFailed
	default:
		return paymentEvent{}, false, nil
	}

	if event.Data == nil {
		return paymentEvent{}, true, fmt.Errorf("event %s has no data", event.ID)
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return paymentEvent{}, true, fmt.Errorf("decode payment intent: %w", err)
	}

	bookingID := intent.Metadata[MetadataBookingID]
	if bookingID == "" {
		return paymentEvent{}, true, fmt.Errorf("payment intent %s has no %s metadata", intent.ID, MetadataBookingID)
	}

	return paymentEvent{
		BookingID:       bookingID,
		PaymentIntentID: intent.ID,
		Event:           lifecycleEvent,
	}, true, nil
}
