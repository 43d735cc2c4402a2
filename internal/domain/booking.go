package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending       BookingStatus = "pending"
	StatusConfirmed     BookingStatus = "confirmed"
	StatusCompleted     BookingStatus = "completed"
	StatusCancelled     BookingStatus = "cancelled"
	StatusPaymentFailed BookingStatus = "payment_failed"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Address адрес, по которому оказывается услуга
type Address struct {
	Line1 string
	Line2 *string
	City  string
	State string
	Zip   string
	Notes *string
}

// IsComplete true, если заполнены все обязательные поля адреса
func (a Address) IsComplete() bool {
	return strings.TrimSpace(a.Line1) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.State) != "" &&
		strings.TrimSpace(a.Zip) != ""
}

// Booking represents a customer's reservation of a provider's service
type Booking struct {
	ID         string
	ProviderID string
	ServiceID  string // ID объявления (listing) провайдера

	// Снимок позиции каталога на момент бронирования
	OptionID        string
	OptionName      string
	OptionRate      types.Money
	DurationMinutes int

	MaterialID    *string
	MaterialName  *string
	MaterialPrice *types.Money

	CustomerEmail string
	TotalPrice    types.Money
	Address       Address

	BookingDate time.Time
	StartTime   types.TimeString

	Status           BookingStatus
	PaymentStatus    PaymentStatus
	PaymentReference *string

	CancelledAt *time.Time
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// State возвращает текущее состояние жизненного цикла
func (b *Booking) State() LifecycleState {
	return LifecycleState{Status: b.Status, PaymentStatus: b.PaymentStatus}
}

// IsTerminal returns true if no further lifecycle transitions are possible
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// HoldsSlot returns true if the booking occupies its (provider, date, time) slot
func (b *Booking) HoldsSlot() bool {
	for _, s := range SlotHoldingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// IsOwnedBy returns true if the booking was made by the customer
func (b *Booking) IsOwnedBy(email string) bool {
	return email != "" && strings.EqualFold(b.CustomerEmail, email)
}

// BelongsToProvider returns true if the booking is for the provider
func (b *Booking) BelongsToProvider(providerID string) bool {
	return providerID != "" && b.ProviderID == providerID
}

// IsTerminal returns true for statuses without outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusPaymentFailed
}

// IsValid returns true if the status is a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusPaymentFailed:
		return true
	}
	return false
}

// CalculateTotalPrice возвращает итоговую цену: ставка + цена материала (если выбран)
func CalculateTotalPrice(rate types.Money, materialPrice *types.Money) types.Money {
	if materialPrice == nil {
		return rate
	}
	return rate + *materialPrice
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	ProviderID      *string        // Фильтр по провайдеру
	CustomerEmail   *string        // Фильтр по клиенту
	Date            *time.Time     // Конкретная дата (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и неоплаченные
}
