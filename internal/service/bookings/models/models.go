package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	Actor  domain.Actor
	Status *string
}

// GetProviderBookingsRequest запрос на получение бронирований провайдера
type GetProviderBookingsRequest struct {
	Actor           domain.Actor
	ProviderID      string
	Date            *string // "2025-10-15" (опционально)
	Status          *string // Фильтр по статусу (опционально)
	IncludeInactive bool    // Включить отменённые и неоплаченные бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProviderBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	providerID := r.ProviderID
	filter := domain.BookingsFilter{
		ProviderID:      &providerID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, strings.TrimSpace(*r.Date))
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AddressResponse адрес оказания услуги
type AddressResponse struct {
	Line1 string  `json:"line1"`
	Line2 *string `json:"line2,omitempty"`
	City  string  `json:"city"`
	State string  `json:"state"`
	Zip   string  `json:"zip"`
	Notes *string `json:"notes,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	ProviderID      string  `json:"providerId"`
	ServiceID       string  `json:"serviceId"`
	OptionID        string  `json:"optionId"`
	OptionName      string  `json:"optionName"`
	OptionRate      float64 `json:"optionRate"`
	DurationMinutes int     `json:"durationMinutes"`

	MaterialID    *string  `json:"materialId,omitempty"`
	MaterialName  *string  `json:"materialName,omitempty"`
	MaterialPrice *float64 `json:"materialPrice,omitempty"`

	CustomerEmail string          `json:"customerEmail"`
	TotalPrice    float64         `json:"totalPrice"`
	Address       AddressResponse `json:"address"`

	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "9:00 AM"

	Status           string  `json:"status"`
	PaymentStatus    string  `json:"paymentStatus"`
	PaymentReference *string `json:"paymentReference,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format
	CompletedAt *string `json:"completedAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ApplyEventResponse результат применения события жизненного цикла
type ApplyEventResponse struct {
	Booking *BookingResponse `json:"booking"`
	Applied bool             `json:"applied"` // false для идемпотентного повтора
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		ProviderID:       b.ProviderID,
		ServiceID:        b.ServiceID,
		OptionID:         b.OptionID,
		OptionName:       b.OptionName,
		OptionRate:       b.OptionRate.Float(),
		DurationMinutes:  b.DurationMinutes,
		MaterialID:       b.MaterialID,
		MaterialName:     b.MaterialName,
		CustomerEmail:    b.CustomerEmail,
		TotalPrice:       b.TotalPrice.Float(),
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		Address: AddressResponse{
			Line1: b.Address.Line1,
			Line2: b.Address.Line2,
			City:  b.Address.City,
			State: b.Address.State,
			Zip:   b.Address.Zip,
			Notes: b.Address.Notes,
		},
	}

	if b.MaterialPrice != nil {
		price := b.MaterialPrice.Float()
		resp.MaterialPrice = &price
	}
	resp.CancelledAt = formatTimestamp(b.CancelledAt)
	resp.CompletedAt = formatTimestamp(b.CompletedAt)

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
