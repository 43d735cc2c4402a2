package create_booking

import (
	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerEmail string  // Email клиента из учётных данных запроса
	ServiceID     string  // ID объявления
	OptionID      string  // ID позиции каталога
	MaterialID    *string // Материал (опционально)
	Date          string  // "2006-01-02"
	StartTime     string  // "9:00 AM" или "09:00"
	Address       Address
}

// Address адрес оказания услуги
type Address struct {
	Line1 string  `validate:"required"`
	Line2 *string
	City  string  `validate:"required"`
	State string  `validate:"required"`
	Zip   string  `validate:"required"`
	Notes *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking       *domain.Booking
	DurationHours float64
}

