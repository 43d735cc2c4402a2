package create_booking

import (
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-MarketplaceBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID  string         `json:"serviceId"`
	OptionID   string         `json:"optionId"`
	MaterialID *string        `json:"materialId,omitempty"`
	Date       string         `json:"date"`      // "2025-10-15"
	StartTime  string         `json:"startTime"` // "9:00 AM" или "09:00"
	Address    AddressRequest `json:"address"`
}

// AddressRequest адрес оказания услуги
type AddressRequest struct {
	Line1 string  `json:"line1"`
	Line2 *string `json:"line2,omitempty"`
	City  string  `json:"city"`
	State string  `json:"state"`
	Zip   string  `json:"zip"`
	Notes *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	models.BookingResponse
	DurationHours float64 `json:"durationHours"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Email клиента берется из учётных данных, а не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(customerEmail string) *createBooking.Request {
	return &createBooking.Request{
		CustomerEmail: customerEmail,
		ServiceID:     r.ServiceID,
		OptionID:      r.OptionID,
		MaterialID:    r.MaterialID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		Address: createBooking.Address{
			Line1: r.Address.Line1,
			Line2: r.Address.Line2,
			City:  r.Address.City,
			State: r.Address.State,
			Zip:   r.Address.Zip,
			Notes: r.Address.Notes,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingResponse: *models.FromDomainBooking(resp.Booking),
		DurationHours:   resp.DurationHours,
	}
}
