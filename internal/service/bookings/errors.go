package bookings

import (
	"errors"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда у actor нет прав на бронирование
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidInput некорректный фильтр (статус, дата)
	ErrInvalidInput = domain.NewValidationError(domain.KindInvalidInput, "invalid input data")

	// ErrStorageUnavailable хранилище бронирований недоступно
	ErrStorageUnavailable = domain.NewTransientError(domain.KindStorageUnavailable, "booking storage unavailable")
)
