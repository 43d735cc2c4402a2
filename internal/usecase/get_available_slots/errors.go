package get_available_slots

import "github.com/m04kA/SMC-MarketplaceBooking/internal/domain"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewValidationError(domain.KindInvalidInput, "get_available_slots: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = domain.NewValidationError(domain.KindInvalidDate, "get_available_slots: date is in the past")

	// ErrServiceNotFound возвращается, когда объявление или позиция каталога не найдены
	ErrServiceNotFound = domain.NewValidationError(domain.KindServiceNotFound, "get_available_slots: service not found")

	// ErrCatalogUnavailable возвращается, когда каталог не ответил
	ErrCatalogUnavailable = domain.NewTransientError(domain.KindCatalogLookupTimeout, "get_available_slots: catalog lookup failed")

	// ErrStorageUnavailable возвращается при ошибках хранилища бронирований
	ErrStorageUnavailable = domain.NewTransientError(domain.KindStorageUnavailable, "get_available_slots: storage unavailable")
)
