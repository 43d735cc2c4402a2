package catalog

import "github.com/m04kA/SMC-MarketplaceBooking/internal/domain"

var (
	// ErrInvalidInput возвращается при пустом ID объявления
	ErrInvalidInput = domain.NewValidationError(domain.KindInvalidInput, "catalog: invalid input data")

	// ErrServiceNotFound возвращается, когда объявление не найдено
	ErrServiceNotFound = domain.NewValidationError(domain.KindServiceNotFound, "catalog: service not found")

	// ErrCatalogUnavailable возвращается, когда источник каталога не ответил
	ErrCatalogUnavailable = domain.NewTransientError(domain.KindCatalogLookupTimeout, "catalog: lookup failed")
)

