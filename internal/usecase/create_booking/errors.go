package create_booking

import "github.com/m04kA/SMC-MarketplaceBooking/internal/domain"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewValidationError(domain.KindInvalidInput, "create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата или время бронирования уже прошли
	ErrInvalidDate = domain.NewValidationError(domain.KindInvalidDate, "create_booking: booking date is in the past")

	// ErrMissingAddress возвращается, когда не заполнены обязательные поля адреса
	ErrMissingAddress = domain.NewValidationError(domain.KindMissingAddress, "create_booking: service address is incomplete")

	// ErrServiceNotFound возвращается, когда объявление или позиция каталога не найдены
	ErrServiceNotFound = domain.NewValidationError(domain.KindServiceNotFound, "create_booking: service not found")

	// ErrInvalidMaterial возвращается, когда выбранный материал не предлагается для услуги
	ErrInvalidMaterial = domain.NewValidationError(domain.KindInvalidMaterial, "create_booking: material is not offered for this service")

	// ErrSlotNotOffered возвращается, когда время не входит в сетку слотов провайдера
	ErrSlotNotOffered = domain.NewValidationError(domain.KindInvalidInput, "create_booking: time is not an offered slot")

	// ErrSlotTaken возвращается, когда слот уже занят (проигранная гонка)
	ErrSlotTaken = domain.NewConflictError(domain.KindSlotTaken, "create_booking: slot is already taken")

	// ErrCatalogUnavailable возвращается, когда каталог не ответил
	ErrCatalogUnavailable = domain.NewTransientError(domain.KindCatalogLookupTimeout, "create_booking: catalog lookup failed")

	// ErrStorageUnavailable возвращается при ошибках хранилища бронирований
	ErrStorageUnavailable = domain.NewTransientError(domain.KindStorageUnavailable, "create_booking: storage unavailable")
)
