package domain

import "errors"

// ErrorKind конкретный случай внутри категории ошибок
type ErrorKind string

const (
	KindMissingAddress  ErrorKind = "missing_address"
	KindServiceNotFound ErrorKind = "service_not_found"
	KindInvalidMaterial ErrorKind = "invalid_material"
	KindInvalidInput    ErrorKind = "invalid_input"
	KindInvalidDate     ErrorKind = "invalid_date"

	KindSlotTaken ErrorKind = "slot_taken"

	KindStorageUnavailable   ErrorKind = "storage_unavailable"
	KindCatalogLookupTimeout ErrorKind = "catalog_lookup_timeout"
)

// ValidationError запрос некорректен или ссылается на несуществующие сущности.
// Не ретраится.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError проигранная гонка за слот: клиенту нужно перечитать доступность
type ConflictError struct {
	Kind    ErrorKind
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// TransientError временная ошибка инфраструктуры, вызывающий должен повторить с backoff
type TransientError struct {
	Kind    ErrorKind
	Message string
}

func (e *TransientError) Error() string {
	return e.Message
}

func NewValidationError(kind ErrorKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

func NewConflictError(kind ErrorKind, message string) *ConflictError {
	return &ConflictError{Kind: kind, Message: message}
}

func NewTransientError(kind ErrorKind, message string) *TransientError {
	return &TransientError{Kind: kind, Message: message}
}

// IsTransient true, если в цепочке есть TransientError
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

var (
	// ErrListingNotFound возвращается источником каталога, если объявление не найдено
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidTransition событие недопустимо в текущем состоянии бронирования
	ErrInvalidTransition = errors.New("invalid booking state transition")

	// ErrUnknownEvent неизвестное событие жизненного цикла
	ErrUnknownEvent = errors.New("unknown booking event")

	ErrNegativeRate          = errors.New("catalog entry rate is negative")
	ErrEmptyMaterials        = errors.New("catalog entry materials list is empty")
	ErrNegativeMaterialPrice = errors.New("catalog entry material price is negative")
)
