package listingservice

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

var (
	// ErrListingNotFound объявление не найдено; совместима с domain.ErrListingNotFound
	ErrListingNotFound = fmt.Errorf("listingservice client: %w", domain.ErrListingNotFound)

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("listingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("listingservice client: invalid response")
)
