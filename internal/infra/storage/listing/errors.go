package listing

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

var (
	// ErrListingNotFound объявление не найдено; совместима с domain.ErrListingNotFound
	ErrListingNotFound = fmt.Errorf("listing.repository: %w", domain.ErrListingNotFound)

	// ErrFindListing возвращается при ошибке запроса к MongoDB
	ErrFindListing = errors.New("listing.repository: failed to find listing")
)
