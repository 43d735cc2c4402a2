package catalog

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

// CatalogSource источник объявлений провайдеров (HTTP сервис или MongoDB)
type CatalogSource interface {
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
