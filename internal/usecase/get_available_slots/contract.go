package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// CatalogSource источник объявлений провайдеров (ListingService или MongoDB)
type CatalogSource interface {
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
}

// BookedTimesSource источник занятых времён (кэш поверх репозитория или сам репозиторий)
type BookedTimesSource interface {
	GetBookedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
