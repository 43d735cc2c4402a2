package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// IsSlotHeld быстрая проверка занятости слота (pending/confirmed)
	IsSlotHeld(ctx context.Context, providerID string, date time.Time, startTime types.TimeString) (bool, error)
	// Create атомарная вставка; при нарушении уникальности слота возвращает booking.ErrSlotNotAvailable
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogSource источник объявлений провайдеров
type CatalogSource interface {
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
}

// BookedTimesInvalidator сбрасывает кэш занятых времён
type BookedTimesInvalidator interface {
	Invalidate(ctx context.Context, providerID string, date time.Time) error
}

// MetricsRecorder доменные метрики бронирований
type MetricsRecorder interface {
	BookingCreated(providerID string)
	BookingConflict(stage string)
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
