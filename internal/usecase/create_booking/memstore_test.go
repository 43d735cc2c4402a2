package create_booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// memStore хранилище в памяти с тем же условием уникальности, что и индекс uq_bookings_active_slot
type memStore struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking

	// задержка между предварительной проверкой и вставкой расширяет окно гонки
	precheckDelay time.Duration
}

func newMemStore() *memStore {
	return &memStore{bookings: make(map[string]*domain.Booking)}
}

func (s *memStore) IsSlotHeld(_ context.Context, providerID string, date time.Time, startTime types.TimeString) (bool, error) {
	s.mu.Lock()
	held := s.findHolderLocked(providerID, date, startTime) != nil
	s.mu.Unlock()

	if s.precheckDelay > 0 {
		time.Sleep(s.precheckDelay)
	}
	return held, nil
}

func (s *memStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findHolderLocked(b.ProviderID, b.BookingDate, b.StartTime) != nil {
		return nil, bookingRepo.ErrSlotNotAvailable
	}

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	stored := *b
	s.bookings[b.ID] = &stored
	return b, nil
}

func (s *memStore) GetBookedTimes(_ context.Context, providerID string, date time.Time) ([]types.TimeString, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := make([]types.TimeString, 0)
	for _, b := range s.bookings {
		if b.ProviderID != providerID || !b.BookingDate.Equal(date) {
			continue
		}
		for _, st := range domain.ActiveStatuses {
			if b.Status == st {
				times = append(times, b.StartTime)
				break
			}
		}
	}
	return times, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) findHolderLocked(providerID string, date time.Time, startTime types.TimeString) *domain.Booking {
	for _, b := range s.bookings {
		if b.ProviderID == providerID && b.BookingDate.Equal(date) && b.StartTime == startTime && b.HoldsSlot() {
			return b
		}
	}
	return nil
}
