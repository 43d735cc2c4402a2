package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	catalog      CatalogSource
	bookedTimes  BookedTimesSource
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogSource,
	bookedTimes BookedTimesSource,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		bookedTimes:  bookedTimes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, service=%s, date=%s",
		req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Объявление и занятые времена запрашиваем параллельно
	var (
		listing *domain.Listing
		booked  []types.TimeString
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listing, err = uc.catalog.GetListing(gctx, req.ServiceID)
		if err != nil {
			if errors.Is(err, domain.ErrListingNotFound) {
				return fmt.Errorf("%w: listing %s", ErrServiceNotFound, req.ServiceID)
			}
			return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		booked, err = uc.bookedTimes.GetBookedTimes(gctx, req.ProviderID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get booked times: %v", ErrStorageUnavailable, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if domain.IsTransient(err) {
			uc.logger.Error("GetAvailableSlots: %v", err)
		} else {
			uc.logger.Warn("GetAvailableSlots: %v", err)
		}
		return nil, err
	}

	// 3. Объявление должно принадлежать провайдеру
	if listing.ProviderID != req.ProviderID {
		uc.logger.Warn("GetAvailableSlots: listing %s does not belong to provider %s", req.ServiceID, req.ProviderID)
		return nil, fmt.Errorf("%w: listing %s does not belong to provider %s", ErrServiceNotFound, req.ServiceID, req.ProviderID)
	}

	// 4. Длительность выбранной позиции (по умолчанию 1 час)
	option := domain.ServiceOption{DurationHours: domain.DefaultDurationHours, DurationMinutes: 60}
	if req.OptionID != nil {
		entry, ok := listing.FindEntry(*req.OptionID)
		if !ok {
			uc.logger.Warn("GetAvailableSlots: option %s not found in listing %s", *req.OptionID, req.ServiceID)
			return nil, fmt.Errorf("%w: option %s", ErrServiceNotFound, *req.OptionID)
		}
		option = domain.ResolveServiceOption(*entry)
	}

	// 5. Генерация и фильтрация
	candidates := domain.CandidateSlots(listing.Availability)
	available := domain.FilterAvailable(candidates, booked)
	available = dropPastSlots(available, req.Date, now)

	slots := describeSlots(available, option.DurationMinutes, domain.EffectiveWindow(listing.Availability))

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for provider=%s, service=%s, date=%s",
		len(slots), len(candidates), req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		ProviderID:    req.ProviderID,
		ServiceID:     req.ServiceID,
		OptionID:      req.OptionID,
		DurationHours: option.DurationHours,
		Slots:         slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID == "" {
		return fmt.Errorf("%w: providerId is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
