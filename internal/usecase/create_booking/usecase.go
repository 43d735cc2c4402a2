package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceBooking/internal/infra/storage/booking"
)

const (
	conflictStagePrecheck = "precheck"
	conflictStageInsert   = "insert"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      CatalogSource
	cache        BookedTimesInvalidator
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog CatalogSource,
	cache BookedTimesInvalidator,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		cache:        cache,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
//
// Порядок проверок: формат запроса, адрес, услуга, материал, сетка слотов,
// занятость слота. Окончательно гонку за слот разрешает уникальный индекс
// при вставке, предварительная проверка нужна только для быстрого ответа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, service=%s, option=%s, date=%s, time=%s",
		req.CustomerEmail, req.ServiceID, req.OptionID, req.Date, req.StartTime)

	now := uc.timeProvider.Now()

	// 1. Формат запроса
	date, startTime, err := validateRequest(req, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Адрес
	if err := validateAddress(req.Address); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Объявление и позиция каталога
	listing, err := uc.catalog.GetListing(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			uc.logger.Warn("CreateBooking: listing id=%s not found", req.ServiceID)
			return nil, fmt.Errorf("%w: listing %s", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("CreateBooking: failed to get listing id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	entry, ok := listing.FindEntry(req.OptionID)
	if !ok {
		uc.logger.Warn("CreateBooking: option id=%s not found in listing id=%s", req.OptionID, req.ServiceID)
		return nil, fmt.Errorf("%w: option %s", ErrServiceNotFound, req.OptionID)
	}
	if err := entry.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: option id=%s is not bookable: %v", req.OptionID, err)
		return nil, fmt.Errorf("%w: option %s: %v", ErrServiceNotFound, req.OptionID, err)
	}

	// 4. Материал
	var material *domain.Material
	if req.MaterialID != nil && *req.MaterialID != "" {
		material, ok = entry.FindMaterial(*req.MaterialID)
		if !ok {
			uc.logger.Warn("CreateBooking: material id=%s is not offered for option id=%s", *req.MaterialID, req.OptionID)
			return nil, fmt.Errorf("%w: material %s", ErrInvalidMaterial, *req.MaterialID)
		}
	}

	// 5. Время должно быть одним из предлагаемых слотов
	if err := validateSlotOffered(listing.Availability, date, startTime, now); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 6. Предварительная проверка занятости
	held, err := uc.bookingRepo.IsSlotHeld(ctx, listing.ProviderID, date, startTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrStorageUnavailable, err)
	}
	if held {
		uc.metrics.BookingConflict(conflictStagePrecheck)
		uc.logger.Warn("CreateBooking: slot provider=%s date=%s time=%s is taken",
			listing.ProviderID, req.Date, startTime)
		return nil, ErrSlotTaken
	}

	// 7. Атомарная вставка
	option := domain.ResolveServiceOption(*entry)
	booking := &domain.Booking{
		ID:              uuid.NewString(),
		ProviderID:      listing.ProviderID,
		ServiceID:       listing.ID,
		OptionID:        entry.ID,
		OptionName:      entry.Name,
		OptionRate:      option.Rate,
		DurationMinutes: option.DurationMinutes,
		CustomerEmail:   strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		Address:         toDomainAddress(req.Address),
		BookingDate:     date,
		StartTime:       startTime,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
	}
	if material != nil {
		booking.MaterialID = &material.ID
		booking.MaterialName = &material.Name
		booking.MaterialPrice = &material.Price
	}
	booking.TotalPrice = domain.CalculateTotalPrice(booking.OptionRate, booking.MaterialPrice)

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			uc.metrics.BookingConflict(conflictStageInsert)
			uc.logger.Warn("CreateBooking: lost race for slot provider=%s date=%s time=%s",
				listing.ProviderID, req.Date, startTime)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrStorageUnavailable, err)
	}

	// 8. Сбрасываем кэш занятых времён
	if err := uc.cache.Invalidate(ctx, created.ProviderID, created.BookingDate); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate booked times cache: %v", err)
	}
	uc.metrics.BookingCreated(created.ProviderID)

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%s", created.ID, created.TotalPrice)

	return &Response{
		Booking:       created,
		DurationHours: option.DurationHours,
	}, nil
}
