package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MarketplaceBooking/internal/service/bookings/models"
)

const (
	transitionApplied  = "applied"
	transitionNoOp     = "noop"
	transitionRejected = "rejected"
)

// Service сервис для чтения бронирований и управления их жизненным циклом
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	cache        BookedTimesInvalidator
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	cache BookedTimesInvalidator,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		cache:        cache,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID.
// Бронирование видно клиенту, который его создал, и провайдеру.
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for actor=%s", id, actor.Email)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError("GetByID", id, err)
	}

	if !actor.CanView(booking) {
		s.logger.Warn("GetByID: access denied for actor=%s to booking id=%s", actor.Email, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента, новые первыми.
// Опционально фильтрует по статусу.
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	email := req.Actor.NormalizedEmail()
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%s, status=%v", email, req.Status)

	if email == "" {
		return nil, fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%s", *req.Status, email)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		domainStatus = &status
	}

	list, err := s.bookingRepo.GetByCustomer(ctx, email, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%s", len(list), email)
	return models.FromDomainBookingList(list), nil
}

// GetProviderBookings получает бронирования провайдера с фильтрацией по дате и статусу.
// Доступно только самому провайдеру.
func (s *Service) GetProviderBookings(ctx context.Context, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetProviderBookings: fetching bookings for provider=%s, actor=%s", req.ProviderID, req.Actor.Email)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", *req.Date)
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if !req.Actor.IsProvider(req.ProviderID) {
		s.logger.Warn("GetProviderBookings: actor=%s is not provider=%s", req.Actor.Email, req.ProviderID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderBookings: invalid filter for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.GetByProviderWithFilter(ctx, req.ProviderID, filter)
	if err != nil {
		s.logger.Error("GetProviderBookings: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderBookings - repository error: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("GetProviderBookings: successfully fetched %d bookings for provider=%s", len(list), req.ProviderID)
	return models.FromDomainBookingList(list), nil
}

// Cancel отменяет бронирование. Может клиент или провайдер.
// Повторная отмена возвращает текущее состояние без изменений.
func (s *Service) Cancel(ctx context.Context, bookingID string, actor domain.Actor) (*models.ApplyEventResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by actor=%s", bookingID, actor.Email)

	return s.transition(ctx, bookingID, domain.EventCancel, nil, func(b *domain.Booking) error {
		if !actor.CanView(b) {
			return ErrAccessDenied
		}
		return nil
	})
}

// Complete отмечает бронирование выполненным. Доступно только провайдеру.
func (s *Service) Complete(ctx context.Context, bookingID string, actor domain.Actor) (*models.ApplyEventResponse, error) {
	s.logger.Info("Complete: completing booking id=%s by actor=%s", bookingID, actor.Email)

	return s.transition(ctx, bookingID, domain.EventComplete, nil, func(b *domain.Booking) error {
		if !actor.IsProvider(b.ProviderID) {
			return ErrAccessDenied
		}
		return nil
	})
}

// ApplyEvent применяет внешнее событие (например, результат оплаты) к бронированию.
// paymentRef сохраняется при успешной оплате.
func (s *Service) ApplyEvent(ctx context.Context, bookingID string, event domain.BookingEvent, paymentRef *string) (*models.ApplyEventResponse, error) {
	s.logger.Info("ApplyEvent: applying event=%s to booking id=%s", event, bookingID)
	return s.transition(ctx, bookingID, event, paymentRef, nil)
}

// transition под блокировкой строки вычисляет переход и сохраняет его, если состояние изменилось
func (s *Service) transition(
	ctx context.Context,
	bookingID string,
	event domain.BookingEvent,
	paymentRef *string,
	authorize func(b *domain.Booking) error,
) (*models.ApplyEventResponse, error) {
	var (
		booking *domain.Booking
		result  domain.Transition
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.bookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return s.repoError("transition", bookingID, err)
		}

		if authorize != nil {
			if err := authorize(current); err != nil {
				s.logger.Warn("transition: event=%s on booking id=%s rejected: %v", event, bookingID, err)
				return err
			}
		}

		result, err = domain.ApplyEvent(current.State(), event)
		if err != nil {
			s.logger.Warn("transition: event=%s not allowed for booking id=%s in state %s/%s",
				event, bookingID, current.Status, current.PaymentStatus)
			return fmt.Errorf("%w: event %s in state %s/%s", err, event, current.Status, current.PaymentStatus)
		}

		booking = current
		if result.NoOp {
			return nil
		}

		now := s.timeProvider.Now()
		booking.Status = result.To.Status
		booking.PaymentStatus = result.To.PaymentStatus
		booking.UpdatedAt = now
		switch booking.Status {
		case domain.StatusCancelled:
			booking.CancelledAt = &now
		case domain.StatusCompleted:
			booking.CompletedAt = &now
		}
		if paymentRef != nil && *paymentRef != "" {
			booking.PaymentReference = paymentRef
		}

		if err := s.bookingRepo.UpdateLifecycle(ctx, booking); err != nil {
			return s.repoError("transition", bookingID, err)
		}
		return nil
	})
	if err != nil {
		s.metrics.LifecycleTransition(string(event), transitionRejected)
		return nil, err
	}

	if result.NoOp {
		s.metrics.LifecycleTransition(string(event), transitionNoOp)
		s.logger.Info("transition: event=%s on booking id=%s is a no-op, state %s/%s",
			event, bookingID, booking.Status, booking.PaymentStatus)
		return &models.ApplyEventResponse{Booking: models.FromDomainBooking(booking), Applied: false}, nil
	}

	if err := s.cache.Invalidate(ctx, booking.ProviderID, booking.BookingDate); err != nil {
		s.logger.Warn("transition: failed to invalidate booked times for provider=%s: %v", booking.ProviderID, err)
	}
	s.metrics.LifecycleTransition(string(event), transitionApplied)

	s.logger.Info("transition: booking id=%s moved %s/%s -> %s/%s by event=%s",
		bookingID, result.From.Status, result.From.PaymentStatus, result.To.Status, result.To.PaymentStatus, event)
	return &models.ApplyEventResponse{Booking: models.FromDomainBooking(booking), Applied: true}, nil
}

func (s *Service) repoError(op, bookingID string, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%s not found", op, bookingID)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%s: %v", op, bookingID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrStorageUnavailable, op, err)
}
