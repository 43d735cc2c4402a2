package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

const (
	tableBookings = "bookings"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
	uniqueViolation = pq.ErrorCode("23505")
)

var bookingColumns = []string{
	"id",
	"provider_id",
	"service_id",
	"option_id",
	"option_name",
	"option_rate",
	"duration_minutes",
	"material_id",
	"material_name",
	"material_price",
	"customer_email",
	"total_price",
	"address_line1",
	"address_line2",
	"city",
	"state",
	"zip",
	"notes",
	"booking_date",
	"start_time",
	"status",
	"payment_status",
	"payment_reference",
	"cancelled_at",
	"completed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новое бронирование.
// Конкурентные вставки одного слота разрешает уникальный индекс
// uq_bookings_active_slot: проигравшая получает ErrSlotNotAvailable.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertQuery(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByCustomer получает список бронирований клиента, новые первыми.
// Опционально фильтрует по статусу.
func (r *Repository) GetByCustomer(ctx context.Context, email string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"customer_email": email}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByProviderWithFilter получает бронирования провайдера.
// Без Status и IncludeInactive отменённые и неоплаченные исключаются.
func (r *Repository) GetByProviderWithFilter(ctx context.Context, providerID string, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"provider_id": providerID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("created_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "created_at DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetBookedTimes возвращает занятые времена начала провайдера на дату
func (r *Repository) GetBookedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildBookedTimesQuery(providerID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan start_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// IsSlotHeld проверяет, удерживает ли какое-либо бронирование слот (provider, date, time)
func (r *Repository) IsSlotHeld(ctx context.Context, providerID string, date time.Time, startTime types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tableBookings).
		Where(squirrel.Eq{
			"provider_id":  providerID,
			"booking_date": date,
			"start_time":   startTime,
			"status":       statusStrings(domain.SlotHoldingStatuses),
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotHeld - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotHeld - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateLifecycle сохраняет статус, статус оплаты и связанные с ними поля
func (r *Repository) UpdateLifecycle(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", booking.Status).
		Set("payment_status", booking.PaymentStatus).
		Set("payment_reference", booking.PaymentReference).
		Set("cancelled_at", booking.CancelledAt).
		Set("completed_at", booking.CompletedAt).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateLifecycle - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLifecycle - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLifecycle - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func buildInsertQuery(b *domain.Booking) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"provider_id",
			"service_id",
			"option_id",
			"option_name",
			"option_rate",
			"duration_minutes",
			"material_id",
			"material_name",
			"material_price",
			"customer_email",
			"total_price",
			"address_line1",
			"address_line2",
			"city",
			"state",
			"zip",
			"notes",
			"booking_date",
			"start_time",
			"status",
			"payment_status",
		).
		Values(
			b.ID,
			b.ProviderID,
			b.ServiceID,
			b.OptionID,
			b.OptionName,
			int64(b.OptionRate),
			b.DurationMinutes,
			b.MaterialID,
			b.MaterialName,
			materialPriceArg(b.MaterialPrice),
			b.CustomerEmail,
			int64(b.TotalPrice),
			b.Address.Line1,
			b.Address.Line2,
			b.Address.City,
			b.Address.State,
			b.Address.Zip,
			b.Address.Notes,
			b.BookingDate,
			string(b.StartTime),
			string(b.Status),
			string(b.PaymentStatus),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildBookedTimesQuery(providerID string, date time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("start_time").
		From(tableBookings).
		Where(squirrel.Eq{
			"provider_id":  providerID,
			"booking_date": date,
			"status":       statusStrings(domain.ActiveStatuses),
		}).
		OrderBy("start_time").
		ToSql()
}

func materialPriceArg(p *types.Money) interface{} {
	if p == nil {
		return nil
	}
	return int64(*p)
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		optionRate, total    int64
		materialPrice        sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.ProviderID,
		&b.ServiceID,
		&b.OptionID,
		&b.OptionName,
		&optionRate,
		&b.DurationMinutes,
		&b.MaterialID,
		&b.MaterialName,
		&materialPrice,
		&b.CustomerEmail,
		&total,
		&b.Address.Line1,
		&b.Address.Line2,
		&b.Address.City,
		&b.Address.State,
		&b.Address.Zip,
		&b.Address.Notes,
		&b.BookingDate,
		&b.StartTime,
		&b.Status,
		&b.PaymentStatus,
		&b.PaymentReference,
		&b.CancelledAt,
		&b.CompletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.OptionRate = types.Money(optionRate)
	b.TotalPrice = types.Money(total)
	if materialPrice.Valid {
		price := types.Money(materialPrice.Int64)
		b.MaterialPrice = &price
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
