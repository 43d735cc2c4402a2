package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest проверяет формат запроса и нормализует дату и время
func validateRequest(req *Request, now time.Time) (time.Time, types.TimeString, error) {
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return time.Time{}, "", fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return time.Time{}, "", fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.OptionID == "" {
		return time.Time{}, "", fmt.Errorf("%w: optionId is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	if isDateInPast(date, now) {
		return time.Time{}, "", ErrInvalidDate
	}

	return date, startTime, nil
}

// validateAddress проверяет обязательные поля адреса
func validateAddress(addr Address) error {
	trimmed := Address{
		Line1: strings.TrimSpace(addr.Line1),
		City:  strings.TrimSpace(addr.City),
		State: strings.TrimSpace(addr.State),
		Zip:   strings.TrimSpace(addr.Zip),
	}

	if err := validate.Struct(trimmed); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			missing := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				missing = append(missing, fe.Field())
			}
			return fmt.Errorf("%w: missing %s", ErrMissingAddress, strings.Join(missing, ", "))
		}
		return fmt.Errorf("%w: %v", ErrMissingAddress, err)
	}

	return nil
}

// validateSlotOffered проверяет, что время входит в сетку слотов провайдера и ещё не прошло
func validateSlotOffered(availability domain.ProviderAvailability, date time.Time, startTime types.TimeString, now time.Time) error {
	offered := false
	for _, slot := range domain.CandidateSlots(availability) {
		if slot == startTime {
			offered = true
			break
		}
	}
	if !offered {
		return fmt.Errorf("%w: %s", ErrSlotNotOffered, startTime)
	}

	if isSameDay(date, now) && !startTime.IsAfter(types.NewTimeString(now)) {
		return fmt.Errorf("%w: slot %s has already started", ErrInvalidDate, startTime)
	}

	return nil
}

func toDomainAddress(addr Address) domain.Address {
	return domain.Address{
		Line1: strings.TrimSpace(addr.Line1),
		Line2: addr.Line2,
		City:  strings.TrimSpace(addr.City),
		State: strings.TrimSpace(addr.State),
		Zip:   strings.TrimSpace(addr.Zip),
		Notes: addr.Notes,
	}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dy, dm, dd := date.Date()
	return time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC).Before(today)
}
