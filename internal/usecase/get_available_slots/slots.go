package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// dropPastSlots для сегодняшней даты убирает слоты, которые уже начались
func dropPastSlots(slots []types.TimeString, date, now time.Time) []types.TimeString {
	if !isSameDay(date, now) {
		return slots
	}

	current := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if s.IsAfter(current) {
			upcoming = append(upcoming, s)
		}
	}
	return upcoming
}

// describeSlots добавляет к временам начала время окончания и признак переработки
func describeSlots(starts []types.TimeString, durationMinutes int, window domain.ProviderAvailability) []Slot {
	endOfWindow := window.EndHour * 60

	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		slot := Slot{StartTime: start}

		startMinutes, err := start.Minutes()
		if err != nil {
			continue
		}

		end, err := start.AddMinutes(durationMinutes)
		if err == nil {
			slot.EndTime = end
		}
		slot.MayIncurExtraCharges = startMinutes+durationMinutes > endOfWindow

		slots = append(slots, slot)
	}

	return slots
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
