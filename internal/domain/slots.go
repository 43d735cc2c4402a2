package domain

import "github.com/m04kA/SMC-MarketplaceBooking/pkg/types"

var halfHourOffsets = []int{0, SlotStepMinutes}

// EffectiveWindow возвращает рабочее окно провайдера или окно по умолчанию (9-17), если оно некорректно
func EffectiveWindow(availability ProviderAvailability) ProviderAvailability {
	if availability.IsValid() {
		return availability
	}
	return ProviderAvailability{
		StartHour: FallbackStartHour,
		EndHour:   FallbackEndHour,
	}
}

// GenerateSlots генерирует времена начала с шагом полчаса.
// Для каждого часа h, у которого h+1 <= end, выдаются h:00 и h:30.
// Длительность услуги на плотность слотов не влияет.
func GenerateSlots(availability ProviderAvailability) []types.TimeString {
	window := EffectiveWindow(availability)

	slots := make([]types.TimeString, 0, (window.EndHour-window.StartHour)*len(halfHourOffsets))
	for hour := window.StartHour; hour+1 <= window.EndHour; hour++ {
		for _, offset := range halfHourOffsets {
			slot, err := types.NewTimeStringFromMinutes(hour*60 + offset)
			if err != nil {
				continue
			}
			slots = append(slots, slot)
		}
	}

	return slots
}

// DefaultSlots канонический набор из 8 часовых слотов (9 AM - 4 PM)
func DefaultSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, len(DefaultSlotHours))
	for _, hour := range DefaultSlotHours {
		slot, _ := types.NewTimeStringFromMinutes(hour * 60)
		slots = append(slots, slot)
	}
	return slots
}

// CandidateSlots слоты провайдера; если генерация вернула пусто, подставляется DefaultSlots
func CandidateSlots(availability ProviderAvailability) []types.TimeString {
	slots := GenerateSlots(availability)
	if len(slots) == 0 {
		return DefaultSlots()
	}
	return slots
}

// FilterAvailable убирает кандидатов, строка которых точно совпадает с занятым временем.
// Порядок кандидатов сохраняется.
func FilterAvailable(candidates, booked []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := taken[c]; !ok {
			available = append(available, c)
		}
	}

	return available
}
