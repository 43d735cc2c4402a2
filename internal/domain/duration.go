package domain

import (
	"strings"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// timeLimitHours распознаваемые значения длительности услуги
var timeLimitHours = map[string]float64{
	"1 hour":    1,
	"1.5 hours": 1.5,
	"2 hours":   2,
	"2.5 hours": 2.5,
	"3 hours":   3,
}

// ServiceOption длительность и базовая цена позиции каталога
type ServiceOption struct {
	DurationHours   float64
	DurationMinutes int
	Rate            types.Money
}

// ResolveServiceOption вычисляет длительность и ставку позиции каталога.
// Нераспознанная или пустая длительность считается равной одному часу.
func ResolveServiceOption(entry ServiceCatalogEntry) ServiceOption {
	hours, ok := timeLimitHours[strings.ToLower(strings.TrimSpace(entry.TimeLimit))]
	if !ok {
		hours = DefaultDurationHours
	}

	return ServiceOption{
		DurationHours:   hours,
		DurationMinutes: int(hours * 60),
		Rate:            entry.Rate,
	}
}
