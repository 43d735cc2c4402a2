package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID string    // ID провайдера
	ServiceID  string    // ID объявления
	OptionID   *string   // Позиция каталога (опционально, влияет только на длительность)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date          time.Time
	ProviderID    string
	ServiceID     string
	OptionID      *string
	DurationHours float64
	Slots         []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // "9:00 AM"
	EndTime   types.TimeString // пусто, если конец выходит за сутки

	// Услуга заканчивается позже рабочего окна провайдера
	MayIncurExtraCharges bool
}
