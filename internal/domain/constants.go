package domain

// Рабочее окно по умолчанию, если у провайдера оно некорректно
const (
	FallbackStartHour = 9
	FallbackEndHour   = 17
)

const (
	MinHour = 0
	MaxHour = 23

	SlotStepMinutes      = 30
	DefaultDurationHours = 1.0
)

// DefaultSlotHours часы канонического набора слотов (9 AM - 4 PM),
// который отдаётся, если генерация вернула пустой список
var DefaultSlotHours = []int{9, 10, 11, 12, 13, 14, 15, 16}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotHoldingStatuses статусы, удерживающие слот (provider, date, time).
// Совпадает с условием уникального индекса в БД.
var SlotHoldingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, освобождающие слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusPaymentFailed,
}

// ActiveStatuses статусы, время которых скрывается из доступных слотов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
