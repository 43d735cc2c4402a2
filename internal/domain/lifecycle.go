package domain

// BookingEvent внешнее событие, двигающее жизненный цикл бронирования
type BookingEvent string

const (
	EventPaymentSucceeded BookingEvent = "payment_succeeded"
	EventPaymentFailed    BookingEvent = "payment_failed"
	EventCancel           BookingEvent = "cancel"
	EventComplete         BookingEvent = "complete"
)

// IsValid returns true if the event is known
func (e BookingEvent) IsValid() bool {
	switch e {
	case EventPaymentSucceeded, EventPaymentFailed, EventCancel, EventComplete:
		return true
	}
	return false
}

// LifecycleState пара (status, paymentStatus)
type LifecycleState struct {
	Status        BookingStatus
	PaymentStatus PaymentStatus
}

// Transition результат применения события
type Transition struct {
	From LifecycleState
	To   LifecycleState
	NoOp bool // состояние не изменилось
}

// ApplyEvent вычисляет новое состояние бронирования.
//
//	pending/pending   --payment_succeeded--> confirmed/paid
//	pending/pending   --payment_failed-----> payment_failed/failed
//	pending/*         --cancel-------------> cancelled/*
//	confirmed/paid    --complete-----------> completed/paid
//	confirmed/paid    --cancel-------------> cancelled/paid
//
// Терминальные состояния (completed, cancelled, payment_failed) на любое событие
// отвечают NoOp. Повторный payment_succeeded для confirmed тоже NoOp.
func ApplyEvent(state LifecycleState, event BookingEvent) (Transition, error) {
	if !event.IsValid() {
		return Transition{}, ErrUnknownEvent
	}

	noop := Transition{From: state, To: state, NoOp: true}

	if state.Status.IsTerminal() {
		return noop, nil
	}

	to := state
	switch state.Status {
	case StatusPending:
		switch event {
		case EventPaymentSucceeded:
			to = LifecycleState{Status: StatusConfirmed, PaymentStatus: PaymentPaid}
		case EventPaymentFailed:
			to = LifecycleState{Status: StatusPaymentFailed, PaymentStatus: PaymentFailed}
		case EventCancel:
			to.Status = StatusCancelled
		default:
			return Transition{}, ErrInvalidTransition
		}

	case StatusConfirmed:
		switch event {
		case EventPaymentSucceeded:
			return noop, nil
		case EventComplete:
			to.Status = StatusCompleted
		case EventCancel:
			to.Status = StatusCancelled
		default:
			return Transition{}, ErrInvalidTransition
		}

	default:
		return Transition{}, ErrInvalidTransition
	}

	return Transition{From: state, To: to}, nil
}
