package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DisplayTimeFormat формат времени для отображения и хранения ("9:00 AM")
	DisplayTimeFormat = "3:04 PM"
	// ClockTimeFormat 24-часовой формат, принимается на входе ("09:00")
	ClockTimeFormat = "15:04"

	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в каноническом формате отображения ("9:00 AM")
// Равенство строк двух TimeString эквивалентно равенству времени
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(DisplayTimeFormat))
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return NewTimeString(t), nil
}

// NewTimeStringFromString парсит строку в формате "9:00 AM" или "09:00"
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidTimeString
	}

	upper := strings.ToUpper(s)
	if t, err := time.Parse(DisplayTimeFormat, upper); err == nil {
		return NewTimeString(t), nil
	}
	// "9:00AM" без пробела
	if t, err := time.Parse("3:04PM", upper); err == nil {
		return NewTimeString(t), nil
	}
	if t, err := time.Parse(ClockTimeFormat, s); err == nil {
		return NewTimeString(t), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// Minutes возвращает количество минут с начала суток
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(DisplayTimeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore true, если ts раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter true, если ts позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(ts)
}

// Validate проверяет, что строка в каноническом формате
func (ts TimeString) Validate() error {
	_, err := ts.Minutes()
	return err
}

// IsZero true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

func (ts TimeString) String() string {
	return string(ts)
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan реализует sql.Scanner
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*ts = TimeString(v)
	case []byte:
		*ts = TimeString(v)
	case nil:
		*ts = ""
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
	return nil
}
