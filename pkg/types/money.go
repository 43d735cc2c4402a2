package types

import (
	"fmt"
	"math"
)

// Money денежная сумма в центах
type Money int64

// MoneyFromFloat переводит сумму в валютных единицах в центы с округлением до двух знаков
func MoneyFromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Float возвращает сумму в валютных единицах
func (m Money) Float() float64 {
	return float64(m) / 100
}

// IsNegative true, если сумма меньше нуля
func (m Money) IsNegative() bool {
	return m < 0
}

// String форматирует сумму с двумя знаками после точки ("12.50")
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
