package composer

import (
	"errors"
	"math"
	"time"
)

// Money is an amount of whole Colombian pesos. COP has no minor unit in this
// domain, so no cents field exists anywhere.
type Money int64

func (m Money) Int64() int64 {
	return int64(m)
}

func (m Money) Add(other Money) Money {
	return m + other
}

// RoundPesos rounds to the nearest whole peso, halves away from zero. Applied
// once per line item; module and package totals sum already-rounded lines.
func RoundPesos(v float64) Money {
	return Money(math.Round(v))
}

// DateRange is the package-level stay window. It is informational and fully
// independent of per-service dates.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

var ErrInvalidDateRange = errors.New("check-in must be before check-out")

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if !checkIn.Before(checkOut) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (d DateRange) CheckIn() time.Time  { return d.checkIn }
func (d DateRange) CheckOut() time.Time { return d.checkOut }

func (d DateRange) Nights() int {
	return int(d.checkOut.Sub(d.checkIn).Hours() / 24)
}
