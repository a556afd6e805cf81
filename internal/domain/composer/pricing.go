package composer

import (
	"time"

	"turipack/internal/domain/catalog"
)

// TaxRate is the Colombian IVA applied to the package subtotal.
const TaxRate = 0.19

// High season covers the December-January holidays and the June-July school
// break. Every other month prices at the low season rate.
func IsHighSeason(month time.Month) bool {
	switch month {
	case time.December, time.January, time.June, time.July:
		return true
	default:
		return false
	}
}

// PricePerPerson returns the per-person price of a service on a given date.
// Without a date the base price applies even when the service carries
// seasonal rates; seasonal pricing needs a concrete calendar month.
func PricePerPerson(svc *catalog.Service, date *time.Time) float64 {
	price := float64(svc.BasePrice())

	rates := svc.SeasonalRates()
	if rates == nil || date == nil {
		return price
	}

	if IsHighSeason(date.Month()) {
		return price * rates.HighSeasonFactor
	}
	return price * rates.LowSeasonFactor
}

// LineSubtotal prices one selected service line: per-person price times
// headcount, rounded to whole pesos. Rounding happens per line, before any
// summing, so module and package totals may differ by a peso from rounding
// the aggregate as a whole. That is the accepted behavior.
func LineSubtotal(svc *catalog.Service, persons int, date *time.Time) Money {
	return RoundPesos(PricePerPerson(svc, date) * float64(persons))
}

// Taxes computes IVA over a pre-tax subtotal.
func Taxes(subtotal Money) Money {
	return RoundPesos(float64(subtotal) * TaxRate)
}
