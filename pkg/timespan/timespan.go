// Package timespan renders date ranges the way the résumé site displays
// them: approximate month buckets of 28 days and year buckets of 365 days.
package timespan

import (
	"fmt"
	"time"
)

// Present is what an open-ended range shows as its end date.
const Present = "Present"

const (
	daysPerMonth = 28
	daysPerYear  = 365
)

func months(days int) string {
	if days/daysPerMonth == 0 {
		return ""
	}
	plural := ""
	if days > 2*daysPerMonth {
		plural = "s"
	}
	return fmt.Sprintf("%d month%s", days/daysPerMonth, plural)
}

// Span returns a human readable duration for the given range. A nil end
// date means the range is still running and is measured up to today.
//
// The month count is days/28, not a calendar month count, so the output
// can carry a trailing empty month segment (e.g. "2 years "). That is
// the historical format and is kept as is.
func Span(start time.Time, end *time.Time) string {
	until := time.Now()
	if end != nil {
		until = *end
	}
	days := int(until.Sub(start).Hours() / 24)

	switch {
	case days < daysPerMonth:
		return "Less than a month"
	case days < daysPerYear:
		return months(days)
	default:
		years := days / daysPerYear
		plural := ""
		if years > 1 {
			plural = "s"
		}
		return fmt.Sprintf("%d year%s %s", years, plural, months(days%daysPerYear))
	}
}

// MonthYear formats a date as e.g. "Jan 2022".
func MonthYear(t time.Time) string {
	return t.Format("Jan 2006")
}

// MonthYearOrPresent formats an optional end date, falling back to
// "Present" when it is absent.
func MonthYearOrPresent(t *time.Time) string {
	if t == nil {
		return Present
	}
	return MonthYear(*t)
}
