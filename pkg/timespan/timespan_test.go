package timespan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func spanAfter(start time.Time, days int) string {
	end := start.AddDate(0, 0, days)
	return Span(start, &end)
}

func TestSpan_LessThanAMonth(t *testing.T) {
	start := date(2022, time.March, 1)

	assert.Equal(t, "Less than a month", spanAfter(start, 0))
	assert.Equal(t, "Less than a month", spanAfter(start, 27))
	assert.Equal(t, "1 month", spanAfter(start, 28))
}

func TestSpan_Months(t *testing.T) {
	start := date(2022, time.March, 1)

	assert.Equal(t, "1 month", spanAfter(start, 55))
	// pluralized only past 56 days
	assert.Equal(t, "2 months", spanAfter(start, 57))
	assert.Equal(t, "13 months", spanAfter(start, 364))
}

func TestSpan_YearsWithMonthRemainder(t *testing.T) {
	start := date(2018, time.January, 15)

	// 400 days => 1 year, remainder 35 days => 35/28 = 1 month
	assert.Equal(t, "1 year 1 month", spanAfter(start, 400))
	assert.Equal(t, "2 years 2 months", spanAfter(start, 2*365+60))
}

func TestSpan_TrailingEmptyMonthSegmentIsKept(t *testing.T) {
	start := date(2018, time.January, 15)

	// remainder under 28 days yields an empty month segment
	assert.Equal(t, "1 year ", spanAfter(start, 370))
}

func TestSpan_NilEndMeansToday(t *testing.T) {
	start := time.Now().AddDate(0, 0, -10)

	assert.Equal(t, "Less than a month", Span(start, nil))
}

func TestMonthYearOrPresent(t *testing.T) {
	d := date(2022, time.January, 3)

	assert.Equal(t, "Jan 2022", MonthYear(d))
	assert.Equal(t, "Jan 2022", MonthYearOrPresent(&d))
	assert.Equal(t, "Present", MonthYearOrPresent(nil))
}
