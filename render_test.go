package datefmt

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// reference is 2000-12-09 19:30:45.123, a Saturday (day 344 of a leap year).
var reference = Calendar{
	Year: 2000, Month: 12, Day: 9,
	Hour: 19, Minute: 30, Second: 45, Millis: 123,
}

func TestFormat(t *testing.T) {
	cases := []struct {
		pattern  Pattern
		expected string
	}{
		{TimeHHMM, "07:30"},
		{TimeHHMM24, "19:30"},
		{TimeHHMMSS, "07:30:45"},
		{TimeHHMMSS24, "19:30:45"},
		{Time12, "07:30:45 PM"},
		{Time24, "19:30:45"},
		{ShortDate, "09:12:2000"},
		{LongDate, "Dec 09, 2000"},
		{ShortDateTime, "09:12:2000 07:30"},
		{ShortDateTime24, "09:12:2000 19:30"},
		{LongDateTime, "Sat, Dec 09, 2000 07:30:45 PM"},
		{LongDateTime24, "Sat, Dec 09, 2000 19:30:45"},
		{LongDateTimeMillis, "Sat, Dec 09, 2000 07:30:45.123 PM"},
		{LongDateTimeMillis24, "Sat, Dec 09, 2000 19:30:45.123"},
		{FileName, "09-12-2000 19-30-45"},
		{DayOnly, "Sat"},
		{MonthOnly, "Dec"},
		{YearOnly, "2000"},
		{DayOfYear, "344"},
		{DayOfMonth, "09"},
		{MonthOfYear, "12"},
		{MonthDay, "Dec 09"},
		{MonthYear, "Dec 2000"},
		{ShortMonthYear, "Dec 00"},
		{TimestampCompact, "20001209193045"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.pattern.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, Format(reference, c.pattern))
		})
	}
}

func TestFormatMillis(t *testing.T) {
	// Instants are built through the local zone, so the expected wall-clock
	// output is the same regardless of where the test runs.
	ms := time.Date(2000, 12, 9, 19, 30, 45, 0, time.Local).UnixMilli()

	cases := []struct {
		pattern  Pattern
		expected string
	}{
		{ShortDate, "09:12:2000"},
		{Time24, "19:30:45"},
		{FileName, "09-12-2000 19-30-45"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.pattern.String(), func(t *testing.T) {
			assert.Equal(t, c.expected, FormatMillis(ms, c.pattern))
		})
	}

	morning := time.Date(2000, 12, 9, 7, 30, 45, 0, time.Local).UnixMilli()
	assert.Equal(t, "07:30:45 AM", FormatMillis(morning, Time12))
}

func TestHour12ConversionLaw(t *testing.T) {
	for h := 0; h <= 23; h++ {
		expected := h
		switch {
		case h == 0 || h == 12:
			expected = 12
		case h > 12:
			expected = h - 12
		}

		assert.Equal(t, expected, hour12(h), "hour %d", h)
	}
}

func TestFormatFixedWidths(t *testing.T) {
	// Single-digit fields must keep their declared width for every value
	// in range.
	for h := 0; h <= 23; h++ {
		c := Calendar{Year: 2001, Month: 1, Day: 1, Hour: h}
		assert.Len(t, Format(c, Time24), 8, "hour %d", h)
		assert.Len(t, Format(c, Time12), 11, "hour %d", h)
	}

	for m := 1; m <= 12; m++ {
		c := Calendar{Year: 2001, Month: m, Day: 1}
		assert.Len(t, Format(c, ShortDate), 10, "month %d", m)
		assert.Len(t, Format(c, TimestampCompact), 14, "month %d", m)
	}

	c := Calendar{Year: 2001, Month: 1, Day: 1}
	assert.Equal(t, "001", Format(c, DayOfYear))
	assert.Equal(t, "2001", Format(c, YearOnly))

	c.Millis = 7
	assert.Equal(t, "Mon, Jan 01, 2001 00:00:00.007", Format(c, LongDateTimeMillis24))
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		name     string
		ms       int64
		pattern  Pattern
		expected string
	}{
		{"ninety minutes", 5_400_000, Time24, "01:30:00"},
		{"midnight", 0, Time24, "00:00:00"},
		{"afternoon", 19*3_600_000 + 30*60_000 + 45_000, Time24, "19:30:45"},
		{"with marker", 19*3_600_000 + 30*60_000 + 45_000, Time12, "07:30:45 PM"},
		{"wraps past a day", 25 * 3_600_000, Time24, "01:00:00"},
		{"sub-second", 1_234, TimeHHMMSS24, "00:00:01"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, FormatElapsed(c.ms, c.pattern))
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(9, 5, 0, 0, TimeHHMM24))
	assert.Equal(t, "12:00:00 PM", FormatClock(12, 0, 0, 0, Time12))
	assert.Equal(t, "12:00:00 AM", FormatClock(0, 0, 0, 0, Time12))
}

func TestFormatWeekdayNames(t *testing.T) {
	// 2024-01-01 is a Monday; walk a whole week.
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	for i, name := range names {
		c := Calendar{Year: 2024, Month: 1, Day: 1 + i}
		assert.Equal(t, name, Format(c, DayOnly), fmt.Sprintf("2024-01-%02d", 1+i))
	}
}
