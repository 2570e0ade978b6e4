package datefmt

import (
	"strings"

	"github.com/jlafont/go-datefmt/internal/spec"
)

// Format renders a calendar value with the given pattern. Rendering cannot
// fail: every field of an in-range calendar has a fixed-width textual form.
func Format(c Calendar, p Pattern) string {
	return renderSequence(c, sequences[p])
}

// FormatMillis renders an epoch-milliseconds instant, decomposed through the
// host's local zone.
func FormatMillis(ms int64, p Pattern) string {
	return Format(CalendarFromMillis(ms), p)
}

// FormatElapsed renders a duration since midnight, given in milliseconds, as
// a time of day. Durations of a day or more wrap modulo 24 hours so every
// field keeps its fixed width.
func FormatElapsed(ms int64, p Pattern) string {
	const dayMillis = 24 * 60 * 60 * 1000

	ms %= dayMillis
	if ms < 0 {
		ms += dayMillis
	}

	return FormatClock(
		int(ms/(60*60*1000)),
		int(ms/(60*1000))%60,
		int(ms/1000)%60,
		int(ms%1000),
		p,
	)
}

// FormatClock renders a bare time of day. The date fields of the underlying
// calendar default to the epoch date, so date-bearing patterns remain
// renderable.
func FormatClock(hour, minute, second, millis int, p Pattern) string {
	c := epochCalendar
	c.Hour = hour
	c.Minute = minute
	c.Second = second
	c.Millis = millis

	return Format(c, p)
}

// hour12 maps an hour-of-day to its 12-hour clock rendering: 0 and 12 both
// display as 12, 1-11 display as-is, 13-23 display as hour-12.
func hour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}

	return h
}

func renderSequence(c Calendar, seq []spec.Directive) string {
	var b strings.Builder

	for _, d := range seq {
		switch d.Field {
		case spec.FieldLiteral:
			b.WriteString(d.Literal)
		case spec.FieldYear4:
			writePadded(&b, c.Year, d.Width)
		case spec.FieldYear2:
			writePadded(&b, c.Year%100, d.Width)
		case spec.FieldMonth:
			writePadded(&b, c.Month, d.Width)
		case spec.FieldDay:
			writePadded(&b, c.Day, d.Width)
		case spec.FieldHour24:
			writePadded(&b, c.Hour, d.Width)
		case spec.FieldHour12:
			writePadded(&b, hour12(c.Hour), d.Width)
		case spec.FieldMinute:
			writePadded(&b, c.Minute, d.Width)
		case spec.FieldSecond:
			writePadded(&b, c.Second, d.Width)
		case spec.FieldMillis:
			writePadded(&b, c.Millis, d.Width)
		case spec.FieldDayOfYear:
			writePadded(&b, c.dayOfYear(), d.Width)
		case spec.FieldMonthName:
			b.WriteString(spec.MonthNames[c.Month])
		case spec.FieldWeekdayName:
			b.WriteString(spec.WeekdayNames[c.weekday()])
		case spec.FieldMarker:
			if c.Hour < 12 {
				b.WriteString(spec.MarkerAM)
			} else {
				b.WriteString(spec.MarkerPM)
			}
		}
	}

	return b.String()
}

// writePadded emits exactly width decimal digits, zero-padded on the left.
// Padding is done by hand so output is identical regardless of host locale.
func writePadded(b *strings.Builder, value, width int) {
	var digits [4]byte

	for i := width - 1; i >= 0; i-- {
		digits[i] = byte('0' + value%10)
		value /= 10
	}

	b.Write(digits[:width])
}
