package datefmt

import "time"

// Calendar is a timezone-naive decomposition of a date-time. Converting to
// or from an absolute instant applies the host's local zone offset at that
// moment, so the same epoch value can decompose differently across zone or
// DST changes; that is a documented property of the conversion, not of the
// formatting itself.
type Calendar struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int
	Second int
	Millis int // 0-999
}

// epochCalendar supplies the default for fields a pattern does not parse.
var epochCalendar = Calendar{Year: 1970, Month: 1, Day: 1}

// CalendarOf decomposes a time.Time into its wall-clock fields, as observed
// in the time's own location.
func CalendarOf(t time.Time) Calendar {
	return Calendar{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Millis: t.Nanosecond() / int(time.Millisecond),
	}
}

// CalendarFromMillis decomposes an epoch-milliseconds instant using the
// host's local zone.
func CalendarFromMillis(ms int64) Calendar {
	return CalendarOf(time.UnixMilli(ms))
}

// Time reconstructs the calendar as a time.Time in the host's local zone.
func (c Calendar) Time() time.Time {
	return time.Date(
		c.Year,
		time.Month(c.Month),
		c.Day,
		c.Hour,
		c.Minute,
		c.Second,
		c.Millis*int(time.Millisecond),
		time.Local,
	)
}

// UnixMillis converts the calendar to epoch milliseconds via the host's
// local zone.
func (c Calendar) UnixMillis() int64 {
	return c.Time().UnixMilli()
}

// weekday returns the Monday=1..Sunday=7 index of the calendar's date.
func (c Calendar) weekday() int {
	wd := int(c.Time().Weekday()) // Sunday=0
	if wd == 0 {
		return 7
	}

	return wd
}

// dayOfYear returns the 1-based ordinal day of the calendar's date.
func (c Calendar) dayOfYear() int {
	return c.Time().YearDay()
}
