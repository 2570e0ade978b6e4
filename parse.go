package datefmt

import (
	"fmt"
	"time"

	"github.com/jlafont/go-datefmt/internal/spec"
)

// ParseError reports where and why an input string stopped matching its
// pattern's grammar.
type ParseError struct {
	// Pos is the byte offset at which matching failed.
	Pos int
	// Expected describes the directive that failed to match.
	Expected string
	// Found is the input remaining at Pos, empty if the input ran out.
	Found string
}

func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("parse error at %d: expected %s, found end of input", e.Pos, e.Expected)
	}

	return fmt.Sprintf("parse error at %d: expected %s, found %q", e.Pos, e.Expected, e.Found)
}

// fieldRanges bounds the values a numeric directive may parse. Digit-count
// matching alone would accept month 13 or minute 60; rejecting those here,
// plus the cross-field checks in resolve (day against the resolved month and
// year, day-of-year against the resolved year), keeps every parsed calendar
// in-range by construction.
var fieldRanges = map[spec.Field][2]int{
	spec.FieldYear4:     {0, 9999},
	spec.FieldYear2:     {0, 99},
	spec.FieldMonth:     {1, 12},
	spec.FieldDay:       {1, 31},
	spec.FieldHour24:    {0, 23},
	spec.FieldHour12:    {1, 12},
	spec.FieldMinute:    {0, 59},
	spec.FieldSecond:    {0, 59},
	spec.FieldMillis:    {0, 999},
	spec.FieldDayOfYear: {1, 366},
}

// parsedFields accumulates directive results before they are resolved into
// a calendar. A 12-hour hour cannot be finalized until the marker directive
// (if any) has been seen, and a day-of-year cannot be finalized until the
// year is known.
type parsedFields struct {
	values map[spec.Field]int
	// positions remembers where each field matched, so cross-field checks
	// in resolve can still report an offset.
	positions map[spec.Field]int
	pm        bool
	marked    bool
}

func (f *parsedFields) set(field spec.Field, value, pos int) {
	f.values[field] = value
	f.positions[field] = pos
}

func (f *parsedFields) get(field spec.Field) (int, bool) {
	v, ok := f.values[field]
	return v, ok
}

// Parse matches input against the pattern's directive sequence and returns
// the calendar it describes. Fields the pattern does not carry default to
// the epoch calendar (1970-01-01 00:00:00.000). Failures are reported as a
// *ParseError; input must match the grammar exactly, including trailing
// characters.
func Parse(input string, p Pattern) (Calendar, error) {
	fields := parsedFields{
		values:    make(map[spec.Field]int),
		positions: make(map[spec.Field]int),
	}
	pos := 0

	for _, d := range sequences[p] {
		n, err := consume(input, pos, d, &fields)
		if err != nil {
			return Calendar{}, err
		}

		pos += n
	}

	if pos != len(input) {
		return Calendar{}, &ParseError{Pos: pos, Expected: "end of input", Found: input[pos:]}
	}

	c, err := resolve(input, fields)
	if err != nil {
		return Calendar{}, err
	}

	return c, nil
}

// ParseMillis parses input and converts the result to epoch milliseconds
// via the host's local zone. On failure the returned instant is zero and
// the error is a *ParseError; zero is never used as an in-band failure
// signal.
func ParseMillis(input string, p Pattern) (int64, error) {
	c, err := Parse(input, p)
	if err != nil {
		return 0, err
	}

	return c.UnixMillis(), nil
}

// consume matches one directive at input[pos:], records any field value, and
// returns the number of bytes matched.
func consume(input string, pos int, d spec.Directive, fields *parsedFields) (int, error) {
	fail := func() *ParseError {
		return &ParseError{Pos: pos, Expected: d.Describe(), Found: input[pos:]}
	}

	switch d.Field {
	case spec.FieldLiteral:
		end := pos + len(d.Literal)
		if end > len(input) || input[pos:end] != d.Literal {
			return 0, fail()
		}

		return len(d.Literal), nil

	case spec.FieldMonthName:
		end := pos + spec.NameWidth
		if end > len(input) {
			return 0, fail()
		}

		m, ok := spec.MonthIndex(input[pos:end])
		if !ok {
			return 0, fail()
		}

		fields.set(spec.FieldMonth, m, pos)
		return spec.NameWidth, nil

	case spec.FieldWeekdayName:
		end := pos + spec.NameWidth
		if end > len(input) {
			return 0, fail()
		}

		// The name only has to be a known weekday; it does not constrain
		// the date fields.
		if _, ok := spec.WeekdayIndex(input[pos:end]); !ok {
			return 0, fail()
		}

		return spec.NameWidth, nil

	case spec.FieldMarker:
		end := pos + len(spec.MarkerAM)
		if end > len(input) {
			return 0, fail()
		}

		switch input[pos:end] {
		case spec.MarkerAM:
			fields.pm = false
		case spec.MarkerPM:
			fields.pm = true
		default:
			return 0, fail()
		}

		fields.marked = true
		return end - pos, nil

	default:
		v, ok := takeDigits(input, pos, d.Width)
		if !ok {
			return 0, fail()
		}

		bounds := fieldRanges[d.Field]
		if v < bounds[0] || v > bounds[1] {
			return 0, fail()
		}

		fields.set(d.Field, v, pos)
		return d.Width, nil
	}
}

// takeDigits parses exactly width ASCII digits at input[pos:]. Fewer digits,
// or any non-digit byte within the window, is a mismatch.
func takeDigits(input string, pos, width int) (int, bool) {
	if pos+width > len(input) {
		return 0, false
	}

	v := 0
	for i := pos; i < pos+width; i++ {
		ch := input[i]
		if ch < '0' || ch > '9' {
			return 0, false
		}

		v = v*10 + int(ch-'0')
	}

	return v, true
}

// resolve combines accumulated fields into a calendar, applying the 12-hour
// marker, the 2-digit year window, and day-of-year expansion. Fields that
// passed their per-directive range check can still be impossible together
// (Apr 31, or day 366 of a common year); those combinations fail here rather
// than normalize into a different date.
func resolve(input string, fields parsedFields) (Calendar, *ParseError) {
	c := epochCalendar

	if y, ok := fields.get(spec.FieldYear4); ok {
		c.Year = y
	} else if y, ok := fields.get(spec.FieldYear2); ok {
		// Fixed 1960-based window: 60-99 are 20th century, 00-59 are 21st.
		if y >= 60 {
			c.Year = 1900 + y
		} else {
			c.Year = 2000 + y
		}
	}

	if m, ok := fields.get(spec.FieldMonth); ok {
		c.Month = m
	}
	if d, ok := fields.get(spec.FieldDay); ok {
		if d > daysInMonth(c.Year, c.Month) {
			pos := fields.positions[spec.FieldDay]
			return Calendar{}, &ParseError{
				Pos:      pos,
				Expected: "day of month within the parsed month",
				Found:    input[pos:],
			}
		}

		c.Day = d
	}

	if h, ok := fields.get(spec.FieldHour24); ok {
		c.Hour = h
	} else if h, ok := fields.get(spec.FieldHour12); ok {
		// 12 o'clock is the zero of its half-day. Without a marker the
		// hour is taken as morning.
		c.Hour = h % 12
		if fields.marked && fields.pm {
			c.Hour += 12
		}
	}

	if m, ok := fields.get(spec.FieldMinute); ok {
		c.Minute = m
	}
	if s, ok := fields.get(spec.FieldSecond); ok {
		c.Second = s
	}
	if ms, ok := fields.get(spec.FieldMillis); ok {
		c.Millis = ms
	}

	if yd, ok := fields.get(spec.FieldDayOfYear); ok {
		if yd > daysInYear(c.Year) {
			pos := fields.positions[spec.FieldDayOfYear]
			return Calendar{}, &ParseError{
				Pos:      pos,
				Expected: "day of year within the parsed year",
				Found:    input[pos:],
			}
		}

		// time.Date normalizes an out-of-range day against January, which
		// turns an ordinal day into a month and day for the resolved year.
		t := time.Date(c.Year, time.January, yd, 0, 0, 0, 0, time.Local)
		c.Month = int(t.Month())
		c.Day = t.Day()
	}

	return c, nil
}

// daysInMonth counts the days of a month through time.Date's zeroth-day
// normalization.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
