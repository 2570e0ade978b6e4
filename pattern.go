// Package datefmt renders calendar timestamps as human-readable strings and
// parses those strings back, driven by a closed catalog of named patterns.
//
// Every pattern compiles to a fixed sequence of field directives; the same
// sequence drives rendering and parsing, so any pattern with full field
// resolution round-trips. All operations are pure and safe for concurrent
// use. Conversions between epoch milliseconds and calendar fields use the
// host's local time zone; callers that need a stable zone should convert
// through [Calendar] themselves.
package datefmt

import "fmt"

// Pattern selects one display format from the closed catalog. The set is
// fixed: there is no runtime registration and no free-form format string.
type Pattern int

const (
	// TimeHHMM is "hh:mm" on a 12-hour clock, without a half-day marker.
	TimeHHMM Pattern = iota
	// TimeHHMM24 is "HH:mm" on a 24-hour clock.
	TimeHHMM24
	// TimeHHMMSS is "hh:mm:ss" on a 12-hour clock, without a marker.
	TimeHHMMSS
	// TimeHHMMSS24 is "HH:mm:ss" on a 24-hour clock.
	TimeHHMMSS24
	// Time12 is "hh:mm:ss AM" / "hh:mm:ss PM".
	Time12
	// Time24 is "HH:mm:ss".
	Time24
	// ShortDate is "dd:MM:yyyy".
	ShortDate
	// LongDate is "Dec 09, 2000".
	LongDate
	// ShortDateTime is ShortDate plus "hh:mm" (12-hour, no marker).
	ShortDateTime
	// ShortDateTime24 is ShortDate plus "HH:mm".
	ShortDateTime24
	// LongDateTime is "Sat, Dec 09, 2000 07:30:45 PM".
	LongDateTime
	// LongDateTime24 is "Sat, Dec 09, 2000 19:30:45".
	LongDateTime24
	// LongDateTimeMillis is LongDateTime with a 3-digit fraction:
	// "Sat, Dec 09, 2000 07:30:45.123 PM".
	LongDateTimeMillis
	// LongDateTimeMillis24 is "Sat, Dec 09, 2000 19:30:45.123".
	LongDateTimeMillis24
	// FileName is "dd-MM-yyyy HH-mm-ss", safe for use in file names.
	FileName
	// DayOnly is the weekday abbreviation, e.g. "Sat".
	DayOnly
	// MonthOnly is the month abbreviation, e.g. "Dec".
	MonthOnly
	// YearOnly is the 4-digit year.
	YearOnly
	// DayOfYear is the 3-digit ordinal day of the year, "001".."366".
	DayOfYear
	// DayOfMonth is the 2-digit day of the month.
	DayOfMonth
	// MonthOfYear is the 2-digit month number.
	MonthOfYear
	// MonthDay is "Dec 09".
	MonthDay
	// MonthYear is "Dec 2000".
	MonthYear
	// ShortMonthYear is "Dec 00", with the 2-digit year read back through a
	// fixed 1960-based window (60-99 -> 19xx, 00-59 -> 20xx).
	ShortMonthYear
	// TimestampCompact is "yyyyMMddHHmmss" with no separators.
	TimestampCompact

	patternCount
)

var patternNames = [patternCount]string{
	TimeHHMM:             "TIME_HH_MM",
	TimeHHMM24:           "TIME_HH_MM_24",
	TimeHHMMSS:           "TIME_HH_MM_SS",
	TimeHHMMSS24:         "TIME_HH_MM_SS_24",
	Time12:               "TIME_12",
	Time24:               "TIME_24",
	ShortDate:            "SHORT_DATE",
	LongDate:             "LONG_DATE",
	ShortDateTime:        "SHORT_DATE_TIME",
	ShortDateTime24:      "SHORT_DATE_TIME_24",
	LongDateTime:         "LONG_DATE_TIME",
	LongDateTime24:       "LONG_DATE_TIME_24",
	LongDateTimeMillis:   "LONG_DATE_TIME_MILLIS",
	LongDateTimeMillis24: "LONG_DATE_TIME_MILLIS_24",
	FileName:             "FILE_NAME",
	DayOnly:              "DAY_ONLY",
	MonthOnly:            "MONTH_ONLY",
	YearOnly:             "YEAR_ONLY",
	DayOfYear:            "DAY_OF_YEAR",
	DayOfMonth:           "DAY_OF_MONTH",
	MonthOfYear:          "MONTH_OF_YEAR",
	MonthDay:             "MONTH_DAY",
	MonthYear:            "MONTH_YEAR",
	ShortMonthYear:       "SHORT_MONTH_YEAR",
	TimestampCompact:     "TIMESTAMP_COMPACT",
}

// String returns the pattern's canonical identifier, e.g. "TIME_HH_MM".
func (p Pattern) String() string {
	if p < 0 || p >= patternCount {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}

	return patternNames[p]
}

// Patterns returns every pattern in the catalog, in declaration order.
func Patterns() []Pattern {
	all := make([]Pattern, patternCount)
	for i := range all {
		all[i] = Pattern(i)
	}

	return all
}
