package units

import (
	"math"
	"strconv"
	"strings"
)

var magnitudeSuffixes = []string{"", "K", "M", "B", "T", "Q"}

// FormatMagnitude shortens a numeric value with K/M/B/T/Q suffixes, keeping
// one decimal place and dropping it when it is zero: 1500 -> "1.5K",
// 2000000 -> "2M".
func FormatMagnitude(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	unit := 0
	for value >= 1000 && unit < len(magnitudeSuffixes)-1 {
		value /= 1000
		unit++
	}

	var s string
	if unit == 0 {
		s = strconv.FormatFloat(value, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(math.Round(value*10)/10, 'f', 1, 64)
		s = strings.TrimSuffix(s, ".0")
	}

	return sign + s + magnitudeSuffixes[unit]
}

// Percentage returns obtained as a percentage of total. A zero total yields
// zero rather than an infinity.
func Percentage(total, obtained float64) float64 {
	if total == 0 {
		return 0
	}

	return obtained / total * 100
}
