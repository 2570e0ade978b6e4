package datefmt

import (
	"errors"
	"math"
)

// ErrDurationOverflow indicates that a duration does not fit in an int64
// count of milliseconds.
var ErrDurationOverflow = errors.New("duration overflows the representable millisecond range")

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// DurationMillis converts an hours/minutes/seconds triple to a total
// millisecond count. Each component may independently be negative or exceed
// its usual clock range; the only failure is arithmetic overflow, which is
// reported rather than wrapped.
func DurationMillis(hours, minutes, seconds int64) (int64, error) {
	h, ok := mulInt64(hours, millisPerHour)
	if !ok {
		return 0, ErrDurationOverflow
	}

	m, ok := mulInt64(minutes, millisPerMinute)
	if !ok {
		return 0, ErrDurationOverflow
	}

	s, ok := mulInt64(seconds, millisPerSecond)
	if !ok {
		return 0, ErrDurationOverflow
	}

	total, ok := addInt64(h, m)
	if !ok {
		return 0, ErrDurationOverflow
	}

	total, ok = addInt64(total, s)
	if !ok {
		return 0, ErrDurationOverflow
	}

	return total, nil
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, false
	}

	product := a * b
	if product/b != a {
		return 0, false
	}

	return product, true
}

func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}

	return a + b, true
}
