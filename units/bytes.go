// Package units holds small display helpers that sit beside the pattern
// engine: byte sizes, magnitude shortening, percentages, color hex codecs,
// and screen-resolution labels. None of them interact with the pattern
// pipeline.
package units

import "strconv"

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders a byte count with base-1024 units and one decimal
// place, e.g. "1.5 MB". Counts below 1 KB render as whole bytes.
func FormatBytes(n int64) string {
	if n < 1024 && n > -1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	sign := ""
	f := float64(n)
	if f < 0 {
		sign = "-"
		f = -f
	}

	unit := 0
	for f >= 1024 && unit < len(byteUnits)-1 {
		f /= 1024
		unit++
	}

	return sign + strconv.FormatFloat(f, 'f', 1, 64) + " " + byteUnits[unit]
}
