package units

import "fmt"

// ResolutionLabel buckets pixel dimensions into a common display label
// based on the vertical resolution.
func ResolutionLabel(width, height int) string {
	switch {
	case height >= 4320:
		return "8K"
	case height >= 2160:
		return "4K"
	case height >= 1440:
		return "1440p"
	case height >= 1080:
		return "1080p"
	case height >= 720:
		return "720p"
	case height >= 480:
		return "480p"
	case height >= 360:
		return "360p"
	case height >= 240:
		return "240p"
	default:
		return fmt.Sprintf("%dx%d", width, height)
	}
}

// AspectRatio reduces pixel dimensions to their simplest ratio, e.g.
// 1920x1080 -> "16:9".
func AspectRatio(width, height int) string {
	d := gcd(width, height)
	if d == 0 {
		return "0:0"
	}

	return fmt.Sprintf("%d:%d", width/d, height/d)
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}
