package spec

// NameWidth is the fixed length of every day and month abbreviation. Both
// tables use 3-letter names, which keeps name directives fixed-width like
// every other directive in the grammar.
const NameWidth = 3

// Half-day marker literals.
const (
	MarkerAM = "AM"
	MarkerPM = "PM"
)

// WeekdayNames maps a weekday index (Monday=1 through Sunday=7) to its
// abbreviation. Index 0 is unused. Initialized once, never written.
var WeekdayNames = [8]string{
	"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

// MonthNames maps a month number (1-12) to its abbreviation. Index 0 is
// unused. Initialized once, never written.
var MonthNames = [13]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekdayIndex returns the Monday=1..Sunday=7 index for an abbreviation,
// matched case-sensitively.
func WeekdayIndex(name string) (int, bool) {
	for i := 1; i < len(WeekdayNames); i++ {
		if WeekdayNames[i] == name {
			return i, true
		}
	}

	return 0, false
}

// MonthIndex returns the 1-12 month number for an abbreviation, matched
// case-sensitively.
func MonthIndex(name string) (int, bool) {
	for i := 1; i < len(MonthNames); i++ {
		if MonthNames[i] == name {
			return i, true
		}
	}

	return 0, false
}
