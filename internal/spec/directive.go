// Package spec defines the closed data model of the formatting grammar: the
// directive field kinds with their fixed digit widths, and the static name
// tables referenced by name-lookup directives.
package spec

import "strconv"

// Field identifies what a directive renders or consumes.
type Field uint8

const (
	// FieldLiteral emits/expects a fixed run of characters
	FieldLiteral Field = iota

	// Zero-padded numeric fields. The digit width is fixed per directive;
	// rendering always emits exactly that many digits, and parsing demands
	// exactly that many.
	FieldYear4
	FieldYear2
	FieldMonth
	FieldDay
	FieldHour24
	FieldHour12
	FieldMinute
	FieldSecond
	FieldMillis
	FieldDayOfYear

	// Name-table fields: fixed 3-letter abbreviations from the tables in
	// names.go, matched case-sensitively on parse
	FieldMonthName
	FieldWeekdayName

	// FieldMarker is the half-day marker, rendered as "AM" or "PM". On
	// parse it supplies the flag that a 12-hour field is combined with.
	FieldMarker
)

// Directive is a single formatting instruction. A compiled pattern is an
// ordered slice of these; the same slice drives both rendering and parsing,
// so directive order and widths are the grammar.
type Directive struct {
	Field   Field
	Width   int    // digit count for numeric fields; 0 otherwise
	Literal string // literal text; set only for FieldLiteral
}

// Lit returns a literal directive for the given text.
func Lit(text string) Directive {
	return Directive{Field: FieldLiteral, Literal: text}
}

// Num returns a zero-padded numeric directive. The width for each field kind
// is fixed by the grammar and must not vary between patterns.
func Num(field Field) Directive {
	return Directive{Field: field, Width: numericWidths[field]}
}

// Name returns a name-table directive.
func Name(field Field) Directive {
	return Directive{Field: field, Width: NameWidth}
}

// Marker returns the AM/PM marker directive.
func Marker() Directive {
	return Directive{Field: FieldMarker, Width: len(MarkerAM)}
}

var numericWidths = map[Field]int{
	FieldYear4:     4,
	FieldYear2:     2,
	FieldMonth:     2,
	FieldDay:       2,
	FieldHour24:    2,
	FieldHour12:    2,
	FieldMinute:    2,
	FieldSecond:    2,
	FieldMillis:    3,
	FieldDayOfYear: 3,
}

var fieldDescriptions = map[Field]string{
	FieldYear4:       "4-digit year",
	FieldYear2:       "2-digit year",
	FieldMonth:       "2-digit month",
	FieldDay:         "2-digit day of month",
	FieldHour24:      "2-digit hour (24-hour)",
	FieldHour12:      "2-digit hour (12-hour)",
	FieldMinute:      "2-digit minute",
	FieldSecond:      "2-digit second",
	FieldMillis:      "3-digit millisecond",
	FieldDayOfYear:   "3-digit day of year",
	FieldMonthName:   "month name",
	FieldWeekdayName: "day name",
	FieldMarker:      `"AM" or "PM"`,
}

// Describe returns a human-readable description of the directive, used in
// parse failure messages.
func (d Directive) Describe() string {
	if d.Field == FieldLiteral {
		return "literal " + strconv.Quote(d.Literal)
	}

	return fieldDescriptions[d.Field]
}
