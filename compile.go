package datefmt

import (
	"fmt"

	"github.com/jlafont/go-datefmt/internal/spec"
)

// sequences holds the compiled directive sequence for every pattern, built
// once at init and never written afterwards. Lookup is an array index, so
// there is no per-call compilation and no cache to synchronize.
var sequences [patternCount][]spec.Directive

func init() {
	for p := Pattern(0); p < patternCount; p++ {
		sequences[p] = compile(p)
	}
}

// compile maps a pattern to its directive sequence. Every catalog value has
// an explicit case; reaching the default branch means a pattern was added to
// the catalog without a mapping, which is a defect in this package, not a
// runtime condition.
func compile(p Pattern) []spec.Directive {
	colon := spec.Lit(":")
	dash := spec.Lit("-")
	space := spec.Lit(" ")
	commaSpace := spec.Lit(", ")
	dot := spec.Lit(".")

	switch p {
	case TimeHHMM:
		return []spec.Directive{
			spec.Num(spec.FieldHour12), colon, spec.Num(spec.FieldMinute),
		}
	case TimeHHMM24:
		return []spec.Directive{
			spec.Num(spec.FieldHour24), colon, spec.Num(spec.FieldMinute),
		}
	case TimeHHMMSS:
		return []spec.Directive{
			spec.Num(spec.FieldHour12), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
		}
	case TimeHHMMSS24:
		return []spec.Directive{
			spec.Num(spec.FieldHour24), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
		}
	case Time12:
		return []spec.Directive{
			spec.Num(spec.FieldHour12), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
			space, spec.Marker(),
		}
	case Time24:
		return []spec.Directive{
			spec.Num(spec.FieldHour24), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
		}
	case ShortDate:
		return []spec.Directive{
			spec.Num(spec.FieldDay), colon, spec.Num(spec.FieldMonth), colon, spec.Num(spec.FieldYear4),
		}
	case LongDate:
		return []spec.Directive{
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldDay), commaSpace, spec.Num(spec.FieldYear4),
		}
	case ShortDateTime:
		return []spec.Directive{
			spec.Num(spec.FieldDay), colon, spec.Num(spec.FieldMonth), colon, spec.Num(spec.FieldYear4),
			space,
			spec.Num(spec.FieldHour12), colon, spec.Num(spec.FieldMinute),
		}
	case ShortDateTime24:
		return []spec.Directive{
			spec.Num(spec.FieldDay), colon, spec.Num(spec.FieldMonth), colon, spec.Num(spec.FieldYear4),
			space,
			spec.Num(spec.FieldHour24), colon, spec.Num(spec.FieldMinute),
		}
	case LongDateTime:
		return []spec.Directive{
			spec.Name(spec.FieldWeekdayName), commaSpace,
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldDay), commaSpace, spec.Num(spec.FieldYear4),
			space,
			spec.Num(spec.FieldHour12), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
			space, spec.Marker(),
		}
	case LongDateTime24:
		return []spec.Directive{
			spec.Name(spec.FieldWeekdayName), commaSpace,
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldDay), commaSpace, spec.Num(spec.FieldYear4),
			space,
			spec.Num(spec.FieldHour24), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
		}
	case LongDateTimeMillis:
		return []spec.Directive{
			spec.Name(spec.FieldWeekdayName), commaSpace,
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldDay), commaSpace, spec.Num(spec.FieldYear4),
			space,
			spec.Num(spec.FieldHour12), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
			dot, spec.Num(spec.FieldMillis),
			space, spec.Marker(),
		}
	case LongDateTimeMillis24:
		return []spec.Directive{
			spec.Name(spec.FieldWeekdayName), commaSpace,
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldDay), commaSpace, spec.Num(spec.FieldYear4),
			space,
			spec.Num(spec.FieldHour24), colon, spec.Num(spec.FieldMinute), colon, spec.Num(spec.FieldSecond),
			dot, spec.Num(spec.FieldMillis),
		}
	case FileName:
		return []spec.Directive{
			spec.Num(spec.FieldDay), dash, spec.Num(spec.FieldMonth), dash, spec.Num(spec.FieldYear4),
			space,
			spec.Num(spec.FieldHour24), dash, spec.Num(spec.FieldMinute), dash, spec.Num(spec.FieldSecond),
		}
	case DayOnly:
		return []spec.Directive{spec.Name(spec.FieldWeekdayName)}
	case MonthOnly:
		return []spec.Directive{spec.Name(spec.FieldMonthName)}
	case YearOnly:
		return []spec.Directive{spec.Num(spec.FieldYear4)}
	case DayOfYear:
		return []spec.Directive{spec.Num(spec.FieldDayOfYear)}
	case DayOfMonth:
		return []spec.Directive{spec.Num(spec.FieldDay)}
	case MonthOfYear:
		return []spec.Directive{spec.Num(spec.FieldMonth)}
	case MonthDay:
		return []spec.Directive{
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldDay),
		}
	case MonthYear:
		return []spec.Directive{
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldYear4),
		}
	case ShortMonthYear:
		return []spec.Directive{
			spec.Name(spec.FieldMonthName), space, spec.Num(spec.FieldYear2),
		}
	case TimestampCompact:
		return []spec.Directive{
			spec.Num(spec.FieldYear4), spec.Num(spec.FieldMonth), spec.Num(spec.FieldDay),
			spec.Num(spec.FieldHour24), spec.Num(spec.FieldMinute), spec.Num(spec.FieldSecond),
		}
	default:
		panic(fmt.Sprintf("pattern %d has no directive mapping", int(p)))
	}
}
