package dateformat

import "strings"

// directiveKind identifies what a compiled directive reads and writes. The
// kind is decided once at compile time so the parse and format loops are a
// plain switch over pre-resolved instructions.
type directiveKind int

const (
	dirLiteral directiveKind = iota // exact text, matched and emitted verbatim
	dirSpaces                       // a space run: at least width spaces on parse, exactly width on format
	dirOpenBox                      // matches 'T' or ' ', always emits 'T'
	dirOrdinalSuffix                // st/nd/rd/th, optional on parse
	dirYear4
	dirYear2
	dirMonth
	dirMonthStrict // [MM], exactly two digits
	dirMonthNameFull
	dirMonthNameShort
	dirDay
	dirDayStrict // [DD], exactly two digits
	dirWeekdayFull
	dirWeekdayShort
	dirHour
	dirMinute
	dirSecond
	dirFracSecond // fixed width, scale = microseconds per unit
	dirFracVar    // 'S', one to nine digits
	dirAmPm
	dirOffsetHHMM
	dirOffsetColon
	dirOffsetHH
	dirEpoch // scale = ticks per second
	dirZoneName
)

// directive is one compiled instruction of a format program.
type directive struct {
	kind  directiveKind
	text  string // literal text, or the spec token that produced the directive
	width int    // digit width for numeric fields; max digits for variable ones
	scale int64  // fraction: microseconds per unit; epoch: ticks per second
}

// OpenBox is the U+2423 sentinel that matches either 'T' or a space on
// parse and always formats as 'T'.
const OpenBox = "␣"

// literalPunctuation is the set of characters passed through verbatim.
const literalPunctuation = ":/-.,TZ()"

type vocabEntry struct {
	token string
	dir   directive
}

// vocabulary is the fixed spec token table, ordered so that every token is
// tried before its own prefixes (SSSSSS before SSSS before SS, YYYY before
// YY). The compiler matches greedily in this order; reordering entries
// changes the language.
var vocabulary = []vocabEntry{
	{"UNIX_TIMESTAMP", directive{kind: dirEpoch, width: 10, scale: 1}},
	{"UNIX_MILLISECONDS", directive{kind: dirEpoch, width: 13, scale: 1000}},
	{"UNIX_MICROSECONDS", directive{kind: dirEpoch, width: 16, scale: 1000000}},
	{"UNIX_NANOSECONDS", directive{kind: dirEpoch, width: 19, scale: 1000000000}},
	{"+HHMM", directive{kind: dirOffsetHHMM, width: 5}},
	{"+HH:MM", directive{kind: dirOffsetColon, width: 6}},
	{"+HH", directive{kind: dirOffsetHH, width: 3}},
	{"Dddddd", directive{kind: dirWeekdayFull}},
	{"Ddddd", directive{kind: dirWeekdayFull}},
	{"Ddd", directive{kind: dirWeekdayShort}},
	{"[MM]", directive{kind: dirMonthStrict, width: 2}},
	{"[DD]", directive{kind: dirDayStrict, width: 2}},
	{"DD", directive{kind: dirDay, width: 2}},
	{"MMMMM", directive{kind: dirMonthNameFull}},
	{"MMM", directive{kind: dirMonthNameShort}},
	{"MM", directive{kind: dirMonth, width: 2}},
	{"YYYY", directive{kind: dirYear4, width: 4}},
	{"YY", directive{kind: dirYear2, width: 2}},
	{"hh", directive{kind: dirHour, width: 2}},
	{"mm", directive{kind: dirMinute, width: 2}},
	{"ss", directive{kind: dirSecond, width: 2}},
	{"SSSSSS", directive{kind: dirFracSecond, width: 6, scale: 1}},
	{"SSSS", directive{kind: dirFracSecond, width: 4, scale: 100}},
	{"SSS", directive{kind: dirFracSecond, width: 3, scale: 1000}},
	{"SS", directive{kind: dirFracSecond, width: 2, scale: 10000}},
	{"S", directive{kind: dirFracVar, width: 9}},
	{"AM", directive{kind: dirAmPm}},
	{"Am", directive{kind: dirAmPm}},
	{"am", directive{kind: dirAmPm}},
	{"PM", directive{kind: dirAmPm}},
	{"Pm", directive{kind: dirAmPm}},
	{"pm", directive{kind: dirAmPm}},
	{"of", directive{kind: dirLiteral, text: "of"}},
	{"st", directive{kind: dirOrdinalSuffix}},
}

// compileSpec tokenizes a format spec into its directive sequence. The scan
// is a single left-to-right pass taking the first vocabulary token matching
// at the cursor; anything left over must be the OPEN BOX sentinel, a space,
// a literal punctuation character or (with a resolver configured) a
// timezone placeholder token.
func compileSpec(spec string, resolver TimezoneResolver) ([]directive, error) {
	var program []directive
	i := 0
scan:
	for i < len(spec) {
		rest := spec[i:]
		for _, entry := range vocabulary {
			if strings.HasPrefix(rest, entry.token) {
				d := entry.dir
				d.text = entry.token
				program = append(program, d)
				i += len(entry.token)
				continue scan
			}
		}
		for _, token := range zoneSpecTokens {
			if strings.HasPrefix(rest, token) {
				if resolver == nil {
					return nil, NewSpecError(spec, token, "timezone-name directive requires a TimezoneResolver")
				}
				program = append(program, directive{kind: dirZoneName, text: token})
				i += len(token)
				continue scan
			}
		}
		if strings.HasPrefix(rest, OpenBox) {
			program = append(program, directive{kind: dirOpenBox, text: OpenBox})
			i += len(OpenBox)
			continue
		}
		c := spec[i]
		if c == ' ' {
			// A run of spec spaces is one directive: parsing accepts any run
			// at least that long, formatting reproduces the run exactly.
			n := 1
			for i+n < len(spec) && spec[i+n] == ' ' {
				n++
			}
			program = append(program, directive{kind: dirSpaces, text: spec[i : i+n], width: n})
			i += n
			continue
		}
		if strings.IndexByte(literalPunctuation, c) >= 0 {
			program = append(program, directive{kind: dirLiteral, text: string(c)})
			i++
			continue
		}
		return nil, NewSpecError(spec, rest, "unrecognized directive")
	}
	return program, nil
}

// startsWithDigit reports whether the directive consumes a digit as its
// first input character. Offsets start with a sign and so do not count.
func (d directive) startsWithDigit() bool {
	switch d.kind {
	case dirYear4, dirYear2, dirMonth, dirMonthStrict, dirDay, dirDayStrict,
		dirHour, dirMinute, dirSecond, dirFracSecond, dirFracVar, dirEpoch:
		return true
	}
	return false
}

// endsWithDigit reports whether the directive's last consumed input
// character is a digit.
func (d directive) endsWithDigit() bool {
	if d.startsWithDigit() {
		return true
	}
	switch d.kind {
	case dirOffsetHHMM, dirOffsetColon, dirOffsetHH:
		return true
	}
	return false
}

// tolerantCapable reports whether the directive may drop a leading zero
// when a separator isolates it from neighbouring digits. Fractions are
// excluded: a short fraction is a different value, not a missing zero.
func (d directive) tolerantCapable() bool {
	switch d.kind {
	case dirYear4, dirYear2, dirMonth, dirDay, dirHour, dirMinute, dirSecond:
		return true
	}
	return false
}
