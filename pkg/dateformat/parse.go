package dateformat

import (
	"strconv"
	"strings"
	"time"
)

// parseState is the per-call working state of a parse: the read cursor and
// the accumulated field values. It lives on the stack of a single Parse
// call; the compiled format is never touched.
type parseState struct {
	in  string
	pos int

	year, month, day     int
	hour, minute, second int
	micro                int
	haveYear, haveMonth  bool
	haveDay, haveHour    bool

	isPM, haveAmPm bool

	offset     int
	haveOffset bool
	zone       string
}

func (st *parseState) fail(spec, reason string) *ParseError {
	return NewParseError(st.in, spec, st.pos, reason, nil)
}

// Parse executes the compiled program against text. The cursor must
// consume the whole input; trailing characters are an error. The returned
// Date carries a UTC offset exactly when an offset or timezone directive
// matched.
func (f *DateFormat) Parse(text string) (Date, error) {
	st := parseState{in: text}
	for i, d := range f.directives {
		if err := f.apply(&st, d, f.strict[i]); err != nil {
			return Date{}, err
		}
	}
	if st.pos != len(text) {
		return Date{}, st.fail(f.spec, "unconsumed trailing input")
	}
	return f.reduce(&st)
}

func (f *DateFormat) apply(st *parseState, d directive, strict bool) error {
	switch d.kind {
	case dirLiteral:
		if !strings.HasPrefix(st.in[st.pos:], d.text) {
			return st.fail(f.spec, "expected "+strconv.Quote(d.text))
		}
		st.pos += len(d.text)

	case dirSpaces:
		n := 0
		for st.pos+n < len(st.in) && st.in[st.pos+n] == ' ' {
			n++
		}
		if n < d.width {
			return st.fail(f.spec, "expected a space")
		}
		st.pos += n

	case dirOpenBox:
		if st.pos >= len(st.in) || (st.in[st.pos] != 'T' && st.in[st.pos] != ' ') {
			return st.fail(f.spec, "expected 'T' or a space")
		}
		st.pos++

	case dirOrdinalSuffix:
		// Optional on parse; formatting always emits the correct suffix.
		if rest := st.in[st.pos:]; len(rest) >= 2 {
			switch strings.ToLower(rest[:2]) {
			case "st", "nd", "rd", "th":
				st.pos += 2
			}
		}

	case dirYear4, dirYear2:
		v, err := f.digits(st, d.width, strict)
		if err != nil {
			return err
		}
		if d.kind == dirYear2 {
			// Two-digit years pivot at 70, matching the original cutoff.
			if v > 69 {
				v += 1900
			} else {
				v += 2000
			}
		}
		st.year, st.haveYear = v, true

	case dirMonth, dirMonthStrict:
		v, err := f.digits(st, d.width, strict || d.kind == dirMonthStrict)
		if err != nil {
			return err
		}
		if v > 12 {
			return st.fail(f.spec, "month out of range")
		}
		st.month, st.haveMonth = v, true

	case dirDay, dirDayStrict:
		v, err := f.digits(st, d.width, strict || d.kind == dirDayStrict)
		if err != nil {
			return err
		}
		if v > 31 {
			return st.fail(f.spec, "day out of range")
		}
		st.day, st.haveDay = v, true

	case dirHour:
		v, err := f.digits(st, d.width, strict)
		if err != nil {
			return err
		}
		limit := 24
		if f.mode == hourMode12 {
			limit = 12
		}
		if v > limit {
			return st.fail(f.spec, "hour out of range")
		}
		st.hour, st.haveHour = v, true

	case dirMinute:
		v, err := f.digits(st, d.width, strict)
		if err != nil {
			return err
		}
		if v > 69 {
			return st.fail(f.spec, "minute out of range")
		}
		st.minute = v

	case dirSecond:
		v, err := f.digits(st, d.width, strict)
		if err != nil {
			return err
		}
		if v > 69 {
			return st.fail(f.spec, "second out of range")
		}
		st.second = v

	case dirFracSecond:
		v, err := f.digits(st, d.width, true)
		if err != nil {
			return err
		}
		st.micro = v * int(d.scale)

	case dirFracVar:
		start := st.pos
		n := countDigits(st.in[st.pos:], d.width)
		if n == 0 {
			return st.fail(f.spec, "expected fractional-second digits")
		}
		st.pos += n
		st.micro = fractionMicros(st.in[start : start+n])

	case dirAmPm:
		rest := st.in[st.pos:]
		if len(rest) < 2 {
			return st.fail(f.spec, "expected am or pm")
		}
		switch strings.ToLower(rest[:2]) {
		case "am":
			st.isPM = false
		case "pm":
			st.isPM = true
		default:
			return st.fail(f.spec, "expected am or pm")
		}
		st.haveAmPm = true
		st.pos += 2

	case dirMonthNameFull, dirMonthNameShort:
		month, n := f.locale.matchMonth(st.in[st.pos:], d.kind == dirMonthNameShort)
		if n == 0 {
			return st.fail(f.spec, "expected a month name")
		}
		st.month, st.haveMonth = month, true
		st.pos += n

	case dirWeekdayFull, dirWeekdayShort:
		// Weekday names are validated for shape and discarded; the date is
		// derived entirely from the other fields.
		short := d.kind == dirWeekdayShort
		if n := f.locale.matchWeekday(st.in[st.pos:], short); n > 0 {
			st.pos += n
			return nil
		}
		run := countLetters(st.in[st.pos:])
		min, max := 6, 9
		if short {
			min, max = 3, 3
		}
		if run < min {
			return st.fail(f.spec, "expected a weekday name")
		}
		if run > max {
			run = max
		}
		st.pos += run

	case dirOffsetHHMM, dirOffsetColon, dirOffsetHH:
		if err := f.parseOffset(st, d.kind); err != nil {
			return err
		}

	case dirEpoch:
		if err := f.parseEpoch(st, d); err != nil {
			return err
		}

	case dirZoneName:
		n := zoneNameLen(st.in[st.pos:])
		if n == 0 {
			return st.fail(f.spec, "expected a timezone name")
		}
		st.zone = st.in[st.pos : st.pos+n]
		st.pos += n
	}
	return nil
}

// digits consumes a zero-padded numeric field of the given width. Strict
// fields demand exactly width digits; tolerant ones accept any shorter run,
// which is how "2017-6-3" parses against "YYYY-MM-DD".
func (f *DateFormat) digits(st *parseState, width int, strict bool) (int, error) {
	n := countDigits(st.in[st.pos:], width)
	if n == 0 || (strict && n < width) {
		return 0, st.fail(f.spec, "insufficient digits")
	}
	v := 0
	for _, c := range []byte(st.in[st.pos : st.pos+n]) {
		v = v*10 + int(c-'0')
	}
	st.pos += n
	return v, nil
}

func (f *DateFormat) parseOffset(st *parseState, kind directiveKind) error {
	rest := st.in[st.pos:]
	if len(rest) == 0 || (rest[0] != '+' && rest[0] != '-') {
		return st.fail(f.spec, "expected a signed UTC offset")
	}
	negative := rest[0] == '-'
	st.pos++

	hours, err := f.digits(st, 2, true)
	if err != nil {
		return err
	}
	minutes := 0
	if kind == dirOffsetColon {
		if st.pos >= len(st.in) || st.in[st.pos] != ':' {
			return st.fail(f.spec, "expected ':' in UTC offset")
		}
		st.pos++
	}
	if kind != dirOffsetHH {
		minutes, err = f.digits(st, 2, true)
		if err != nil {
			return err
		}
	}
	offset := hours*3600 + minutes*60
	if negative {
		offset = -offset
	}
	// With multiple offset directives the last match wins.
	st.offset, st.haveOffset = offset, true
	return nil
}

func (f *DateFormat) parseEpoch(st *parseState, d directive) error {
	start := st.pos
	n := countDigits(st.in[st.pos:], d.width)
	if n == 0 {
		return st.fail(f.spec, "expected an epoch timestamp")
	}
	st.pos += n
	var v int64
	for _, c := range []byte(st.in[start : start+n]) {
		v = v*10 + int64(c-'0')
	}

	var t time.Time
	switch d.scale {
	case 1:
		t = time.Unix(v, 0)
	case 1000:
		t = time.UnixMilli(v)
	case 1000000:
		t = time.UnixMicro(v)
	default:
		t = time.Unix(v/1000000000, v%1000000000)
	}
	t = t.UTC()

	st.year, st.month, st.day = t.Year(), int(t.Month()), t.Day()
	st.hour, st.minute, st.second = t.Hour(), t.Minute(), t.Second()
	st.haveYear, st.haveMonth, st.haveDay, st.haveHour = true, true, true, true
	if d.scale > 1 {
		st.micro = t.Nanosecond() / 1000
	}
	return nil
}

// reduce folds the accumulated field values into a single Date, applying
// the 12-hour rule and any matched offset or timezone. Components never
// mentioned by the spec default to today's date and zero time of day.
func (f *DateFormat) reduce(st *parseState) (Date, error) {
	if f.mode == hourMode12 && st.haveAmPm {
		hour := 12
		if st.haveHour {
			hour = st.hour
		}
		if st.isPM {
			if hour != 12 {
				hour += 12
			}
		} else if hour == 12 {
			hour = 0
		}
		st.hour, st.haveHour = hour, true
	}

	if !st.haveYear || !st.haveMonth || !st.haveDay {
		year, month, day := time.Now().Date()
		if !st.haveYear {
			st.year = year
		}
		if !st.haveMonth {
			st.month = int(month)
		}
		if !st.haveDay {
			st.day = day
		}
	}

	d, err := NewDate(st.year, st.month, st.day, st.hour, st.minute, st.second, st.micro)
	if err != nil {
		return Date{}, NewParseError(st.in, f.spec, len(st.in), "invalid date", err)
	}

	if st.zone != "" {
		offset, err := f.resolver.Offset(st.zone, d)
		if err != nil {
			return Date{}, NewParseError(st.in, f.spec, len(st.in), "unresolvable timezone", err)
		}
		return d.WithOffset(offset).WithZone(st.zone), nil
	}
	if st.haveOffset {
		return d.WithOffset(st.offset), nil
	}
	return d, nil
}

func countDigits(s string, max int) int {
	n := 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func countLetters(s string) int {
	n := 0
	for n < len(s) {
		c := s[n]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			break
		}
		n++
	}
	return n
}

// fractionMicros interprets digits as the fraction 0.<digits> seconds,
// truncated to microsecond precision.
func fractionMicros(digits string) int {
	if len(digits) > 6 {
		digits = digits[:6]
	}
	v := 0
	for _, c := range []byte(digits) {
		v = v*10 + int(c-'0')
	}
	for i := len(digits); i < 6; i++ {
		v *= 10
	}
	return v
}

// zoneNameLen measures a timezone name at the start of s: IANA-style
// slash-separated names, abbreviations, and fixed-offset suffixes such as
// "GMT+5" or "Etc/GMT+2". A sign followed by a digit is taken to belong to
// the name, so a zone-name field cannot be directly followed by an offset
// directive; separate the two fields in the spec.
func zoneNameLen(s string) int {
	n := 0
	for n < len(s) {
		c := s[n]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c == '/':
			n++
		case '0' <= c && c <= '9' && n > 0:
			n++
		case (c == '+' || c == '-') && n > 0 && n+1 < len(s) && s[n+1] >= '0' && s[n+1] <= '9':
			n++
		default:
			return n
		}
	}
	return n
}
