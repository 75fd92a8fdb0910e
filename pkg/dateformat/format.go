package dateformat

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders d according to the compiled program. It fails with a
// *FormatError when the format carries an offset or timezone directive and
// the date is naive, or when the date's components cannot satisfy a
// directive (for example a zero-value Date against a month-name field).
func (f *DateFormat) Format(d Date) (string, error) {
	var b strings.Builder
	b.Grow(len(f.spec) + 8)

	for _, dir := range f.directives {
		switch dir.kind {
		case dirLiteral:
			b.WriteString(dir.text)

		case dirSpaces:
			b.WriteString(dir.text)

		case dirOpenBox:
			b.WriteByte('T')

		case dirOrdinalSuffix:
			if err := f.requireCalendar(d); err != nil {
				return "", err
			}
			b.WriteString(f.locale.OrdinalSuffix(d.Day()))

		case dirYear4:
			writePadded(&b, d.Year(), 4)

		case dirYear2:
			writePadded(&b, d.Year()%100, 2)

		case dirMonth, dirMonthStrict:
			writePadded(&b, d.Month(), dir.width)

		case dirDay, dirDayStrict:
			writePadded(&b, d.Day(), dir.width)

		case dirHour:
			hour := d.Hour()
			if f.mode == hourMode12 {
				hour = hour % 12
				if hour == 0 {
					hour = 12
				}
			}
			writePadded(&b, hour, dir.width)

		case dirMinute:
			writePadded(&b, d.Minute(), dir.width)

		case dirSecond:
			writePadded(&b, d.Second(), dir.width)

		case dirFracSecond:
			// Round to the directive's scale; a carry past the field width
			// widens the output rather than corrupting the value.
			v := (int64(d.Microsecond()) + dir.scale/2) / dir.scale
			b.WriteString(fmt.Sprintf("%0*d", dir.width, v))

		case dirFracVar:
			s := strings.TrimRight(fmt.Sprintf("%06d", d.Microsecond()), "0")
			if s == "" {
				s = "0"
			}
			b.WriteString(s)

		case dirAmPm:
			b.WriteString(meridiem(dir.text, d.Hour()))

		case dirMonthNameFull, dirMonthNameShort:
			if err := f.requireCalendar(d); err != nil {
				return "", err
			}
			if dir.kind == dirMonthNameShort {
				b.WriteString(f.locale.MonthAbbr(d.Month()))
			} else {
				b.WriteString(f.locale.MonthName(d.Month()))
			}

		case dirWeekdayFull:
			if err := f.requireCalendar(d); err != nil {
				return "", err
			}
			b.WriteString(f.locale.WeekdayName(d.Weekday()))

		case dirWeekdayShort:
			if err := f.requireCalendar(d); err != nil {
				return "", err
			}
			b.WriteString(f.locale.WeekdayAbbr(d.Weekday()))

		case dirOffsetHHMM, dirOffsetColon, dirOffsetHH:
			offset, ok := d.Offset()
			if !ok {
				return "", NewFormatError(f.spec, "offset-bearing format requires a date with a UTC offset")
			}
			writeOffset(&b, offset, dir.kind)

		case dirEpoch:
			t := d.Time()
			var v int64
			switch dir.scale {
			case 1:
				v = t.Unix()
			case 1000:
				v = t.UnixMilli()
			case 1000000:
				v = t.UnixMicro()
			default:
				v = t.UnixNano()
			}
			b.WriteString(strconv.FormatInt(v, 10))

		case dirZoneName:
			if _, ok := d.Offset(); !ok {
				return "", NewFormatError(f.spec, "timezone-name format requires a timezone-aware date")
			}
			if d.Zone() == "" {
				return "", NewFormatError(f.spec, "date carries no timezone name")
			}
			b.WriteString(d.Zone())
		}
	}
	return b.String(), nil
}

// requireCalendar guards name-table lookups against the zero Date, whose
// month and day are 0.
func (f *DateFormat) requireCalendar(d Date) error {
	if d.Month() < 1 || d.Month() > 12 || d.Day() < 1 {
		return NewFormatError(f.spec, "date has no valid calendar components")
	}
	return nil
}

func writePadded(b *strings.Builder, v, width int) {
	fmt.Fprintf(b, "%0*d", width, v)
}

// meridiem renders am/pm for the hour in the casing variant recorded from
// the spec token.
func meridiem(variant string, hour int) string {
	pm := hour%24 >= 12
	switch {
	case variant == strings.ToUpper(variant):
		if pm {
			return "PM"
		}
		return "AM"
	case variant == strings.ToLower(variant):
		if pm {
			return "pm"
		}
		return "am"
	default:
		if pm {
			return "Pm"
		}
		return "Am"
	}
}

func writeOffset(b *strings.Builder, offset int, kind directiveKind) {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	hours := offset / 3600
	minutes := offset % 3600 / 60

	b.WriteByte(sign)
	fmt.Fprintf(b, "%02d", hours)
	switch kind {
	case dirOffsetColon:
		b.WriteByte(':')
		fmt.Fprintf(b, "%02d", minutes)
	case dirOffsetHHMM:
		fmt.Fprintf(b, "%02d", minutes)
	}
	// dirOffsetHH renders hours only; the minutes are truncated.
}
