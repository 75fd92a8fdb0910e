package dateformat

import (
	"fmt"
	"time"
)

// Date is a calendar date with time of day, microsecond precision and an
// optional UTC offset. The zero value is not a valid date; use NewDate or
// FromTime. A Date without an offset is "naive": it carries no timezone
// information at all, which is distinct from an offset of zero seconds.
type Date struct {
	year, month, day          int
	hour, minute, second      int
	microsecond               int
	offsetSeconds             int
	hasOffset                 bool
	zone                      string
}

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month]
}

// NewDate creates a naive Date, validating every component: year 1-9999,
// month 1-12, day valid for the month, hour 0-23, minute and second 0-59,
// microsecond 0-999999.
func NewDate(year, month, day, hour, minute, second, microsecond int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("year %d out of range [1, 9999]", year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d out of range [1, 12]", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d out of range [1, %d] for %d-%02d", day, daysInMonth(year, month), year, month)
	}
	if hour < 0 || hour > 23 {
		return Date{}, fmt.Errorf("hour %d out of range [0, 23]", hour)
	}
	if minute < 0 || minute > 59 {
		return Date{}, fmt.Errorf("minute %d out of range [0, 59]", minute)
	}
	if second < 0 || second > 59 {
		return Date{}, fmt.Errorf("second %d out of range [0, 59]", second)
	}
	if microsecond < 0 || microsecond > 999999 {
		return Date{}, fmt.Errorf("microsecond %d out of range [0, 999999]", microsecond)
	}
	return Date{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second,
		microsecond: microsecond,
	}, nil
}

// FromTime converts a time.Time into a Date carrying the time's UTC offset
// and zone name.
func FromTime(t time.Time) Date {
	zone, offset := t.Zone()
	return Date{
		year: t.Year(), month: int(t.Month()), day: t.Day(),
		hour: t.Hour(), minute: t.Minute(), second: t.Second(),
		microsecond:   t.Nanosecond() / 1000,
		offsetSeconds: offset,
		hasOffset:     true,
		zone:          zone,
	}
}

func (d Date) Year() int        { return d.year }
func (d Date) Month() int       { return d.month }
func (d Date) Day() int         { return d.day }
func (d Date) Hour() int        { return d.hour }
func (d Date) Minute() int      { return d.minute }
func (d Date) Second() int      { return d.second }
func (d Date) Microsecond() int { return d.microsecond }

// Offset returns the UTC offset in seconds east of UTC and whether the date
// carries one.
func (d Date) Offset() (int, bool) { return d.offsetSeconds, d.hasOffset }

// Zone returns the timezone name associated with the date, if any.
func (d Date) Zone() string { return d.zone }

// WithOffset returns a copy of the date carrying the given UTC offset.
func (d Date) WithOffset(seconds int) Date {
	d.offsetSeconds = seconds
	d.hasOffset = true
	return d
}

// WithZone returns a copy of the date carrying the given timezone name.
func (d Date) WithZone(name string) Date {
	d.zone = name
	return d
}

// Naive returns a copy of the date with any offset and zone removed.
func (d Date) Naive() Date {
	d.offsetSeconds = 0
	d.hasOffset = false
	d.zone = ""
	return d
}

// Weekday returns the day of the week the date falls on.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Equal reports whether two dates represent the same components and offset.
// A naive date never equals an offset-carrying one. Zone names do not take
// part in the comparison.
func (d Date) Equal(other Date) bool {
	if d.hasOffset != other.hasOffset {
		return false
	}
	if d.hasOffset && d.offsetSeconds != other.offsetSeconds {
		return false
	}
	return d.year == other.year && d.month == other.month && d.day == other.day &&
		d.hour == other.hour && d.minute == other.minute && d.second == other.second &&
		d.microsecond == other.microsecond
}

// Time converts the date to a time.Time. An offset-carrying date is placed
// in a fixed zone at that offset; a naive date is interpreted as UTC.
func (d Date) Time() time.Time {
	loc := time.UTC
	if d.hasOffset {
		loc = time.FixedZone(d.zone, d.offsetSeconds)
	}
	return time.Date(d.year, time.Month(d.month), d.day,
		d.hour, d.minute, d.second, d.microsecond*1000, loc)
}

// String renders the date in an ISO 8601 style form, mainly for logs and
// test failure output.
func (d Date) String() string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06d",
		d.year, d.month, d.day, d.hour, d.minute, d.second, d.microsecond)
	if !d.hasOffset {
		return s
	}
	off := d.offsetSeconds
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("%s%s%02d:%02d", s, sign, off/3600, off%3600/60)
}
