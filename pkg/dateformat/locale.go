package dateformat

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale supplies the month and weekday name tables and the ordinal suffix
// rule used by name-bearing directives. A Locale is immutable after
// construction and safe to share between any number of compiled formats.
type Locale struct {
	monthNames [13]string // indexed 1-12
	monthAbbrs [13]string
	dayNames   [7]string // indexed by time.Weekday
	dayAbbrs   [7]string
	// extraMonthNames maps additional accepted spellings (case-folded) to a
	// month number for short-month parsing, e.g. "june" for MMM.
	extraMonthNames map[string]int
	suffixes        map[int]string
	folder          cases.Caser
}

// NewLocale builds a locale from full month names (January first), full
// weekday names (Sunday first) and their abbreviations. The tag selects the
// case-folding rules used for case-insensitive name matching.
func NewLocale(tag language.Tag, months, monthAbbrs [12]string, days, dayAbbrs [7]string) *Locale {
	l := &Locale{
		extraMonthNames: make(map[string]int),
		suffixes:        map[int]string{1: "st", 2: "nd", 3: "rd"},
		folder:          cases.Lower(tag),
	}
	for i := 0; i < 12; i++ {
		l.monthNames[i+1] = months[i]
		l.monthAbbrs[i+1] = monthAbbrs[i]
	}
	for i := 0; i < 7; i++ {
		l.dayNames[i] = days[i]
		l.dayAbbrs[i] = dayAbbrs[i]
	}
	return l
}

var english = buildEnglishLocale()

func buildEnglishLocale() *Locale {
	months := [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	abbrs := [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	days := [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	dayAbbrs := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	l := NewLocale(language.English, months, abbrs, days, dayAbbrs)
	// Four-letter full names are commonly written where an abbreviation is
	// expected, so MMM accepts them too.
	l.AddShortMonthAlias("June", 6)
	l.AddShortMonthAlias("July", 7)
	return l
}

// EnglishLocale returns the built-in English locale, the default for
// Compile.
func EnglishLocale() *Locale { return english }

// AddShortMonthAlias registers an extra spelling accepted by the short
// month-name directive. Must be called before the locale is shared with any
// compiled format.
func (l *Locale) AddShortMonthAlias(name string, month int) {
	l.extraMonthNames[l.folder.String(name)] = month
}

// MonthName returns the full name for a month in 1-12.
func (l *Locale) MonthName(month int) string { return l.monthNames[month] }

// MonthAbbr returns the abbreviated name for a month in 1-12.
func (l *Locale) MonthAbbr(month int) string { return l.monthAbbrs[month] }

// WeekdayName returns the full name for a weekday.
func (l *Locale) WeekdayName(day time.Weekday) string { return l.dayNames[day] }

// WeekdayAbbr returns the abbreviated name for a weekday.
func (l *Locale) WeekdayAbbr(day time.Weekday) string { return l.dayAbbrs[day] }

// OrdinalSuffix returns the suffix for a day of month, e.g. "st" for 1 and
// 21 but "th" for 11.
func (l *Locale) OrdinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	if s, ok := l.suffixes[day%10]; ok {
		return s
	}
	return "th"
}

// matchMonth finds the longest month name matching a prefix of s
// case-insensitively. It returns the month number and the matched byte
// length, or (0, 0) when nothing matches. Short matching also consults the
// alias table.
func (l *Locale) matchMonth(s string, short bool) (month, length int) {
	table := l.monthNames
	if short {
		table = l.monthAbbrs
	}
	for m := 1; m <= 12; m++ {
		name := table[m]
		if n := l.foldedPrefixLen(s, name); n > length {
			month, length = m, n
		}
	}
	if short {
		for alias, m := range l.extraMonthNames {
			if n := l.foldedPrefixLen(s, alias); n > length {
				month, length = m, n
			}
		}
	}
	return month, length
}

// matchWeekday finds the longest weekday name matching a prefix of s
// case-insensitively, returning the matched byte length or 0.
func (l *Locale) matchWeekday(s string, short bool) int {
	table := l.dayNames
	if short {
		table = l.dayAbbrs
	}
	best := 0
	for day := 0; day < 7; day++ {
		if n := l.foldedPrefixLen(s, table[day]); n > best {
			best = n
		}
	}
	return best
}

func (l *Locale) foldedPrefixLen(s, name string) int {
	if len(s) < len(name) {
		return 0
	}
	if l.folder.String(s[:len(name)]) == l.folder.String(name) {
		return len(name)
	}
	return 0
}
