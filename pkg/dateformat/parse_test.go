package dateformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, year, month, day, hour, minute, second, micro int) Date {
	t.Helper()
	d, err := NewDate(year, month, day, hour, minute, second, micro)
	require.NoError(t, err)
	return d
}

// fixedResolver resolves every zone name to a constant offset.
type fixedResolver struct {
	offset int
}

func (r fixedResolver) Offset(name string, d Date) (int, error) {
	return r.offset, nil
}

func TestParse_CalendarFields(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		input string
		want  Date
	}{
		{"iso date", "YYYY-MM-DD", "2017-06-03", mustDate(t, 2017, 6, 3, 0, 0, 0, 0)},
		{"leading zeros dropped", "YYYY-MM-DD", "2017-6-3", mustDate(t, 2017, 6, 3, 0, 0, 0, 0)},
		{"no separators", "YYYYMMDD", "20170603", mustDate(t, 2017, 6, 3, 0, 0, 0, 0)},
		{"bracket fields", "YYYY[MM][DD]", "20170603", mustDate(t, 2017, 6, 3, 0, 0, 0, 0)},
		{"datetime", "YYYY-MM-DD hh:mm:ss", "2017-06-03 15:32:00", mustDate(t, 2017, 6, 3, 15, 32, 0, 0)},
		{"short year pivots forward", "YY-MM-DD", "60-06-03", mustDate(t, 2060, 6, 3, 0, 0, 0, 0)},
		{"short year pivots back", "YY-MM-DD", "70-06-03", mustDate(t, 1970, 6, 3, 0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.spec)
			require.NoError(t, err)
			got, err := f.Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		input string
	}{
		{"missing digit without separators", "YYYYMMDD", "2017066"},
		{"hour out of range", "hh:mm", "28:02"},
		{"minute out of range lexically", "hh:mm", "23:72"},
		{"minute rejected at construction", "hh:mm", "23:62"},
		{"year too long", "YYYY", "12345"},
		{"year too short only when adjacent", "YYYYMM", "20176"},
		{"wrong separator", "DD:MM", "12 12"},
		{"digits where space expected", "DD MM", "1212"},
		{"trailing garbage", "YYYY-MM-DD", "2017-06-03x"},
		{"twelve hour clock caps at twelve", "hh:mm AM", "15:02 AM"},
		{"not a meridiem", "hh:mm am", "12:02 xx"},
		{"february bounds", "YYYY-MM-DD", "2017-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.spec)
			require.NoError(t, err)
			_, err = f.Parse(tt.input)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.input, parseErr.Input)
		})
	}
}

func TestParse_LeapYear(t *testing.T) {
	f := MustCompile("YYYY-MM-DD")
	d, err := f.Parse("2016-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())
}

func TestParse_TwelveHourClock(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		input    string
		wantHour int
	}{
		{"midnight", "hh:mm AM", "12:02 AM", 0},
		{"noon", "hh:mm AM", "12:02 PM", 12},
		{"afternoon", "hh:mm pm", "03:14 pm", 15},
		{"morning", "hh:mm pm", "03:14 am", 3},
		{"meridiem case insensitive", "hh:mm am", "03:14 PM", 15},
		{"bare meridiem defaults to twelve", "pm", "pm", 12},
		{"bare am is midnight", "am", "am", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.spec)
			require.NoError(t, err)
			got, err := f.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, got.Hour())
		})
	}
}

func TestParse_TwentyFourHourOverrideIgnoresMeridiem(t *testing.T) {
	f, err := Compile("hh:mm pm", WithHourMode24())
	require.NoError(t, err)
	got, err := f.Parse("15:02 pm")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())
}

func TestParse_Fractions(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		input     string
		wantMicro int
	}{
		{"four digits", "ss.SSSS", "00.2364", 236400},
		{"three digits", "ss.SSS", "00.236", 236000},
		{"two digits", "ss.SS", "25.68", 680000},
		{"six digits", "ss.SSSSSS", "25.678901", 678901},
		{"variable one digit", "ss.S", "25.5", 500000},
		{"variable truncates to micros", "ss.S", "25.123456789", 123456},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.spec)
			require.NoError(t, err)
			got, err := f.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMicro, got.Microsecond())
		})
	}
}

func TestParse_FractionWidthIsAlwaysExact(t *testing.T) {
	f := MustCompile("ss.SSSS")
	_, err := f.Parse("00.23")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_Offsets(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		input      string
		wantOffset int
	}{
		{"colon negative", "hh:mm+HH:MM", "15:32-02:00", -7200},
		{"compact positive", "hh:mm+HHMM", "15:32+0530", 19800},
		{"hours only", "hh:mm+HH", "15:32-02", -7200},
		{"zero", "hh:mm+HH:MM", "15:32+00:00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.spec)
			require.NoError(t, err)
			got, err := f.Parse(tt.input)
			require.NoError(t, err)
			offset, ok := got.Offset()
			require.True(t, ok)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParse_LastOffsetWins(t *testing.T) {
	f := MustCompile("+HH:MM +HHMM")
	got, err := f.Parse("+01:00 -0200")
	require.NoError(t, err)
	offset, ok := got.Offset()
	require.True(t, ok)
	assert.Equal(t, -7200, offset)
}

func TestParse_NaiveWithoutOffsetDirective(t *testing.T) {
	f := MustCompile("YYYY-MM-DD")
	got, err := f.Parse("2017-06-03")
	require.NoError(t, err)
	_, ok := got.Offset()
	assert.False(t, ok)
}

func TestParse_Epoch(t *testing.T) {
	f := MustCompile("UNIX_TIMESTAMP")
	got, err := f.Parse("1496503920")
	require.NoError(t, err)
	assert.True(t, mustDate(t, 2017, 6, 3, 15, 32, 0, 0).Equal(got), "got %s", got)

	f = MustCompile("UNIX_MILLISECONDS")
	got, err = f.Parse("1496503920123")
	require.NoError(t, err)
	assert.True(t, mustDate(t, 2017, 6, 3, 15, 32, 0, 123000).Equal(got), "got %s", got)

	f = MustCompile("UNIX_MICROSECONDS")
	got, err = f.Parse("1496503920123456")
	require.NoError(t, err)
	assert.Equal(t, 123456, got.Microsecond())

	f = MustCompile("UNIX_NANOSECONDS")
	got, err = f.Parse("1496503920123456789")
	require.NoError(t, err)
	assert.Equal(t, 123456, got.Microsecond())
}

func TestParse_MonthNames(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		input string
	}{
		{"full name", "DD MMMMM YYYY", "3 June 2017"},
		{"full name case insensitive", "DD MMMMM YYYY", "3 JUNE 2017"},
		{"abbreviation", "DD MMM YYYY", "3 Jun 2017"},
		{"june alias for short field", "DD MMM YYYY", "3 June 2017"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.spec)
			require.NoError(t, err)
			got, err := f.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 6, got.Month())
			assert.Equal(t, 3, got.Day())
			assert.Equal(t, 2017, got.Year())
		})
	}
}

func TestParse_WeekdaysAreSkipped(t *testing.T) {
	f := MustCompile("Dddddd DD MMMMM YYYY")
	want := mustDate(t, 2017, 6, 3, 0, 0, 0, 0)

	got, err := f.Parse("Saturday 3 June 2017")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	// The weekday is not cross-checked against the date.
	got, err = f.Parse("Monday 3 June 2017")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = f.Parse("Sat 3 June 2017")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_ShortWeekday(t *testing.T) {
	f := MustCompile("Ddd DD MMM YYYY")
	got, err := f.Parse("Sat 3 Jun 2017")
	require.NoError(t, err)
	assert.True(t, mustDate(t, 2017, 6, 3, 0, 0, 0, 0).Equal(got))
}

func TestParse_OrdinalSuffixIsOptional(t *testing.T) {
	f := MustCompile("DDst of MMMMM YYYY")
	want := mustDate(t, 2017, 6, 3, 0, 0, 0, 0)

	got, err := f.Parse("3rd of June 2017")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = f.Parse("3 of June 2017")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

func TestParse_OpenBoxSeparator(t *testing.T) {
	f := MustCompile(ISOFormatDateTime)
	want := mustDate(t, 2017, 6, 3, 15, 32, 0, 0)

	got, err := f.Parse("2017-06-03T15:32:00")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = f.Parse("2017-06-03 15:32:00")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = f.Parse("2017-06-03Z15:32:00")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_RunOfSpaces(t *testing.T) {
	f := MustCompile("DD MM")
	got, err := f.Parse("12    11")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Day())
	assert.Equal(t, 11, got.Month())
}

func TestParse_SpaceRunRequiresSpecWidth(t *testing.T) {
	f := MustCompile("DD  MM")

	got, err := f.Parse("12  11")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Day())
	assert.Equal(t, 11, got.Month())

	// Longer runs are tolerated, shorter ones are not.
	_, err = f.Parse("12   11")
	require.NoError(t, err)

	_, err = f.Parse("12 11")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_TimezoneName(t *testing.T) {
	f, err := Compile("YYYY-MM-DD hh:mm UTC", WithTimezoneResolver(fixedResolver{offset: -18000}))
	require.NoError(t, err)
	got, err := f.Parse("2017-06-03 15:32 America/New_York")
	require.NoError(t, err)
	offset, ok := got.Offset()
	require.True(t, ok)
	assert.Equal(t, -18000, offset)
	assert.Equal(t, "America/New_York", got.Zone())
}

func TestParse_TimezoneNameWithOffsetSuffix(t *testing.T) {
	f, err := Compile("hh:mm UTC", WithTimezoneResolver(fixedResolver{offset: -7200}))
	require.NoError(t, err)

	// A sign-then-digit tail belongs to the zone name itself.
	got, err := f.Parse("15:32 Etc/GMT+2")
	require.NoError(t, err)
	assert.Equal(t, "Etc/GMT+2", got.Zone())
}

func TestParse_TimezoneNameViaLocationResolver(t *testing.T) {
	f, err := Compile("YYYY-MM-DD hh:mm UTC", WithTimezoneResolver(LocationResolver{}))
	require.NoError(t, err)
	got, err := f.Parse("2017-06-03 15:32 UTC")
	require.NoError(t, err)
	offset, ok := got.Offset()
	require.True(t, ok)
	assert.Equal(t, 0, offset)
}

func TestParse_MissingCalendarDefaultsToToday(t *testing.T) {
	f := MustCompile("hh:mm")
	got, err := f.Parse("15:32")
	require.NoError(t, err)
	year, month, day := time.Now().Date()
	assert.Equal(t, year, got.Year())
	assert.Equal(t, int(month), got.Month())
	assert.Equal(t, day, got.Day())
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, 32, got.Minute())
}

func TestParse_ErrorReportsPosition(t *testing.T) {
	f := MustCompile("YYYY-MM-DD")
	_, err := f.Parse("2017x06-03")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Position)
	assert.Equal(t, "YYYY-MM-DD", parseErr.Spec)
}
