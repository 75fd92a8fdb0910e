package dateformat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_Validation(t *testing.T) {
	tests := []struct {
		name                            string
		year, month, day                int
		hour, minute, second, micro     int
		wantErr                         bool
	}{
		{"valid", 2017, 6, 3, 15, 32, 0, 0, false},
		{"max micro", 2017, 6, 3, 23, 59, 59, 999999, false},
		{"leap day", 2016, 2, 29, 0, 0, 0, 0, false},
		{"year zero", 0, 6, 3, 0, 0, 0, 0, true},
		{"year too large", 10000, 6, 3, 0, 0, 0, 0, true},
		{"month zero", 2017, 0, 3, 0, 0, 0, 0, true},
		{"month thirteen", 2017, 13, 3, 0, 0, 0, 0, true},
		{"day zero", 2017, 6, 0, 0, 0, 0, 0, true},
		{"day past month end", 2017, 4, 31, 0, 0, 0, 0, true},
		{"non leap february", 2017, 2, 29, 0, 0, 0, 0, true},
		{"century non leap", 1900, 2, 29, 0, 0, 0, 0, true},
		{"quad century leap", 2000, 2, 29, 0, 0, 0, 0, false},
		{"hour 24", 2017, 6, 3, 24, 0, 0, 0, true},
		{"minute 60", 2017, 6, 3, 0, 60, 0, 0, true},
		{"second 60", 2017, 6, 3, 0, 0, 60, 0, true},
		{"micro overflow", 2017, 6, 3, 0, 0, 0, 1000000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second, tt.micro)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDate_OffsetSemantics(t *testing.T) {
	d := mustDate(t, 2017, 6, 3, 15, 32, 0, 0)

	_, ok := d.Offset()
	assert.False(t, ok, "a new date is naive")

	aware := d.WithOffset(-7200)
	offset, ok := aware.Offset()
	require.True(t, ok)
	assert.Equal(t, -7200, offset)

	// A naive date and an aware one never compare equal, even with offset 0.
	assert.False(t, d.Equal(d.WithOffset(0)))
	assert.True(t, d.Equal(aware.Naive()))
	assert.False(t, aware.Equal(d.WithOffset(0)))
}

func TestDate_EqualIgnoresZoneName(t *testing.T) {
	d := mustDate(t, 2017, 6, 3, 15, 32, 0, 0).WithOffset(0)
	assert.True(t, d.Equal(d.WithZone("UTC")))
}

func TestDate_Time(t *testing.T) {
	d := mustDate(t, 2017, 6, 3, 15, 32, 0, 236400)

	assert.Equal(t, int64(1496503920), d.Time().Unix())
	assert.Equal(t, 236400000, d.Time().Nanosecond())

	// The offset shifts the absolute instant, not the wall clock.
	assert.Equal(t, int64(1496503920+7200), d.WithOffset(-7200).Time().Unix())
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("X", -7200)
	d := FromTime(time.Date(2017, time.June, 3, 15, 32, 0, 236400000, loc))

	want := mustDate(t, 2017, 6, 3, 15, 32, 0, 236400).WithOffset(-7200)
	assert.True(t, want.Equal(d), "want %s, got %s", want, d)
	assert.Equal(t, "X", d.Zone())
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Saturday, mustDate(t, 2017, 6, 3, 0, 0, 0, 0).Weekday())
	assert.Equal(t, time.Sunday, mustDate(t, 2017, 6, 4, 0, 0, 0, 0).Weekday())
}

func TestDate_String(t *testing.T) {
	d := mustDate(t, 2017, 6, 3, 15, 32, 0, 236400)
	assert.Equal(t, "2017-06-03T15:32:00.236400", d.String())
	assert.Equal(t, "2017-06-03T15:32:00.236400-02:00", d.WithOffset(-7200).String())
	assert.Equal(t, "2017-06-03T15:32:00.236400+05:30", d.WithOffset(19800).String())
}
