package dateformatter

import (
	"fmt"

	"github.com/wehubfusion/Daedalus/pkg/dateformat"
)

// DateValue is the JSON representation of a parsed date. OffsetSeconds is
// nil for naive dates, mirroring the distinction dateformat.Date makes
// between "no offset" and "offset zero".
type DateValue struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Day           int    `json:"day"`
	Hour          int    `json:"hour"`
	Minute        int    `json:"minute"`
	Second        int    `json:"second"`
	Microsecond   int    `json:"microsecond"`
	OffsetSeconds *int   `json:"offsetSeconds,omitempty"`
	Zone          string `json:"zone,omitempty"`
}

// FromDate converts a dateformat.Date into its JSON representation.
func FromDate(d dateformat.Date) DateValue {
	v := DateValue{
		Year:        d.Year(),
		Month:       d.Month(),
		Day:         d.Day(),
		Hour:        d.Hour(),
		Minute:      d.Minute(),
		Second:      d.Second(),
		Microsecond: d.Microsecond(),
		Zone:        d.Zone(),
	}
	if offset, ok := d.Offset(); ok {
		v.OffsetSeconds = &offset
	}
	return v
}

// ToDate converts the JSON representation back into a dateformat.Date,
// validating the components.
func (v DateValue) ToDate() (dateformat.Date, error) {
	d, err := dateformat.NewDate(v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second, v.Microsecond)
	if err != nil {
		return dateformat.Date{}, fmt.Errorf("invalid date value: %w", err)
	}
	if v.OffsetSeconds != nil {
		d = d.WithOffset(*v.OffsetSeconds)
	}
	if v.Zone != "" {
		d = d.WithZone(v.Zone)
	}
	return d, nil
}
