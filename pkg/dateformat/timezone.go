package dateformat

import (
	"fmt"
	"time"
)

// TimezoneResolver resolves named timezones for formats containing a
// timezone-name directive. Offset reports the UTC offset in effect for the
// zone at the given (naive) date. Implementations must be safe for
// concurrent use; the resolver is shared read-only by every call on a
// compiled format.
//
// No resolver is configured by default, and compiling a spec with a
// timezone-name directive without one fails with a SpecError.
type TimezoneResolver interface {
	Offset(name string, d Date) (int, error)
}

// zoneSpecTokens are the spec tokens that mark a timezone-name field. The
// token itself is a placeholder; during parsing any resolvable zone name is
// accepted at that position.
var zoneSpecTokens = []string{"Europe/London", "Zulu", "UTC", "GMT"}

// LocationResolver resolves zone names through the system timezone
// database via time.LoadLocation.
type LocationResolver struct{}

// Offset implements TimezoneResolver.
func (LocationResolver) Offset(name string, d Date) (int, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return 0, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	t := time.Date(d.Year(), time.Month(d.Month()), d.Day(),
		d.Hour(), d.Minute(), d.Second(), d.Microsecond()*1000, loc)
	_, offset := t.Zone()
	return offset, nil
}
