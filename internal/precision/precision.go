// Package precision defines the units epoch timestamps can be expressed in
// and the conversions between stamps and instants.
package precision

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Precision is the unit a numeric timestamp is measured in.
type Precision int

const (
	Weeks Precision = iota
	Days
	Hours
	Mins
	Secs
	Millis
	Nanos
)

// ErrOutOfRange reports a stamp whose conversion to an instant overflows.
var ErrOutOfRange = errors.New("timestamp out of range")

// String is used both by fmt.Print and by Cobra in help text.
func (p Precision) String() string {
	switch p {
	case Weeks:
		return "weeks"
	case Days:
		return "days"
	case Hours:
		return "hours"
	case Mins:
		return "mins"
	case Secs:
		return "secs"
	case Millis:
		return "millis"
	case Nanos:
		return "nanos"
	default:
		return "unknown"
	}
}

// Set must have pointer receiver to validate and set the value.
func (p *Precision) Set(s string) error {
	switch s {
	case "w", "weeks":
		*p = Weeks
	case "d", "days":
		*p = Days
	case "h", "hours":
		*p = Hours
	case "m", "mins":
		*p = Mins
	case "s", "secs":
		*p = Secs
	case "ms", "millis":
		*p = Millis
	case "ns", "nanos":
		*p = Nanos
	default:
		return fmt.Errorf("unknown precision: %s", s)
	}
	return nil
}

// Type is only used in help text.
func (p *Precision) Type() string {
	return "precision"
}

// SecondsPer returns the number of seconds in one unit, or 0 for
// sub-second units.
func (p Precision) SecondsPer() int64 {
	switch p {
	case Weeks:
		return 7 * 24 * 60 * 60
	case Days:
		return 24 * 60 * 60
	case Hours:
		return 60 * 60
	case Mins:
		return 60
	case Secs:
		return 1
	default:
		return 0
	}
}

// Time converts a stamp in this unit to an instant in UTC. Stamps that
// overflow when scaled to seconds are rejected.
func (p Precision) Time(ts int64) (time.Time, error) {
	switch p {
	case Millis:
		return time.UnixMilli(ts).UTC(), nil
	case Nanos:
		return time.Unix(0, ts).UTC(), nil
	default:
		per := p.SecondsPer()
		if ts > math.MaxInt64/per || ts < math.MinInt64/per {
			return time.Time{}, ErrOutOfRange
		}
		return time.Unix(ts*per, 0).UTC(), nil
	}
}

// Stamp converts an instant to a stamp in this unit.
func (p Precision) Stamp(t time.Time) int64 {
	switch p {
	case Millis:
		return t.UnixMilli()
	case Nanos:
		return t.UnixNano()
	default:
		return t.Unix() / p.SecondsPer()
	}
}

// Count returns the (lossy) number of whole units in d.
func (p Precision) Count(d time.Duration) int64 {
	switch p {
	case Millis:
		return d.Milliseconds()
	case Nanos:
		return d.Nanoseconds()
	default:
		return int64(d/time.Second) / p.SecondsPer()
	}
}

// Truncate zeroes the fields of t from this unit onward: nanos truncates to
// the millisecond, millis to the second, secs to the minute, mins to the
// hour, hours to the day, days to the first of the month, and weeks to the
// first of the year. Day boundaries are UTC-aligned; truncate before
// converting to a display timezone.
func (p Precision) Truncate(t time.Time) time.Time {
	switch p {
	case Nanos:
		return t.Truncate(time.Millisecond)
	case Millis:
		return t.Truncate(time.Second)
	case Secs:
		return t.Truncate(time.Minute)
	case Mins:
		return t.Truncate(time.Hour)
	case Hours:
		return t.Truncate(24 * time.Hour)
	case Days:
		day := t.Truncate(24 * time.Hour)
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	case Weeks:
		day := t.Truncate(24 * time.Hour)
		return time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
	default:
		return t
	}
}
