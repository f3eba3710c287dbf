// Package hduration parses and renders human-friendly durations built from
// week/day/hour/minute/second/millisecond/nanosecond terms, e.g. "3w5d2h"
// or "-1s 10ns".
package hduration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var units = map[string]time.Duration{
	"w":  7 * 24 * time.Hour,
	"d":  24 * time.Hour,
	"h":  time.Hour,
	"m":  time.Minute,
	"s":  time.Second,
	"ms": time.Millisecond,
	"ns": time.Nanosecond,
}

// HDuration is a signed duration that remembers the text it was parsed
// from so it can echo back in help and error messages.
type HDuration struct {
	dur      time.Duration
	negative bool
	text     string
}

// Parse parses a duration string. Terms are a number followed by a unit
// (w, d, h, m, s, ms, ns), may appear in any order, and may be separated
// by single spaces. A single leading '-' negates the whole duration.
func Parse(s string) (*HDuration, error) {
	if s == "" {
		return nil, fmt.Errorf("empty duration string")
	}

	rest := s
	negative := false
	if rest[0] == '-' {
		negative = true
		rest = rest[1:]
	}

	var total time.Duration
	first := true
	for rest != "" {
		if !first {
			if rest[0] != ' ' {
				// Adjacent terms without a space are fine ("3w5d2h");
				// anything else must be a single space separator.
				if rest[0] < '0' || rest[0] > '9' {
					return nil, fmt.Errorf("invalid duration %q: unexpected %q", s, rest[0])
				}
			} else {
				rest = rest[1:]
			}
		}
		first = false

		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return nil, fmt.Errorf("invalid duration %q: missing number", s)
		}
		num, err := strconv.ParseInt(rest[:i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", s, err)
		}

		j := i
		for j < len(rest) && rest[j] >= 'a' && rest[j] <= 'z' {
			j++
		}
		if j == i {
			return nil, fmt.Errorf("invalid duration %q: missing unit", s)
		}
		unit, ok := units[rest[i:j]]
		if !ok {
			return nil, fmt.Errorf("invalid duration %q: unknown unit %q", s, rest[i:j])
		}

		// num * unit must fit in time.Duration (int64).
		if num != 0 && num > math.MaxInt64/int64(unit) {
			return nil, fmt.Errorf("invalid duration %q: value too large", s)
		}
		term := time.Duration(num) * unit
		if total > math.MaxInt64-term {
			return nil, fmt.Errorf("invalid duration %q: value too large", s)
		}
		total += term

		rest = rest[j:]
	}

	return &HDuration{dur: total, negative: negative, text: s}, nil
}

// Duration returns the signed duration.
func (h *HDuration) Duration() time.Duration {
	if h.negative {
		return -h.dur
	}
	return h.dur
}

// String returns the original text the duration was parsed from.
func (h *HDuration) String() string { return h.text }

// Format renders a duration in the same term shape Parse accepts:
// "3w 5d 2h 10m 7s", largest unit first, zero terms omitted.
func Format(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}

	wrote := false
	for _, u := range []struct {
		name string
		dur  time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
		{"ns", time.Nanosecond},
	} {
		n := d / u.dur
		if n == 0 {
			continue
		}
		if wrote {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d%s", n, u.name)
		d -= n * u.dur
		wrote = true
	}
	return b.String()
}
