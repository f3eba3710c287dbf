// Package cascade decides how each raw input string should be interpreted
// as a point in time. Strategies are tried in a fixed, non-configurable
// priority order and the first success is final:
//
//  1. numeric epoch timestamp (always tried first, even with a format)
//  2. user format, timezone-aware
//  3. user format, timezone-naive (stamped UTC)
//  4. user format, date-only (midnight UTC)
//  5. RFC3339 auto-detect (only when no format was supplied)
package cascade

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dfontana/epc/internal/precision"
	"github.com/dfontana/epc/internal/timefmt"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrNoMatch reports an input that matched no applicable strategy.
	ErrNoMatch = errors.New("no interpretation matched")
	// ErrStampRange reports a numeric input that cannot be represented
	// as a calendar instant. It is fatal to that input: an overflowing
	// stamp is never retried against the format strategies.
	ErrStampRange = errors.New("timestamp out of range")
)

// ParseError describes why one input could not be interpreted. It carries
// the original string and wraps the reason.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Result is the outcome for a single input in a batch.
type Result struct {
	Input string
	Time  time.Time
	Err   error
}

// Parse interprets a single raw input. spec may be nil (no user format).
// Successful results always carry an explicit fixed offset; UTC is assumed
// for naive and date-only matches. Parse is a pure function and spec is
// never mutated, so it is safe to call concurrently.
func Parse(input string, spec *timefmt.Spec, prec precision.Precision) (time.Time, error) {
	if t, ok, err := parseStamp(input, prec); ok {
		if err != nil {
			return time.Time{}, &ParseError{Input: input, Err: err}
		}
		return t, nil
	}

	if spec != nil {
		if t, ok := parseFormatted(input, spec); ok {
			return t, nil
		}
		return time.Time{}, &ParseError{Input: input, Err: ErrNoMatch}
	}

	if t, ok := parseAutoDetect(input); ok {
		return t, nil
	}
	return time.Time{}, &ParseError{Input: input, Err: ErrNoMatch}
}

// ParseAll parses a batch with bounded parallelism. Results are returned
// in input order; each input is independent of every other's outcome.
func ParseAll(ctx context.Context, inputs []string, spec *timefmt.Spec, prec precision.Precision, jobs int) ([]Result, error) {
	results := make([]Result, len(inputs))

	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(jobs))

	for i, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			defer sem.Release(1)

			t, err := Parse(input, spec, prec)
			results[i] = Result{Input: input, Time: t, Err: err}
		}(i, input)
	}

	wg.Wait()
	return results, nil
}

// parseStamp attempts the numeric timestamp strategy. ok reports whether
// the entire string is syntactically a stamp; when it is, any conversion
// failure is returned as an error rather than falling through.
func parseStamp(s string, prec precision.Precision) (time.Time, bool, error) {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if !isStampDigits(intPart) {
		return time.Time{}, false, nil
	}

	if hasFrac {
		// Fractional stamps are seconds by definition; at any other
		// precision a dotted numeric string is not a stamp at all.
		if prec != precision.Secs || !isFractionDigits(fracPart) {
			return time.Time{}, false, nil
		}
		sec, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return time.Time{}, true, ErrStampRange
		}
		nsec := fractionNanos(fracPart)
		if strings.HasPrefix(intPart, "-") {
			nsec = -nsec
		}
		return time.Unix(sec, nsec).UTC(), true, nil
	}

	ts, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return time.Time{}, true, ErrStampRange
	}
	t, err := prec.Time(ts)
	if err != nil {
		return time.Time{}, true, ErrStampRange
	}
	return t, true, nil
}

// isStampDigits reports whether s is an optionally signed digit run.
func isStampDigits(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isFractionDigits(s string) bool {
	if s == "" || len(s) > 9 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func fractionNanos(digits string) int64 {
	var n int64
	for i := 0; i < 9; i++ {
		n *= 10
		if i < len(digits) {
			n += int64(digits[i] - '0')
		}
	}
	return n
}

// parseFormatted attempts the three user-format strategies in priority
// order. A compiled format belongs to exactly one completeness class, so a
// class mismatch skips the strategy rather than counting as a failure.
func parseFormatted(input string, spec *timefmt.Spec) (time.Time, bool) {
	if spec.Class() == timefmt.ClassZoneAware {
		if f, ok := match(input, spec); ok && f.hasDateTime() && f.hasOffset {
			return f.instant(time.FixedZone("", f.offset)), true
		}
		return time.Time{}, false
	}

	if spec.Class() == timefmt.ClassNaive {
		// No offset in the input; UTC is assumed by convention, never
		// inferred from locale or system state.
		if f, ok := match(input, spec); ok && f.hasDateTime() {
			return f.instant(time.UTC), true
		}
		return time.Time{}, false
	}

	if spec.Class() == timefmt.ClassDateOnly {
		// Midnight UTC on the matched date.
		if f, ok := match(input, spec); ok && f.hasDate() {
			return f.instant(time.UTC), true
		}
		return time.Time{}, false
	}

	return time.Time{}, false
}

// parseAutoDetect is the fixed no-format fallback. Alongside strict
// RFC3339 it accepts the compact-offset variant (2023-03-19T16:36:26-0400)
// that this tool has historically accepted.
func parseAutoDetect(input string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999-0700"} {
		if t, err := time.Parse(layout, input); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fields collects the values extracted by one match attempt.
type fields struct {
	year, month, day  int
	hour, minute, sec int
	nsec              int
	offset            int
	haveYear, haveMon bool
	haveDay, haveHour bool
	haveMin           bool
	hasOffset         bool
}

func (f *fields) hasDate() bool {
	return f.haveYear && f.haveMon && f.haveDay
}

func (f *fields) hasDateTime() bool {
	return f.hasDate() && f.haveHour && f.haveMin
}

// instant builds the matched moment. The date fields are validated by
// round-trip so impossible dates (2023-02-31) are rejected rather than
// normalized; time fields are range-checked during the scan and left to
// date arithmetic, which is what lets a :60 leap second roll over.
func (f *fields) instant(loc *time.Location) time.Time {
	return time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.sec, f.nsec, loc)
}

func (f *fields) validDate() bool {
	if !f.hasDate() {
		return true
	}
	d := time.Date(f.year, time.Month(f.month), f.day, 0, 0, 0, 0, time.UTC)
	return d.Year() == f.year && int(d.Month()) == f.month && d.Day() == f.day
}

// match scans input against the compiled specifier sequence. The entire
// input must be consumed. Seconds and fractions default to zero when the
// format omits them.
func match(input string, spec *timefmt.Spec) (*fields, bool) {
	f := &fields{month: 1, day: 1}
	pos := 0

	for _, tok := range spec.Tokens() {
		switch tok.Kind {
		case timefmt.TokenLiteral:
			if !strings.HasPrefix(input[pos:], tok.Lit) {
				return nil, false
			}
			pos += len(tok.Lit)
		case timefmt.TokenYear:
			v, ok := digits(input, &pos, 4)
			if !ok {
				return nil, false
			}
			f.year, f.haveYear = v, true
		case timefmt.TokenMonth:
			v, ok := digitsInRange(input, &pos, 1, 12)
			if !ok {
				return nil, false
			}
			f.month, f.haveMon = v, true
		case timefmt.TokenDay:
			v, ok := digitsInRange(input, &pos, 1, 31)
			if !ok {
				return nil, false
			}
			f.day, f.haveDay = v, true
		case timefmt.TokenHour:
			v, ok := digitsInRange(input, &pos, 0, 23)
			if !ok {
				return nil, false
			}
			f.hour, f.haveHour = v, true
		case timefmt.TokenMinute:
			v, ok := digitsInRange(input, &pos, 0, 59)
			if !ok {
				return nil, false
			}
			f.minute, f.haveMin = v, true
		case timefmt.TokenSecond:
			// 60 is allowed to tolerate a leap second.
			v, ok := digitsInRange(input, &pos, 0, 60)
			if !ok {
				return nil, false
			}
			f.sec = v
		case timefmt.TokenFraction:
			v, ok := digits(input, &pos, tok.Width)
			if !ok {
				return nil, false
			}
			f.nsec = v * pow10(9-tok.Width)
		case timefmt.TokenOffset:
			off, ok := offset(input, &pos, false)
			if !ok {
				return nil, false
			}
			f.offset, f.hasOffset = off, true
		case timefmt.TokenOffsetColon:
			off, ok := offset(input, &pos, true)
			if !ok {
				return nil, false
			}
			f.offset, f.hasOffset = off, true
		}
	}

	if pos != len(input) || !f.validDate() {
		return nil, false
	}
	return f, true
}

// digits consumes exactly n digits starting at *pos.
func digits(s string, pos *int, n int) (int, bool) {
	if *pos+n > len(s) {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[*pos+i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	*pos += n
	return v, true
}

func digitsInRange(s string, pos *int, lo, hi int) (int, bool) {
	v, ok := digits(s, pos, 2)
	if !ok || v < lo || v > hi {
		return 0, false
	}
	return v, true
}

// offset consumes ±HHMM, or ±HH:MM when colon is set, returning seconds
// east of UTC.
func offset(s string, pos *int, colon bool) (int, bool) {
	if *pos >= len(s) || (s[*pos] != '+' && s[*pos] != '-') {
		return 0, false
	}
	sign := 1
	if s[*pos] == '-' {
		sign = -1
	}
	*pos++

	hh, ok := digitsInRange(s, pos, 0, 23)
	if !ok {
		return 0, false
	}
	if colon {
		if *pos >= len(s) || s[*pos] != ':' {
			return 0, false
		}
		*pos++
	}
	mm, ok := digitsInRange(s, pos, 0, 59)
	if !ok {
		return 0, false
	}
	return sign * (hh*3600 + mm*60), true
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
