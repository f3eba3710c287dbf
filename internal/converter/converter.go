// Package converter orchestrates conversion runs: it compiles the run's
// format once, fans the inputs out to the parsing cascade, and renders the
// results.
package converter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dfontana/epc/internal/cascade"
	"github.com/dfontana/epc/internal/precision"
	"github.com/dfontana/epc/internal/timefmt"
	"github.com/dfontana/epc/internal/tzone"
)

// Converter runs conversions and writes their results.
type Converter struct {
	output *Output
}

// New creates a new Converter.
func New(stdout, stderr io.Writer, colorize bool) *Converter {
	return &Converter{
		output: NewOutput(stdout, stderr, colorize),
	}
}

// Convert parses the input batch and prints each value in input (or
// sorted) order. An invalid format string aborts before any input is
// parsed; individual unparseable inputs are warned about and skipped.
// Convert fails outright only when every input failed.
func (c *Converter) Convert(ctx context.Context, opts *ConvertOptions) error {
	spec, err := compileFormat(opts.Format)
	if err != nil {
		return err
	}

	loc, err := tzone.Resolve(opts.Timezone)
	if err != nil {
		return err
	}

	results, err := cascade.ParseAll(ctx, opts.Inputs, spec, opts.Precision, opts.Jobs)
	if err != nil {
		return err
	}

	times := make([]time.Time, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			c.output.Warningf("%v", r.Err)
			continue
		}
		times = append(times, r.Time.In(loc))
	}

	if opts.Add != nil {
		for i := range times {
			times[i] = times[i].Add(opts.Add.Duration())
		}
	}

	opts.Order.Apply(times)

	for _, t := range times {
		c.output.Value(render(t, spec, opts.Precision))
	}

	if len(results) > 0 && len(times) == 0 {
		return fmt.Errorf("failed to convert all %d inputs", len(results))
	}
	return nil
}

// Current prints the current time after truncation, zone conversion, and
// duration addition.
func (c *Converter) Current(opts *CurrentOptions) error {
	spec, err := compileFormat(opts.Format)
	if err != nil {
		return err
	}

	loc, err := tzone.Resolve(opts.Timezone)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if opts.Truncate != nil {
		now = opts.Truncate.Truncate(now)
	}
	now = now.In(loc)
	if opts.Add != nil {
		now = now.Add(opts.Add.Duration())
	}

	c.output.Value(render(now, spec, opts.Precision))
	return nil
}

func compileFormat(format string) (*timefmt.Spec, error) {
	if format == "" {
		return nil, nil
	}
	return timefmt.Compile(format)
}

// render prints t through the run's format, or as a stamp in the run's
// precision when no format was given.
func render(t time.Time, spec *timefmt.Spec, prec precision.Precision) string {
	if spec != nil {
		return spec.Render(t)
	}
	return strconv.FormatInt(prec.Stamp(t), 10)
}
