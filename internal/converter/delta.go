package converter

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dfontana/epc/internal/cascade"
	"github.com/dfontana/epc/internal/hduration"
	"github.com/dfontana/epc/internal/precision"
)

// Structure controls how delta output is laid out.
type Structure string

const (
	// StructureTable prints from/to/delta columns aligned for humans.
	StructureTable Structure = "list-table"
	// StructureValueCSV prints just the deltas on one comma-separated line.
	StructureValueCSV Structure = "value-csv"
	// StructureKeyValueCSV prints one delta,from,to line per pair.
	StructureKeyValueCSV Structure = "key-value-csv"
)

// String is used both by fmt.Print and by Cobra in help text.
func (s *Structure) String() string {
	return string(*s)
}

// Set must have pointer receiver to validate and set the value.
func (s *Structure) Set(v string) error {
	switch v {
	case "list-table", "value-csv", "key-value-csv":
		*s = Structure(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"list-table\", \"value-csv\", or \"key-value-csv\"")
	}
}

// Type is only used in help text.
func (s *Structure) Type() string {
	return "structure"
}

// DeltaFormat controls how a single delta value is printed: as a human
// duration ("2m 44s") or as a count in one precision unit ("164 secs").
type DeltaFormat struct {
	human bool
	prec  precision.Precision
}

// HumanDelta returns the default, human-readable delta format.
func HumanDelta() DeltaFormat {
	return DeltaFormat{human: true}
}

// String is used both by fmt.Print and by Cobra in help text.
func (d *DeltaFormat) String() string {
	if d.human {
		return "human"
	}
	return d.prec.String()
}

// Set must have pointer receiver to validate and set the value.
func (d *DeltaFormat) Set(v string) error {
	if v == "human" {
		*d = DeltaFormat{human: true}
		return nil
	}
	var p precision.Precision
	if err := p.Set(v); err != nil {
		return fmt.Errorf("must be \"human\" or a precision name")
	}
	*d = DeltaFormat{prec: p}
	return nil
}

// Type is only used in help text.
func (d *DeltaFormat) Type() string {
	return "deltaFormat"
}

func (d DeltaFormat) render(diff time.Duration) string {
	if d.human {
		return hduration.Format(diff)
	}
	return fmt.Sprintf("%d %s", d.prec.Count(diff), d.prec)
}

// Delta parses the input batch and prints the difference between each
// adjacent pair. A single surviving input is compared against now.
func (c *Converter) Delta(ctx context.Context, opts *DeltaOptions) error {
	spec, err := compileFormat(opts.Format)
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
		times = append(times, r.Time)
	}
	if len(times) == 0 {
		return fmt.Errorf("failed to convert all %d inputs", len(results))
	}

	if len(times) == 1 {
		times = append(times, time.Now().UTC())
	}

	opts.Order.Apply(times)

	type pair struct {
		delta    string
		from, to string
	}
	pairs := make([]pair, 0, len(times)-1)
	for i := 0; i+1 < len(times); i++ {
		a, b := times[i], times[i+1]
		diff := b.Sub(a)
		if diff < 0 {
			diff = -diff
		}
		pairs = append(pairs, pair{
			delta: opts.DeltaAs.render(diff),
			from:  render(a, spec, opts.Precision),
			to:    render(b, spec, opts.Precision),
		})
	}

	switch opts.Structure {
	case StructureValueCSV:
		values := make([]string, len(pairs))
		for i, p := range pairs {
			values[i] = p.delta
		}
		c.output.Value(strings.Join(values, ","))
	case StructureKeyValueCSV:
		for _, p := range pairs {
			c.output.Value(fmt.Sprintf("%s,%s,%s", p.delta, p.from, p.to))
		}
	default:
		var b strings.Builder
		w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, p := range pairs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.from, p.to, p.delta)
		}
		w.Flush()
		c.output.Value(strings.TrimSuffix(b.String(), "\n"))
	}

	return nil
}
