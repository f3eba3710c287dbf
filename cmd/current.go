package cmd

import (
	"fmt"

	"github.com/dfontana/epc/internal/converter"
	"github.com/dfontana/epc/internal/precision"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current epoch time",
	Long: `Print the current time, optionally truncated, shifted, converted to a
timezone, and formatted.

Truncation zeroes the time from the given precision onward: secs truncates
to the minute, mins to the hour, hours to the day, days to the first of the
month, and weeks to the first of the year.`,
	Args: cobra.NoArgs,
	RunE: runCurrent,
}

func init() {
	addCurrentFlags(currentCmd)
}

func addCurrentFlags(cmd *cobra.Command) {
	addTimezoneFlag(cmd)
	addFormatFlags(cmd)
	addAddFlag(cmd)
	cmd.Flags().StringVarP(&truncate, "truncate", "u", "",
		"zero the time from the given precision onward")
}

func runCurrent(cmd *cobra.Command, args []string) error {
	opts := &converter.CurrentOptions{
		Format:    format,
		Timezone:  atTimezone,
		Precision: prec,
	}

	var err error
	if opts.Add, err = parseAdd(); err != nil {
		return err
	}

	if truncate != "" {
		var p precision.Precision
		if err := p.Set(truncate); err != nil {
			return fmt.Errorf("invalid --truncate: %w", err)
		}
		opts.Truncate = &p
	}

	c := converter.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize())
	return c.Current(opts)
}
