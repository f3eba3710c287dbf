package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dfontana/epc/internal/converter"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input>...",
	Short: "Convert epoch timestamps into date strings or vice versa",
	Long: `Convert a mixed batch of inputs, where each input is either an epoch
timestamp in the given precision or a datetime string.

Each input is interpreted by the first matching strategy, in this order:

  1. a numeric epoch timestamp (always tried first, even with --format)
  2. the --format string, when it carries an explicit UTC offset
  3. the --format string, date and time with no offset (UTC is assumed)
  4. the --format string, date only (midnight UTC is assumed)
  5. RFC3339 / ISO-8601 (only when no --format was given)

Inputs matching no strategy are reported on stderr; the rest of the batch
still converts.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateJobs,
	RunE:    runConvert,
}

func init() {
	addTimezoneFlag(convertCmd)
	addFormatFlags(convertCmd)
	addOrderFlag(convertCmd)
	addAddFlag(convertCmd)
	addJobsFlag(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &converter.ConvertOptions{
		Inputs:    args,
		Format:    format,
		Timezone:  atTimezone,
		Precision: prec,
		Order:     order,
		Jobs:      jobs,
	}

	var err error
	if opts.Add, err = parseAdd(); err != nil {
		return err
	}

	c := converter.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize())
	return c.Convert(ctx, opts)
}
