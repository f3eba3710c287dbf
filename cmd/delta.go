package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/dfontana/epc/internal/converter"
	"github.com/spf13/cobra"
)

var (
	structure = converter.StructureTable
	deltaAs   = converter.HumanDelta()
)

var deltaCmd = &cobra.Command{
	Use:   "delta [flags] <input>...",
	Short: "Print the differences between a list of times",
	Long: `Compute the difference between each adjacent pair of inputs. Inputs are
parsed the same way "epc convert" parses them. When only one input is
given, it is compared against the current time.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateJobs,
	RunE:    runDelta,
}

func init() {
	addFormatFlags(deltaCmd)
	addOrderFlag(deltaCmd)
	addJobsFlag(deltaCmd)
	deltaCmd.Flags().VarP(&structure, "output-structure", "s",
		"how to structure the output: list-table, value-csv, key-value-csv")
	deltaCmd.Flags().VarP(&deltaAs, "output-delta-format", "d",
		"how to print the deltas: human, or a precision name")
}

func runDelta(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &converter.DeltaOptions{
		Inputs:    args,
		Format:    format,
		Precision: prec,
		Order:     order,
		Structure: structure,
		DeltaAs:   deltaAs,
		Jobs:      jobs,
	}

	c := converter.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize())
	return c.Delta(ctx, opts)
}
