package cmd

import (
	"fmt"

	"github.com/dfontana/epc/internal/tzone"
	"github.com/spf13/cobra"
)

var timezoneCmd = &cobra.Command{
	Use:   "timezone [<pattern>...]",
	Short: "List supported timezones",
	Long: `List the IANA timezone names known to the system, optionally filtered
by glob patterns:

  epc timezone
  epc timezone "America/**"
  epc timezone "*/Tokyo" "Europe/*"`,
	RunE: runTimezone,
}

func runTimezone(cmd *cobra.Command, args []string) error {
	names, err := tzone.List(args)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
