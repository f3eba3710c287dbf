package cmd

import (
	"fmt"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/dfontana/epc/internal/converter"
	"github.com/dfontana/epc/internal/hduration"
	"github.com/dfontana/epc/internal/precision"
	"github.com/spf13/cobra"
)

// defaultFormat is used when --format is given without a value.
const defaultFormat = "%Y-%m-%dT%H:%M:%S%z"

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags. Only one command runs per invocation, so commands share
	// the flag targets they have in common.
	color      = colorAuto
	atTimezone string
	format     string
	prec       = precision.Secs
	order      converter.Order
	add        string
	truncate   string
	jobs       int
)

var rootCmd = &cobra.Command{
	Use:   "epc",
	Short: "Work with epoch timestamps",
	Long: `epc converts between Unix epoch timestamps and datetime strings.

Running epc with no subcommand prints the current time ("epc current").

Format strings are built from %-escaped specifiers:
  %Y    4-digit year              %M    minute (00-59)
  %m    month (01-12)             %S    second (00-60)
  %d    day (01-31)               %<N>f N sub-second digits (e.g. %3f)
  %H    hour (00-23)              %z    offset +HHMM
  %%    literal percent           %:z   offset +HH:MM

Examples:
  epc
  epc -t=America/New_York -f
  epc convert 1679258022 2023-03-19T16:36:26-0400
  epc convert -f="%Y-%m-%d %H:%M:%S%:z" "2023-07-15 14:30:45+02:00"
  epc delta 1679258022 1679258186
  epc timezone "America/**"`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    runCurrent,
}

func init() {
	rootCmd.PersistentFlags().Var(&color, "color",
		"colorize output: auto, always, never")
	addCurrentFlags(rootCmd)
	rootCmd.AddCommand(currentCmd, convertCmd, deltaCmd, timezoneCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// addTimezoneFlag registers -t; passing it alone selects the system zone.
func addTimezoneFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&atTimezone, "at-timezone", "t", "",
		"convert to the given IANA timezone (omit value for the system timezone; default UTC)")
	cmd.Flags().Lookup("at-timezone").NoOptDefVal = "local"
}

// addFormatFlags registers -f and -p; passing -f alone uses defaultFormat.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&format, "format", "f", "",
		"format to parse and print date strings with (omitting retains timestamps)")
	cmd.Flags().Lookup("format").NoOptDefVal = defaultFormat
	cmd.Flags().VarP(&prec, "precision", "p",
		"precision timestamps are treated as: weeks, days, hours, mins, secs, millis, nanos")
}

func addOrderFlag(cmd *cobra.Command) {
	cmd.Flags().VarP(&order, "order", "o",
		"order to print multiple values in: asc, dsc")
}

func addAddFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&add, "add", "a", "",
		`duration to add to all times, e.g. "3w5d2h" (can be negative: -a="-1h")`)
}

func addJobsFlag(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent parses")
}

func validateJobs(cmd *cobra.Command, args []string) error {
	if jobs < 1 || jobs > 100 {
		return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
	}
	return nil
}

// parseAdd parses the --add flag, returning nil when it was not set.
func parseAdd() (*hduration.HDuration, error) {
	if add == "" {
		return nil, nil
	}
	h, err := hduration.Parse(add)
	if err != nil {
		return nil, fmt.Errorf("invalid --add: %w", err)
	}
	return h, nil
}

func colorize() bool {
	switch color {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	terminal := term.FromEnv()
	return terminal.IsColorEnabled()
}
