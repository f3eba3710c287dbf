// epc is a command-line tool for converting between epoch timestamps and
// human-readable datetime strings.
package main

import (
	"fmt"
	"os"

	// Embed the timezone database so --at-timezone works on hosts
	// without a system zoneinfo directory.
	_ "time/tzdata"

	"github.com/dfontana/epc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
