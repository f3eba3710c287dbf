package converter

import (
	"github.com/dfontana/epc/internal/hduration"
	"github.com/dfontana/epc/internal/precision"
)

// ConvertOptions contains all parameters for a convert run.
type ConvertOptions struct {
	Inputs    []string             // raw inputs, order-preserving
	Format    string               // input/output format ("" = stamps in/out)
	Timezone  string               // target zone ("" = UTC, "local" = system)
	Precision precision.Precision  // unit numeric stamps are measured in
	Order     Order                // output ordering
	Add       *hduration.HDuration // duration added to every value (nil = none)
	Jobs      int                  // maximum concurrent parses
}

// CurrentOptions contains all parameters for a current-time run.
type CurrentOptions struct {
	Format    string
	Timezone  string
	Precision precision.Precision
	Add       *hduration.HDuration
	Truncate  *precision.Precision // zero fields from this unit onward (nil = none)
}

// DeltaOptions contains all parameters for a delta run.
type DeltaOptions struct {
	Inputs    []string
	Format    string
	Precision precision.Precision
	Order     Order
	Structure Structure   // how the deltas are laid out
	DeltaAs   DeltaFormat // how each delta value is printed
	Jobs      int
}
