package converter

import (
	"fmt"
	"slices"
	"time"
)

// Order controls how converted values are sorted before printing.
type Order string

const (
	// OrderNone preserves input order.
	OrderNone Order = ""
	// OrderAsc sorts ascending in time.
	OrderAsc Order = "asc"
	// OrderDsc sorts descending in time.
	OrderDsc Order = "dsc"
)

// String is used both by fmt.Print and by Cobra in help text.
func (o *Order) String() string {
	return string(*o)
}

// Set must have pointer receiver to validate and set the value.
func (o *Order) Set(v string) error {
	switch v {
	case "asc", "dsc":
		*o = Order(v)
		return nil
	default:
		return fmt.Errorf("must be either \"asc\" or \"dsc\"")
	}
}

// Type is only used in help text.
func (o *Order) Type() string {
	return "order"
}

// Apply sorts times in place. OrderNone leaves them untouched.
func (o Order) Apply(times []time.Time) {
	switch o {
	case OrderAsc:
		slices.SortStableFunc(times, time.Time.Compare)
	case OrderDsc:
		slices.SortStableFunc(times, func(a, b time.Time) int {
			return b.Compare(a)
		})
	}
}
