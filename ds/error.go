package ds

import (
	"fmt"
)

// ErrUnreachableCode marks a switch that ran out of known cases. Value is the
// input that got there.
type ErrUnreachableCode struct {
	Caller string
	Value  any
}

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code with value %v", r.Caller, r.Value)
}
