package ds

import (
	"fmt"
)

// ErrUnreachableCode marks a branch that only a corrupted value can reach.
// State carries that value when the caller has one.
type ErrUnreachableCode struct {
	Caller string
	State  any
}

func (r ErrUnreachableCode) Error() string {
	if r.State == nil {
		return fmt.Sprintf("%s unreachable code", r.Caller)
	}
	return fmt.Sprintf(`%s unreachable code: invalid state "%v"`, r.Caller, r.State)
}
