package nodefmt

import "fmt"

const defaultMaxDepth = 10000

type options struct {
	maxDepth int
}

// Option configures a parse call.
type Option func(*options) error

// MaxDepth returns an Option that sets the maximum nesting depth the
// parser accepts. This guards the call stack against pathologically
// deep input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("nodefmt: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
