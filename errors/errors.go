// Package errors defines the recoverable error types returned by the
// nodefmt parser.
package errors

import "fmt"

// ParseError describes a syntax error in the input, with the position
// at which it was detected.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nodefmt: parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}
