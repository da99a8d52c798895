package claude

import "fmt"

// ParseError reports a configuration file that exists but is not valid JSON.
// When the underlying failure is a syntax error, Line and Column locate it
// (1-based); both are zero otherwise.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s: line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
