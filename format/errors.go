package format

import "fmt"

// ParseError reports a document which could not be parsed.
type ParseError struct {
	// Origin describes where the document came from, such as a file name.
	Origin string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Origin == "" {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Origin, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failure to read or write a document.
type IOError struct {
	Op     string
	Origin string
	Err    error
}

func (e *IOError) Error() string {
	if e.Origin == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Origin, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
