package path

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrParse = errors.New("path parse error")

	ErrEmpty        = errors.New("empty path")
	ErrNoRoot       = errors.New("path must start with '/'")
	ErrUnexpected   = errors.New("unexpected character")
	ErrUnterminated = errors.New("unterminated")
	ErrBadIndex     = errors.New("bad index")
	ErrTrailing     = errors.New("trailing '/'")
)

// ParseError reports a malformed path string. It carries the original input
// and the offset at which the grammar failed.
type ParseError struct {
	Path   string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	lo, hi := max(0, e.Offset-5), min(len(e.Path), e.Offset+5)
	sample := strconv.Quote(e.Path[lo:hi])
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("%s: %s: `...%s...` at offset %d in %q", ErrParse, e.Err, sample, e.Offset, e.Path)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func parseErr(p string, off int, err error) error {
	return &ParseError{Path: p, Offset: off, Err: err}
}
