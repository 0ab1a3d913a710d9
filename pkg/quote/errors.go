package quote

import (
	"errors"
	"fmt"
)

// ErrUnreadable indicates the workbook could not be opened or parsed.
var ErrUnreadable = errors.New("unreadable workbook")

// ParseError wraps a workbook open/parse failure with the file path.
// It matches ErrUnreadable via errors.Is.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether the target is ErrUnreadable.
func (e *ParseError) Is(target error) bool {
	return target == ErrUnreadable
}
