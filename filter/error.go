package filter

import (
	"errors"
	"fmt"
)

// ErrSyntax is returned for malformed filter expressions
var ErrSyntax = errors.New("invalid filter expression")

// Error represents filter expression parse error
type Error struct {
	Expression string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to parse filter string: %v, %v", e.Expression, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrSyntax
}
