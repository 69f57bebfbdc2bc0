package model

import (
	"errors"
	"fmt"
)

var (
	//ErrValidation is returned when a rule can not be applied to a column
	ErrValidation = errors.New("rule validation failed")
	//ErrFilterNotParsed is returned when filter key is requested before the filter string was parsed
	ErrFilterNotParsed = errors.New("filter string was not parsed")
)

// ValidationError represents rule and column type mismatch
type ValidationError struct {
	Column string
	Rule   RuleKind
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("invalid column %v: %v", e.Column, e.Reason)
	}
	return fmt.Sprintf("invalid rule %v for column %v: %v", e.Rule, e.Column, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ErrLowering is returned when a validated rule has no representation in a target language
var ErrLowering = errors.New("rule can not be lowered")

// LoweringError represents rule that a backend can not express
type LoweringError struct {
	Target string
	Column string
	Rule   RuleKind
	Reason string
}

func (e *LoweringError) Error() string {
	return fmt.Sprintf("%v: can not lower %v for column %v: %v", e.Target, e.Rule, e.Column, e.Reason)
}

func (e *LoweringError) Is(target error) bool {
	return target == ErrLowering
}
