package matcher

import (
	"github.com/viant/parsly"
)

type number struct {
	signed bool
}

// Match matches -?[0-9]+(\.[0-9]*)?
func (m *number) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize {
		return 0
	}
	if m.signed && input[pos] == '-' {
		matched++
	}
	digits := 0
	for i := pos + matched; i < cursor.InputSize && isDigit(input[i]); i++ {
		digits++
	}
	if digits == 0 {
		return 0
	}
	matched += digits
	i := pos + matched
	if i < cursor.InputSize && input[i] == '.' {
		matched++
		for i++; i < cursor.InputSize && isDigit(input[i]); i++ {
			matched++
		}
	}
	if end := pos + matched; end < cursor.InputSize && isLetter(input[end]) {
		return 0
	}
	return matched
}

// NewNumber creates a literal number matcher
func NewNumber(signed bool) parsly.Matcher {
	return &number{signed: signed}
}
