package matcher

import (
	"github.com/viant/parsly"
)

type integer struct{}

// Match matches [0-9]+ not followed by a letter or a dot
func (m *integer) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	for i := cursor.Pos; i < cursor.InputSize && isDigit(input[i]); i++ {
		matched++
	}
	if end := cursor.Pos + matched; matched > 0 && end < cursor.InputSize && (isLetter(input[end]) || input[end] == '.') {
		return 0
	}
	return matched
}

// NewInteger creates unsigned integer matcher
func NewInteger() parsly.Matcher {
	return &integer{}
}
