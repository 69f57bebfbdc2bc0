package matcher

import (
	"github.com/viant/parsly"
)

type identity struct {
	dash bool
}

// Match matches [A-Za-z_][A-Za-z0-9_]*, with '-' allowed after the first byte when dash is enabled
func (m *identity) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize || !isLetter(input[pos]) {
		return 0
	}
	matched++
	for i := pos + 1; i < cursor.InputSize; i++ {
		value := input[i]
		if isLetter(value) || isDigit(value) || (m.dash && value == '-') {
			matched++
			continue
		}
		break
	}
	return matched
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// NewIdentity creates a data type name matcher
func NewIdentity() parsly.Matcher {
	return &identity{}
}

// NewColumnIdentity creates a column name and filter field matcher, names can contain '-'
func NewColumnIdentity() parsly.Matcher {
	return &identity{dash: true}
}
