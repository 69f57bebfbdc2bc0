package matcher

import (
	"github.com/viant/parsly"
)

type stringMatcher struct {
	quotes []byte
}

// Match matches quoted text, the content is taken verbatim so backslashes have no special meaning
func (m *stringMatcher) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= cursor.InputSize {
		return 0
	}
	quote := input[pos]
	if !m.isQuote(quote) {
		return 0
	}
	matched++
	for i := pos + matched; i < cursor.InputSize; i++ {
		matched++
		if input[i] == quote {
			return matched
		}
	}
	return 0
}

func (m *stringMatcher) isQuote(b byte) bool {
	for _, quote := range m.quotes {
		if quote == b {
			return true
		}
	}
	return false
}

// NewStringMatcher creates a string matcher accepting any of supplied quotes
func NewStringMatcher(quotes ...byte) parsly.Matcher {
	return &stringMatcher{quotes: quotes}
}
