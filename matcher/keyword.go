package matcher

import (
	"github.com/viant/parsly"
)

type keyword struct {
	words [][]byte
}

// Match matches a case-insensitive word not followed by an identifier byte
func (m *keyword) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	pos := cursor.Pos
	for _, word := range m.words {
		end := pos + len(word)
		if end > cursor.InputSize {
			continue
		}
		if !equalFold(input[pos:end], word) {
			continue
		}
		if end < cursor.InputSize && (isLetter(input[end]) || isDigit(input[end])) {
			continue
		}
		return len(word)
	}
	return 0
}

func equalFold(candidate, word []byte) bool {
	for i := range word {
		if lower(candidate[i]) != lower(word[i]) {
			return false
		}
	}
	return true
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// NewKeyword creates a keyword matcher, longer alternatives should go first
func NewKeyword(words ...string) parsly.Matcher {
	ret := &keyword{}
	for _, word := range words {
		ret.words = append(ret.words, []byte(word))
	}
	return ret
}
