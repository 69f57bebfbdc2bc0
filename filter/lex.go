package filter

import (
	dmatcher "github.com/viant/ddlx/matcher"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken int = iota
	parenthesesToken
	notToken

	andToken
	orToken

	fieldToken
	numberToken
	stringToken

	equalToken
	notEqualToken
	greaterToken
	greaterEqualToken
	lessToken
	lessEqualToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var parenthesesMatcher = parsly.NewToken(parenthesesToken, "Parentheses", matcher.NewBlock('(', ')', '\\'))
var notMatcher = parsly.NewToken(notToken, "Not", matcher.NewByte('!'))

var andMatcher = parsly.NewToken(andToken, "&&", matcher.NewFragment("&&"))
var orMatcher = parsly.NewToken(orToken, "||", matcher.NewFragment("||"))

var fieldMatcher = parsly.NewToken(fieldToken, "Field", dmatcher.NewColumnIdentity())
var numberMatcher = parsly.NewToken(numberToken, "Number", dmatcher.NewNumber(true))
var stringMatcher = parsly.NewToken(stringToken, "String", dmatcher.NewStringMatcher('\''))

var equalMatcher = parsly.NewToken(equalToken, "=", matcher.NewByte('='))
var notEqualMatcher = parsly.NewToken(notEqualToken, "!=", matcher.NewFragment("!="))
var greaterMatcher = parsly.NewToken(greaterToken, ">", matcher.NewByte('>'))
var greaterEqualMatcher = parsly.NewToken(greaterEqualToken, ">=", matcher.NewFragment(">="))
var lessMatcher = parsly.NewToken(lessToken, "<", matcher.NewByte('<'))
var lessEqualMatcher = parsly.NewToken(lessEqualToken, "<=", matcher.NewFragment("<="))

var operatorTokens = []*parsly.Token{greaterEqualMatcher, lessEqualMatcher, notEqualMatcher, greaterMatcher, lessMatcher, equalMatcher}
var operandTokens = []*parsly.Token{numberMatcher, stringMatcher, fieldMatcher}
