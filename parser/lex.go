package parser

import (
	dmatcher "github.com/viant/ddlx/matcher"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken int = iota

	createToken
	tableToken
	ifToken
	notToken
	existsToken
	primaryToken
	keyToken
	nullToken
	whereToken
	precisionToken

	likeToken
	regexToken
	containsToken
	uniqueToken
	notEmptyToken

	identifierToken
	typeNameToken
	integerToken
	thresholdToken
	stringToken
	aliasToken

	dotToken
	commaToken
	openBraceToken
	closeBraceToken
	openParenthesesToken
	closeParenthesesToken
	semicolonToken
	dashToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())

var createMatcher = parsly.NewToken(createToken, "CREATE", dmatcher.NewKeyword("create"))
var tableMatcher = parsly.NewToken(tableToken, "TABLE", dmatcher.NewKeyword("table"))
var ifMatcher = parsly.NewToken(ifToken, "IF", dmatcher.NewKeyword("if"))
var notMatcher = parsly.NewToken(notToken, "NOT", dmatcher.NewKeyword("not"))
var existsMatcher = parsly.NewToken(existsToken, "EXISTS", dmatcher.NewKeyword("exists"))
var primaryMatcher = parsly.NewToken(primaryToken, "PRIMARY", dmatcher.NewKeyword("primary"))
var keyMatcher = parsly.NewToken(keyToken, "KEY", dmatcher.NewKeyword("key"))
var nullMatcher = parsly.NewToken(nullToken, "NULL", dmatcher.NewKeyword("null"))
var whereMatcher = parsly.NewToken(whereToken, "WHERE", dmatcher.NewKeyword("where"))
var precisionMatcher = parsly.NewToken(precisionToken, "PRECISION", dmatcher.NewKeyword("precision"))

var likeMatcher = parsly.NewToken(likeToken, "LIKE", dmatcher.NewKeyword("like"))
var regexMatcher = parsly.NewToken(regexToken, "REGEX", dmatcher.NewKeyword("regex"))
var containsMatcher = parsly.NewToken(containsToken, "CONTAINS", dmatcher.NewKeyword("contains"))
var uniqueMatcher = parsly.NewToken(uniqueToken, "unique", dmatcher.NewKeyword("unique"))
var notEmptyMatcher = parsly.NewToken(notEmptyToken, "not_empty", dmatcher.NewKeyword("not_empty"))

var identifierMatcher = parsly.NewToken(identifierToken, "Identifier", dmatcher.NewColumnIdentity())
var typeNameMatcher = parsly.NewToken(typeNameToken, "DataType", dmatcher.NewIdentity())
var integerMatcher = parsly.NewToken(integerToken, "Integer", dmatcher.NewInteger())
var thresholdMatcher = parsly.NewToken(thresholdToken, "Threshold", dmatcher.NewNumber(false))
var stringMatcher = parsly.NewToken(stringToken, "String", dmatcher.NewStringMatcher('"'))
var aliasMatcher = parsly.NewToken(aliasToken, "Alias", dmatcher.NewStringMatcher('"', '\''))

var dotMatcher = parsly.NewToken(dotToken, ".", matcher.NewByte('.'))
var commaMatcher = parsly.NewToken(commaToken, ",", matcher.NewByte(','))
var openBraceMatcher = parsly.NewToken(openBraceToken, "{", matcher.NewByte('{'))
var closeBraceMatcher = parsly.NewToken(closeBraceToken, "}", matcher.NewByte('}'))
var openParenthesesMatcher = parsly.NewToken(openParenthesesToken, "(", matcher.NewByte('('))
var closeParenthesesMatcher = parsly.NewToken(closeParenthesesToken, ")", matcher.NewByte(')'))
var semicolonMatcher = parsly.NewToken(semicolonToken, ";", matcher.NewByte(';'))
var dashMatcher = parsly.NewToken(dashToken, "-", matcher.NewByte('-'))

var ruleNameTokens = []*parsly.Token{likeMatcher, regexMatcher, containsMatcher, uniqueMatcher, notEmptyMatcher}

// lexicon lists every token the grammar knows, it is used to tell an unknown character from a misplaced token
var lexicon = []*parsly.Token{
	identifierMatcher, thresholdMatcher, aliasMatcher,
	dotMatcher, commaMatcher, openBraceMatcher, closeBraceMatcher, openParenthesesMatcher, closeParenthesesMatcher, semicolonMatcher, dashMatcher,
}
