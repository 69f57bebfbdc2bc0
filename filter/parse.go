package filter

import (
	"fmt"
	"github.com/viant/parsly"
	"strings"
)

var operators = map[int]Operator{
	equalToken:        EqualTo,
	notEqualToken:     NotEqual,
	greaterToken:      Greater,
	greaterEqualToken: GreaterEqual,
	lessToken:         Less,
	lessEqualToken:    LessEqual,
}

// Parse parses filter expression, the returned tree keeps the nesting implied by parentheses
func Parse(expression string) (Condition, error) {
	text := strings.TrimSpace(expression)
	if text == "" {
		return nil, &Error{Expression: expression, Err: fmt.Errorf("empty expression")}
	}
	cursor := parsly.NewCursor("", []byte(text), 0)
	condition, err := parse(cursor)
	if err != nil {
		return nil, &Error{Expression: expression, Err: err}
	}
	return condition, nil
}

func parse(cursor *parsly.Cursor) (Condition, error) {
	var disjunction Or
	var conjunction And
	for {
		term, err := matchTerm(cursor)
		if err != nil {
			return nil, err
		}
		conjunction = append(conjunction, term)

		matched := cursor.MatchAfterOptional(whitespaceMatcher, andMatcher, orMatcher)
		switch matched.Code {
		case andToken:
			continue
		case orToken:
			disjunction = append(disjunction, unwrap(conjunction))
			conjunction = nil
			continue
		case parsly.EOF:
		default:
			return nil, cursor.NewError(andMatcher, orMatcher)
		}
		break
	}
	if len(disjunction) == 0 {
		return unwrap(conjunction), nil
	}
	return append(disjunction, unwrap(conjunction)), nil
}

func unwrap(conjunction And) Condition {
	if len(conjunction) == 1 {
		return conjunction[0]
	}
	return conjunction
}

func matchTerm(cursor *parsly.Cursor) (Condition, error) {
	matched := cursor.MatchAfterOptional(whitespaceMatcher, parenthesesMatcher, notMatcher, fieldMatcher)
	switch matched.Code {
	case parenthesesToken:
		return parseBlock(matched.Text(cursor))
	case notToken:
		matched = cursor.MatchOne(parenthesesMatcher)
		if matched.Code != parenthesesToken {
			return nil, cursor.NewError(parenthesesMatcher)
		}
		inner, err := parseBlock(matched.Text(cursor))
		if err != nil {
			return nil, err
		}
		return &Not{X: inner}, nil
	case fieldToken:
		return matchComparison(cursor, matched.Text(cursor))
	}
	return nil, cursor.NewError(parenthesesMatcher, notMatcher, fieldMatcher)
}

func parseBlock(block string) (Condition, error) {
	inner := strings.TrimSpace(block[1 : len(block)-1])
	if inner == "" {
		return nil, fmt.Errorf("empty parentheses")
	}
	return parse(parsly.NewCursor("", []byte(inner), 0))
}

func matchComparison(cursor *parsly.Cursor, field string) (Condition, error) {
	matched := cursor.MatchAfterOptional(whitespaceMatcher, operatorTokens...)
	operator, ok := operators[matched.Code]
	if !ok {
		return nil, cursor.NewError(operatorTokens...)
	}
	matched = cursor.MatchAfterOptional(whitespaceMatcher, operandTokens...)
	switch matched.Code {
	case fieldToken:
		return &FieldCondition{First: field, Operator: operator, Second: matched.Text(cursor)}, nil
	case numberToken, stringToken:
		return &ValueCondition{Field: field, Operator: operator, Value: matched.Text(cursor)}, nil
	}
	return nil, cursor.NewError(operandTokens...)
}
