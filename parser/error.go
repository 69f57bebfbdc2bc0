package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	//ErrUnknownToken is returned when source contains a character no token starts with
	ErrUnknownToken = errors.New("unknown token")
	//ErrSyntax is returned when a token is found where other tokens were expected
	ErrSyntax = errors.New("syntax error")
)

// ErrorKind represents syntax error kind
type ErrorKind int

const (
	//UnknownToken invalid character
	UnknownToken ErrorKind = iota
	//UnexpectedToken token found where other tokens were expected
	UnexpectedToken
	//InvalidDataType unknown type name or wrong number of size arguments
	InvalidDataType
)

// SyntaxError represents schema syntax error
type SyntaxError struct {
	Kind     ErrorKind
	Token    string
	Expected []string
	Reason   string
	//Line is 1-based line number
	Line    int
	Content string
	//Column is 0-based offset of the token within the line
	Column int
	Span   int
}

func (e *SyntaxError) Error() string {
	var header string
	switch e.Kind {
	case UnknownToken:
		header = fmt.Sprintf("UnknownToken in line %v: Invalid token %q", e.Line, e.Token)
	case InvalidDataType:
		header = fmt.Sprintf("SyntaxError in line %v: Invalid data type %q: %v", e.Line, e.Token, e.Reason)
	default:
		header = fmt.Sprintf("SyntaxError in line %v: Unrecognized token %q expected [%v]", e.Line, e.Token, quoteAll(e.Expected))
	}
	buffer := strings.Repeat(" ", len(strconv.Itoa(e.Line)))
	return header + "\n\t\tline " + strconv.Itoa(e.Line) + ": " + e.Content + "\n\t\t        " + buffer + e.Pointer()
}

// Pointer returns the caret line marking the token within the line content
func (e *SyntaxError) Pointer() string {
	span := e.Span
	if span < 1 {
		span = 1
	}
	return strings.Repeat(" ", e.Column) + strings.Repeat("~", span)
}

func (e *SyntaxError) Is(target error) bool {
	if e.Kind == UnknownToken {
		return target == ErrUnknownToken
	}
	return target == ErrSyntax
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, value := range values {
		quoted[i] = strconv.Quote(value)
	}
	return strings.Join(quoted, ", ")
}
