package parser

import (
	"github.com/viant/ddlx/model"
	"github.com/viant/parsly"
	"strconv"
)

type parser struct {
	source string
	cursor *parsly.Cursor
	lines  Lines
}

func newParser(source string) *parser {
	return &parser{source: source, cursor: parsly.NewCursor("", []byte(source), 0)}
}

// Parse parses CREATE TABLE statement and returns validated table definition
func Parse(source string) (*model.TableDef, error) {
	p := newParser(source)
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	if err = table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// ParseColumn parses single column definition, rule groups are returned unvalidated
func ParseColumn(source string) (*model.ColumnDef, error) {
	p := newParser(source)
	column, err := p.parseColumn()
	if err != nil {
		return nil, err
	}
	return column, p.expectEOF()
}

// ParseDataType parses data type with optional size arguments
func ParseDataType(source string) (*model.DataType, error) {
	p := newParser(source)
	dataType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	return dataType, p.expectEOF()
}

func (p *parser) match(tokens ...*parsly.Token) *parsly.TokenMatch {
	return p.cursor.MatchAfterOptional(whitespaceMatcher, tokens...)
}

func (p *parser) expect(tokens ...*parsly.Token) (*parsly.TokenMatch, error) {
	pos := p.cursor.Pos
	matched := p.match(tokens...)
	for _, token := range tokens {
		if matched.Code == token.Code {
			return matched, nil
		}
	}
	p.cursor.Pos = pos
	return nil, p.newError(tokens...)
}

// optional matches one of tokens, the cursor is not moved when nothing matched
func (p *parser) optional(tokens ...*parsly.Token) *parsly.TokenMatch {
	pos := p.cursor.Pos
	matched := p.match(tokens...)
	for _, token := range tokens {
		if matched.Code == token.Code {
			return matched
		}
	}
	p.cursor.Pos = pos
	return nil
}

func (p *parser) expectEOF() error {
	pos := p.skipWhitespace(p.cursor.Pos)
	if pos >= p.cursor.InputSize {
		return nil
	}
	p.cursor.Pos = pos
	return p.newError()
}

func (p *parser) skipWhitespace(pos int) int {
	for pos < p.cursor.InputSize {
		switch p.cursor.Input[pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			pos++
			continue
		}
		break
	}
	return pos
}

func (p *parser) text(matched *parsly.TokenMatch) string {
	return matched.Text(p.cursor)
}

func (p *parser) newError(expected ...*parsly.Token) error {
	pos := p.skipWhitespace(p.cursor.Pos)
	names := make([]string, 0, len(expected))
	for _, token := range expected {
		names = append(names, token.Name)
	}
	if pos >= p.cursor.InputSize {
		return p.syntaxError(UnexpectedToken, pos, 1, "EOF", names)
	}
	span := p.lexiconMatch(pos)
	if span == 0 {
		return p.syntaxError(UnknownToken, pos, 1, string(p.cursor.Input[pos]), names)
	}
	end := min(pos+span, p.cursor.InputSize)
	return p.syntaxError(UnexpectedToken, pos, end-pos, string(p.cursor.Input[pos:end]), names)
}

func (p *parser) lexiconMatch(pos int) int {
	cursor := parsly.NewCursor("", p.cursor.Input, 0)
	cursor.Pos = pos
	for _, token := range lexicon {
		if matched := token.Matcher.Match(cursor); matched > 0 {
			return min(matched, p.cursor.InputSize-pos)
		}
	}
	return 0
}

func (p *parser) syntaxError(kind ErrorKind, pos, span int, token string, expected []string) *SyntaxError {
	if p.lines == nil {
		p.lines = NewLines(p.source)
	}
	index := p.lines.Index(pos)
	line := p.lines[index]
	column := pos - line.Start
	if column < 0 {
		column = 0
	}
	if column > len(line.Content) {
		column = len(line.Content)
	}
	return &SyntaxError{
		Kind:     kind,
		Token:    token,
		Expected: expected,
		Line:     index + 1,
		Content:  line.Content,
		Column:   column,
		Span:     span,
	}
}

func (p *parser) parseTable() (*model.TableDef, error) {
	if _, err := p.expect(createMatcher); err != nil {
		return nil, err
	}
	if _, err := p.expect(tableMatcher); err != nil {
		return nil, err
	}
	if p.optional(ifMatcher) != nil {
		if _, err := p.expect(notMatcher); err != nil {
			return nil, err
		}
		if _, err := p.expect(existsMatcher); err != nil {
			return nil, err
		}
	}
	table := &model.TableDef{}
	if err := p.parseTableRef(&table.TableRef); err != nil {
		return nil, err
	}
	if _, err := p.expect(openBraceMatcher); err != nil {
		return nil, err
	}
	for {
		column, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		table.Columns = append(table.Columns, column)
		matched, err := p.expect(commaMatcher, closeBraceMatcher)
		if err != nil {
			return nil, err
		}
		if matched.Code == closeBraceToken {
			break
		}
		if p.optional(closeBraceMatcher) != nil {
			break
		}
	}
	if _, err := p.expect(semicolonMatcher); err != nil {
		return nil, err
	}
	if err := p.expectEOF(); err != nil {
		return nil, err
	}
	return table, nil
}

func (p *parser) parseTableRef(ref *model.TableRef) error {
	matched, err := p.expect(identifierMatcher)
	if err != nil {
		return err
	}
	ref.Name = p.text(matched)
	if p.optional(dotMatcher) != nil {
		if matched, err = p.expect(identifierMatcher); err != nil {
			return err
		}
		ref.Schema = ref.Name
		ref.Name = p.text(matched)
	}
	if matched = p.optional(aliasMatcher); matched != nil {
		alias := p.text(matched)
		ref.Alias = alias[1 : len(alias)-1]
	}
	return nil
}

func (p *parser) parseColumn() (*model.ColumnDef, error) {
	matched, err := p.expect(identifierMatcher)
	if err != nil {
		return nil, err
	}
	name := p.text(matched)
	dataType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	primaryKey, notNull := false, false
	if p.optional(primaryMatcher) != nil {
		if _, err = p.expect(keyMatcher); err != nil {
			return nil, err
		}
		primaryKey = true
	}
	if p.optional(notMatcher) != nil {
		if _, err = p.expect(nullMatcher); err != nil {
			return nil, err
		}
		notNull = true
	}
	column := model.NewColumnDef(name, *dataType, notNull, primaryKey)
	if p.optional(openBraceMatcher) == nil {
		return column, nil
	}
	for {
		group, err := p.parseRuleGroup()
		if err != nil {
			return nil, err
		}
		column.AddRules(group)
		matched, err = p.expect(commaMatcher, closeBraceMatcher)
		if err != nil {
			return nil, err
		}
		if matched.Code == closeBraceToken {
			return column, nil
		}
		if p.optional(closeBraceMatcher) != nil {
			return column, nil
		}
	}
}

func (p *parser) parseDataType() (*model.DataType, error) {
	matched, err := p.expect(typeNameMatcher)
	if err != nil {
		return nil, err
	}
	start := p.skipWhitespace(matched.Offset)
	name := p.text(matched)
	class, ok := model.LookupDataClass(name)
	if !ok {
		return nil, p.dataTypeError(start, name, "unknown data type")
	}
	if class == model.Double && p.optional(precisionMatcher) != nil {
		class = model.DoublePrecision
	}
	var size []uint32
	if p.optional(openParenthesesMatcher) != nil {
		for {
			matched, err = p.expect(integerMatcher)
			if err != nil {
				return nil, err
			}
			value, err := strconv.ParseUint(p.text(matched), 10, 32)
			if err != nil {
				return nil, p.dataTypeError(start, name, err.Error())
			}
			size = append(size, uint32(value))
			if matched, err = p.expect(commaMatcher, closeParenthesesMatcher); err != nil {
				return nil, err
			}
			if matched.Code == closeParenthesesToken {
				break
			}
		}
	}
	dataType, err := model.NewDataType(class, size...)
	if err != nil {
		return nil, p.dataTypeError(start, p.source[start:p.cursor.Pos], err.Error())
	}
	return dataType, nil
}

func (p *parser) dataTypeError(pos int, token string, reason string) error {
	ret := p.syntaxError(InvalidDataType, pos, len(token), token, nil)
	ret.Reason = reason
	return ret
}
