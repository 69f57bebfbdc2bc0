package parser

import (
	"github.com/viant/ddlx/model"
	"strconv"
)

func (p *parser) parseRuleGroup() (*model.ColumnRuleFilter, error) {
	if _, err := p.expect(dashMatcher); err != nil {
		return nil, err
	}
	matched, err := p.expect(ruleNameTokens...)
	if err != nil {
		return nil, err
	}
	code := matched.Code
	var rule model.Rule
	switch code {
	case likeToken, regexToken, containsToken:
		argument, err := p.expectString()
		if err != nil {
			return nil, err
		}
		threshold, err := p.parseThreshold()
		if err != nil {
			return nil, err
		}
		switch code {
		case likeToken:
			rule = model.NewLikePattern(argument, threshold)
		case regexToken:
			rule = model.NewRegexPattern(argument, threshold)
		default:
			rule = model.NewContainsValue(argument, threshold)
		}
	case notEmptyToken:
		threshold, err := p.parseThreshold()
		if err != nil {
			return nil, err
		}
		rule = model.NewNotEmpty(threshold)
	case uniqueToken:
		rule = model.NewUniqueness()
	}
	filterString := ""
	if p.optional(whereMatcher) != nil {
		if filterString, err = p.expectString(); err != nil {
			return nil, err
		}
	}
	return model.NewColumnRuleFilter(filterString, rule), nil
}

func (p *parser) expectString() (string, error) {
	matched, err := p.expect(stringMatcher)
	if err != nil {
		return "", err
	}
	text := p.text(matched)
	return text[1 : len(text)-1], nil
}

func (p *parser) parseThreshold() (float64, error) {
	matched := p.optional(thresholdMatcher)
	if matched == nil {
		return model.DefaultThreshold, nil
	}
	return strconv.ParseFloat(p.text(matched), 64)
}
