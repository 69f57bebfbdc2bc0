package model

import "fmt"

// ColumnDef represents column definition
type ColumnDef struct {
	Name       string
	DataType   DataType
	NotNull    bool
	PrimaryKey bool
	Rules      []*ColumnRuleFilter
}

// NewColumnDef creates column with the implicit unconditional rule group
func NewColumnDef(name string, dataType DataType, notNull, primaryKey bool) *ColumnDef {
	ret := &ColumnDef{Name: name, DataType: dataType, NotNull: notNull || primaryKey, PrimaryKey: primaryKey}
	implicit := NewColumnRuleFilter("")
	if ret.NotNull {
		implicit.Rules = append(implicit.Rules, NewNonNull(DefaultThreshold))
	}
	if ret.PrimaryKey {
		implicit.Rules = append(implicit.Rules, NewUniqueness())
	}
	if !dataType.Class.IsDateLike() {
		implicit.Rules = append(implicit.Rules, NewIsType(dataType))
	}
	ret.Rules = append(ret.Rules, implicit)
	return ret
}

// AddRules appends user declared rule groups
func (c *ColumnDef) AddRules(filters ...*ColumnRuleFilter) {
	c.Rules = append(c.Rules, filters...)
}

// Validate parses group filters, checks rules against column data class and merges identical filters
func (c *ColumnDef) Validate() error {
	for _, group := range c.Rules {
		if err := group.Parse(); err != nil {
			return &ValidationError{Column: c.Name, Reason: err.Error(), Err: err}
		}
		for _, rule := range group.Rules {
			if err := c.ValidateRule(rule); err != nil {
				return err
			}
		}
	}
	merged, err := CombineIdenticalFilters(c.Rules)
	if err != nil {
		return &ValidationError{Column: c.Name, Reason: err.Error(), Err: err}
	}
	c.Rules = merged
	return nil
}

// ValidateRule checks if rule can be applied to the column
func (c *ColumnDef) ValidateRule(rule Rule) error {
	switch actual := rule.(type) {
	case *LikePattern:
		if err := c.expectStringLike(rule); err != nil {
			return err
		}
		return c.expectThreshold(rule, actual.Threshold)
	case *RegexPattern:
		if err := c.expectStringLike(rule); err != nil {
			return err
		}
		return c.expectThreshold(rule, actual.Threshold)
	case *ContainsValue:
		if err := c.expectStringLike(rule); err != nil {
			return err
		}
		return c.expectThreshold(rule, actual.Threshold)
	case *NotEmpty:
		if err := c.expectStringLike(rule); err != nil {
			return err
		}
		return c.expectThreshold(rule, actual.Threshold)
	case *NonNull:
		return c.expectThreshold(rule, actual.Threshold)
	case *Uniqueness, *IsType:
		return nil
	}
	return &ValidationError{Column: c.Name, Reason: fmt.Sprintf("unsupported rule %T", rule)}
}

func (c *ColumnDef) expectStringLike(rule Rule) error {
	if c.DataType.Class.IsStringLike() {
		return nil
	}
	return &ValidationError{Column: c.Name, Rule: rule.Kind(), Reason: fmt.Sprintf("expected string like column, but had %v", c.DataType.Class)}
}

func (c *ColumnDef) expectThreshold(rule Rule, threshold float64) error {
	if threshold >= 0 && threshold <= 1 {
		return nil
	}
	return &ValidationError{Column: c.Name, Rule: rule.Kind(), Reason: fmt.Sprintf("threshold %v is outside of [0, 1]", threshold)}
}
