package model

import (
	"fmt"
	"github.com/viant/ddlx/filter"
	"sort"
	"strings"
)

// ColumnRuleFilter groups rules sharing an optional gating condition
type ColumnRuleFilter struct {
	FilterString string
	Rules        []Rule
	Condition    filter.Condition
}

// NewColumnRuleFilter creates rule group
func NewColumnRuleFilter(filterString string, rules ...Rule) *ColumnRuleFilter {
	return &ColumnRuleFilter{FilterString: filterString, Rules: rules}
}

// HasFilter returns true if group declares gating condition
func (f *ColumnRuleFilter) HasFilter() bool {
	return strings.TrimSpace(f.FilterString) != ""
}

// Parse parses filter string into reduced condition
func (f *ColumnRuleFilter) Parse() error {
	if !f.HasFilter() {
		f.Condition = nil
		return nil
	}
	condition, err := filter.Parse(f.FilterString)
	if err != nil {
		return err
	}
	f.Condition = filter.Reduce(condition)
	return nil
}

// Key returns canonical filter text, empty for unconditional group
func (f *ColumnRuleFilter) Key() (string, error) {
	if f.HasFilter() && f.Condition == nil {
		return "", fmt.Errorf("%w: %v", ErrFilterNotParsed, f.FilterString)
	}
	return filter.Canonical(f.Condition), nil
}

// CombineIdenticalFilters merges groups with the same canonical filter, the result is ordered by the filter key
func CombineIdenticalFilters(filters []*ColumnRuleFilter) ([]*ColumnRuleFilter, error) {
	type keyed struct {
		key    string
		filter *ColumnRuleFilter
	}
	items := make([]keyed, 0, len(filters))
	for _, candidate := range filters {
		key, err := candidate.Key()
		if err != nil {
			return nil, err
		}
		items = append(items, keyed{key: key, filter: candidate})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})
	var result []*ColumnRuleFilter
	for i, item := range items {
		if i > 0 && items[i-1].key == item.key {
			last := result[len(result)-1]
			last.Rules = append(last.Rules, item.filter.Rules...)
			continue
		}
		result = append(result, &ColumnRuleFilter{
			FilterString: item.filter.FilterString,
			Rules:        append([]Rule{}, item.filter.Rules...),
			Condition:    item.filter.Condition,
		})
	}
	return result, nil
}
