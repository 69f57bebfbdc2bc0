package pydeequ

import (
	"context"
	"fmt"
	"github.com/viant/ddlx/model"
	"github.com/viant/ddlx/template"
	"strings"
)

// Target represents PyDeequ target name
const Target = "pydeequ"

type (
	//Renderer renders template with variables
	Renderer interface {
		Render(ctx context.Context, id template.ID, variables map[string]interface{}) (string, error)
	}

	//ColumnLevelCheck represents PyDeequ verification function for a column
	ColumnLevelCheck struct {
		ColumnName    string
		Description   string
		ExtColumnName string
		FilterChecks  []*ColumnLevelFilter
	}

	//ColumnLevelFilter represents a single PyDeequ Check built from a rule group
	ColumnLevelFilter struct {
		HasFilter   bool
		Checks      []string
		Filter      string
		Description string
	}

	//Compiler lowers table definition into PyDeequ check program
	Compiler struct {
		renderer Renderer
	}
)

// Compile renders column level checks for every column declaring at least one rule group
func (c *Compiler) Compile(ctx context.Context, table *model.TableDef) (string, error) {
	checks, err := NewColumnLevelChecks(table)
	if err != nil {
		return "", err
	}
	return c.renderer.Render(ctx, template.PyDeequColumnLevelCheck, map[string]interface{}{
		"TableName":         table.TableRef.String(),
		"ColumnLevelChecks": checks,
	})
}

// NewColumnLevelChecks builds column level checks, columns and groups without rules are omitted
func NewColumnLevelChecks(table *model.TableDef) ([]*ColumnLevelCheck, error) {
	var result []*ColumnLevelCheck
	for _, column := range table.Columns {
		check, err := NewColumnLevelCheck(table, column)
		if err != nil {
			return nil, err
		}
		if len(check.FilterChecks) == 0 {
			continue
		}
		result = append(result, check)
	}
	return result, nil
}

// NewColumnLevelCheck builds column level check
func NewColumnLevelCheck(table *model.TableDef, column *model.ColumnDef) (*ColumnLevelCheck, error) {
	tableName := table.TableRef.String()
	ret := &ColumnLevelCheck{
		ColumnName:    strings.ToLower(column.Name),
		Description:   fmt.Sprintf("Autogenerated check for column level rules for table %v and column %v", tableName, column.Name),
		ExtColumnName: tableName + "." + column.Name,
	}
	for _, group := range column.Rules {
		if len(group.Rules) == 0 {
			continue
		}
		filterCheck, err := NewColumnLevelFilter(tableName, column.Name, group)
		if err != nil {
			return nil, err
		}
		ret.FilterChecks = append(ret.FilterChecks, filterCheck)
	}
	return ret, nil
}

// NewColumnLevelFilter builds check for rule group, filtered group checks are restricted with where clause
func NewColumnLevelFilter(tableName, columnName string, group *model.ColumnRuleFilter) (*ColumnLevelFilter, error) {
	ret := &ColumnLevelFilter{
		HasFilter:   group.HasFilter(),
		Filter:      strings.TrimSpace(group.FilterString),
		Checks:      make([]string, 0, len(group.Rules)),
		Description: fmt.Sprintf("Autogenerated check for column level rules for table %v and column %v with filter %v", tableName, columnName, strings.TrimSpace(group.FilterString)),
	}
	where := ""
	if ret.HasFilter {
		where = fmt.Sprintf(`.where("%v")`, whereClause(group))
	}
	for _, rule := range group.Rules {
		check, err := CompileRule(rule, tableName, columnName)
		if err != nil {
			return nil, err
		}
		ret.Checks = append(ret.Checks, check+where)
	}
	return ret, nil
}

func whereClause(group *model.ColumnRuleFilter) string {
	if key, err := group.Key(); err == nil && key != "" {
		return key
	}
	return strings.TrimSpace(group.FilterString)
}

// New creates PyDeequ compiler
func New(renderer Renderer) *Compiler {
	return &Compiler{renderer: renderer}
}
