package dqdl

import (
	"context"
	"fmt"
	"github.com/viant/ddlx/model"
	"github.com/viant/ddlx/shared/logging"
	"strings"
)

// Target represents DQDL target name
const Target = "dqdl"

// Compiler lowers table definition into DQDL rule list
type Compiler struct {
	logger logging.Logger
}

// Compile returns one DQDL rule per line, every line is terminated with ",\n"
func (c *Compiler) Compile(ctx context.Context, table *model.TableDef) (string, error) {
	tableName := table.TableRef.String()
	sb := strings.Builder{}
	for _, column := range table.Columns {
		for _, group := range column.Rules {
			if group.HasFilter() {
				c.logger.Warnc(ctx, "custom filters are not supported for DQDL at the moment!", "column", column.Name, "filter", group.FilterString)
			}
			for _, rule := range group.Rules {
				compiled, err := CompileRule(rule, tableName, column.Name)
				if err != nil {
					return "", err
				}
				sb.WriteString(compiled)
				sb.WriteString(",\n")
			}
		}
	}
	return sb.String(), nil
}

// CompileRule lowers a single rule
func CompileRule(rule model.Rule, tableName, columnName string) (string, error) {
	switch actual := rule.(type) {
	case *model.RegexPattern:
		return fmt.Sprintf(`CustomSql "select count() from %v where %v like '%v' "`, tableName, columnName, actual.Pattern), nil
	case *model.LikePattern:
		return fmt.Sprintf(`CustomSql "select count() from %v where %v like '%v' "`, tableName, columnName, actual.Pattern), nil
	case *model.ContainsValue:
		return fmt.Sprintf(`CustomSql "select count() from %v where %v like '%%%v%%' "`, tableName, columnName, actual.Value), nil
	case *model.Uniqueness:
		return fmt.Sprintf(`IsPrimaryKey "%v"`, columnName), nil
	case *model.NotEmpty:
		return fmt.Sprintf(`ColumnLength "%v" > 0`, columnName), nil
	case *model.NonNull:
		return fmt.Sprintf(`IsComplete "%v"`, columnName), nil
	case *model.IsType:
		return fmt.Sprintf(`ColumnDataType "%v" = "%v"`, columnName, actual.DataType.Class), nil
	}
	return "", &model.LoweringError{Target: Target, Column: columnName, Rule: kindOf(rule), Reason: "unsupported rule"}
}

func kindOf(rule model.Rule) model.RuleKind {
	if rule == nil {
		return ""
	}
	return rule.Kind()
}

// New creates DQDL compiler
func New(logger logging.Logger) *Compiler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Compiler{logger: logger}
}
