package pydeequ

import (
	"fmt"
	"github.com/viant/ddlx/model"
	"regexp"
	"strconv"
)

// CompileRule lowers a single rule into PyDeequ check builder call
func CompileRule(rule model.Rule, tableName, columnName string) (string, error) {
	switch actual := rule.(type) {
	case *model.IsType:
		return hasDataType(actual, columnName)
	case *model.RegexPattern:
		return fmt.Sprintf(`.hasPattern("%v", r"%v", lambda x: x >= %v, "%v")`,
			columnName, actual.Pattern, formatThreshold(actual.Threshold), constraintName("has_pattern", tableName, columnName)), nil
	case *model.ContainsValue:
		return fmt.Sprintf(`.hasPattern("%v", r"%v", lambda x: x >= %v, "%v")`,
			columnName, regexp.QuoteMeta(actual.Value), formatThreshold(actual.Threshold), constraintName("contains_value", tableName, columnName)), nil
	case *model.LikePattern:
		return fmt.Sprintf(`.satisfies("%v LIKE '%v'", "%v", lambda x: x >= %v)`,
			columnName, actual.Pattern, constraintName("like_pattern", tableName, columnName), formatThreshold(actual.Threshold)), nil
	case *model.Uniqueness:
		return fmt.Sprintf(`.isUnique("%v", "%v")`, columnName, constraintName("uniqueness", tableName, columnName)), nil
	case *model.NonNull:
		return fmt.Sprintf(`.isComplete("%v", "%v")`, columnName, constraintName("completeness", tableName, columnName)), nil
	case *model.NotEmpty:
		return fmt.Sprintf(`.satisfies("length(%v) > 0", "%v", lambda x: x >= %v)`,
			columnName, constraintName("not_empty", tableName, columnName), formatThreshold(actual.Threshold)), nil
	}
	var kind model.RuleKind
	if rule != nil {
		kind = rule.Kind()
	}
	return "", &model.LoweringError{Target: Target, Column: columnName, Rule: kind, Reason: "unsupported rule"}
}

func hasDataType(rule *model.IsType, columnName string) (string, error) {
	var dataType string
	class := rule.DataType.Class
	switch {
	case class.IsStringLike():
		dataType = "String"
	case class.IsFractionLike():
		dataType = "Fractional"
	case class.IsNumericLike():
		dataType = "Numeric"
	case class.IsBooleanLike():
		dataType = "Boolean"
	default:
		return "", &model.LoweringError{Target: Target, Column: columnName, Rule: rule.Kind(), Reason: "no constrainable data type for " + rule.DataType.String()}
	}
	return fmt.Sprintf(`.hasDataType("%v", ConstrainableDataTypes.%v, lambda x: x >= 1)`, columnName, dataType), nil
}

func constraintName(kind, tableName, columnName string) string {
	return "check_" + kind + "_" + tableName + "_" + columnName
}

func formatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold, 'f', -1, 64)
}
