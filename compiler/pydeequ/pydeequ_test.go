package pydeequ

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ddlx/model"
	"github.com/viant/ddlx/template"
	"testing"
)

func TestCompileRule(t *testing.T) {
	testCases := []struct {
		description string
		rule        model.Rule
		table       string
		column      string
		expected    string
		expectErr   bool
	}{
		{description: "regex pattern", rule: model.NewRegexPattern(`^(?:\D*\d){10}$`, 0.5), table: "Test", column: "Id",
			expected: `.hasPattern("Id", r"^(?:\D*\d){10}$", lambda x: x >= 0.5, "check_has_pattern_Test_Id")`},
		{description: "like pattern", rule: model.NewLikePattern("%test%", 1), table: "Test", column: "Price",
			expected: `.satisfies("Price LIKE '%test%'", "check_like_pattern_Test_Price", lambda x: x >= 1)`},
		{description: "contains value", rule: model.NewContainsValue("test", 1), table: "Test", column: "Id",
			expected: `.hasPattern("Id", r"test", lambda x: x >= 1, "check_contains_value_Test_Id")`},
		{description: "contains value is quoted", rule: model.NewContainsValue("a.b", 0.9), table: "Test", column: "Id",
			expected: `.hasPattern("Id", r"a\.b", lambda x: x >= 0.9, "check_contains_value_Test_Id")`},
		{description: "uniqueness", rule: model.NewUniqueness(), table: "Test", column: "Id",
			expected: `.isUnique("Id", "check_uniqueness_Test_Id")`},
		{description: "non null", rule: model.NewNonNull(1), table: "Table", column: "Column",
			expected: `.isComplete("Column", "check_completeness_Table_Column")`},
		{description: "numeric type", rule: model.NewIsType(model.DataType{Class: model.Int, Size: []uint32{4}}), table: "Test", column: "Quantity",
			expected: `.hasDataType("Quantity", ConstrainableDataTypes.Numeric, lambda x: x >= 1)`},
		{description: "string type", rule: model.NewIsType(model.DataType{Class: model.VarChar, Size: []uint32{4}}), table: "Test", column: "Description",
			expected: `.hasDataType("Description", ConstrainableDataTypes.String, lambda x: x >= 1)`},
		{description: "fractional type", rule: model.NewIsType(model.DataType{Class: model.Float, Size: []uint32{4}}), table: "Test", column: "Price",
			expected: `.hasDataType("Price", ConstrainableDataTypes.Fractional, lambda x: x >= 1)`},
		{description: "boolean type", rule: model.NewIsType(model.DataType{Class: model.Bool}), table: "Test", column: "Available",
			expected: `.hasDataType("Available", ConstrainableDataTypes.Boolean, lambda x: x >= 1)`},
		{description: "not empty", rule: model.NewNotEmpty(1), table: "Test", column: "Value",
			expected: `.satisfies("length(Value) > 0", "check_not_empty_Test_Value", lambda x: x >= 1)`},
		{description: "date type", rule: model.NewIsType(model.DataType{Class: model.Date}), table: "Test", column: "Created", expectErr: true},
	}

	for _, testCase := range testCases {
		actual, err := CompileRule(testCase.rule, testCase.table, testCase.column)
		if testCase.expectErr {
			assert.True(t, errors.Is(err, model.ErrLowering), testCase.description)
			continue
		}
		if assert.Nil(t, err, testCase.description) {
			assert.Equal(t, testCase.expected, actual, testCase.description)
		}
	}
}

func TestNewColumnLevelChecks(t *testing.T) {
	filtered := model.NewColumnRuleFilter("Price > 1", model.NewLikePattern("%test%", 0.5))
	require.Nil(t, filtered.Parse())
	table := &model.TableDef{
		TableRef: model.TableRef{Name: "Test"},
		Columns: []*model.ColumnDef{
			{Name: "IdCol", DataType: model.DataType{Class: model.VarChar, Size: []uint32{3}}, Rules: []*model.ColumnRuleFilter{
				model.NewColumnRuleFilter("", model.NewNonNull(1), model.NewUniqueness()),
				filtered,
			}},
			{Name: "Empty", DataType: model.DataType{Class: model.Date}},
		},
	}

	checks, err := NewColumnLevelChecks(table)
	require.Nil(t, err)
	require.Equal(t, 1, len(checks))
	check := checks[0]
	assert.Equal(t, "idcol", check.ColumnName)
	assert.Equal(t, "Test.IdCol", check.ExtColumnName)
	assert.Equal(t, "Autogenerated check for column level rules for table Test and column IdCol", check.Description)
	require.Equal(t, 2, len(check.FilterChecks))

	assert.False(t, check.FilterChecks[0].HasFilter)
	assert.Equal(t, []string{
		`.isComplete("IdCol", "check_completeness_Test_IdCol")`,
		`.isUnique("IdCol", "check_uniqueness_Test_IdCol")`,
	}, check.FilterChecks[0].Checks)

	assert.True(t, check.FilterChecks[1].HasFilter)
	assert.Equal(t, "Price > 1", check.FilterChecks[1].Filter)
	assert.Equal(t, "Autogenerated check for column level rules for table Test and column IdCol with filter Price > 1", check.FilterChecks[1].Description)
	assert.Equal(t, []string{
		`.satisfies("IdCol LIKE '%test%'", "check_like_pattern_Test_IdCol", lambda x: x >= 0.5).where("( Price > 1 )")`,
	}, check.FilterChecks[1].Checks)
}

func TestCompiler_Compile(t *testing.T) {
	table := &model.TableDef{
		TableRef: model.TableRef{Name: "Test"},
		Columns: []*model.ColumnDef{
			model.NewColumnDef("Id", model.DataType{Class: model.Int, Size: []uint32{10}}, false, true),
			{Name: "Created", DataType: model.DataType{Class: model.Date}},
		},
	}
	compiler := New(template.New())
	actual, err := compiler.Compile(context.Background(), table)
	require.Nil(t, err)
	assert.Contains(t, actual, "def column_level_checks_id(data_frame: DataFrame, spark_session: SparkSession)")
	assert.Contains(t, actual, `"Autogenerated check for column level rules for table Test and column Id with filter "`)
	assert.Contains(t, actual, `.isComplete("Id", "check_completeness_Test_Id")`)
	assert.Contains(t, actual, `.isUnique("Id", "check_uniqueness_Test_Id")`)
	assert.Contains(t, actual, `.hasDataType("Id", ConstrainableDataTypes.Numeric, lambda x: x >= 1)`)
	assert.Contains(t, actual, `.withColumn("columns", lit("Test.Id"))`)
	assert.Contains(t, actual, `'column_level_checks_id': column_level_checks_id(data_frame, spark_session),`)
	assert.NotContains(t, actual, "column_level_checks_created")
	assert.NotContains(t, actual, "\r")
}

func TestCompiler_Compile_Layout(t *testing.T) {
	table := &model.TableDef{
		TableRef: model.TableRef{Name: "Test"},
		Columns: []*model.ColumnDef{
			model.NewColumnDef("Id", model.DataType{Class: model.Int, Size: []uint32{10}}, false, true),
		},
	}
	actual, err := New(template.New()).Compile(context.Background(), table)
	require.Nil(t, err)
	testCases := []struct {
		description string
		fragment    string
	}{
		{description: "two blank lines after imports", fragment: "VerificationResult\n\n\ndef column_level_checks_id("},
		{description: "check follows description", fragment: "with filter \")\n            ."},
		{description: "suite run follows add check", fragment: "        )\n        check_result = suite.run()"},
		{description: "two blank lines between functions", fragment: "None\n\n\ndef check_column_level("},
		{description: "checks dict", fragment: "    checks = {\n        'column_level_checks_id': column_level_checks_id(data_frame, spark_session),\n    }"},
	}
	for _, testCase := range testCases {
		assert.Contains(t, actual, testCase.fragment, testCase.description)
	}
	assert.NotContains(t, actual, "\n\n            .")
	assert.NotContains(t, actual, "\n\n        )")
	assert.NotContains(t, actual, "\n\n\n\n")
}

func TestCompiler_Compile_LoweringError(t *testing.T) {
	table := &model.TableDef{
		TableRef: model.TableRef{Name: "Test"},
		Columns: []*model.ColumnDef{
			{Name: "Created", DataType: model.DataType{Class: model.Date}, Rules: []*model.ColumnRuleFilter{
				model.NewColumnRuleFilter("", model.NewIsType(model.DataType{Class: model.Date})),
			}},
		},
	}
	_, err := New(template.New()).Compile(context.Background(), table)
	assert.True(t, errors.Is(err, model.ErrLowering))
}
