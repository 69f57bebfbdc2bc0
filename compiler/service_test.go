package compiler_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/viant/ddlx/compiler"
	"github.com/viant/ddlx/model"
	"github.com/viant/ddlx/parser"
	"github.com/viant/gmetric"
	"testing"
)

type tableNameBackend struct{}

func (u *tableNameBackend) Compile(ctx context.Context, table *model.TableDef) (string, error) {
	return "table:" + table.TableRef.String(), nil
}

func TestParseTarget(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    compiler.Target
		expectErr   bool
	}{
		{description: "pydeequ", input: "pydeequ", expected: compiler.PyDeequ},
		{description: "mixed case", input: "DQDL", expected: compiler.DQDL},
		{description: "padded", input: " pyspark ", expected: compiler.PySpark},
		{description: "unknown", input: "great_expectations", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := compiler.ParseTarget(testCase.input)
		if testCase.expectErr {
			assert.True(t, errors.Is(err, compiler.ErrUnsupportedTarget), testCase.description)
			continue
		}
		if assert.Nil(t, err, testCase.description) {
			assert.Equal(t, testCase.expected, actual, testCase.description)
		}
	}
}

func TestService_Compile(t *testing.T) {
	testCases := []struct {
		description string
		target      compiler.Target
		source      string
		expected    string
		contains    []string
		expectErr   error
	}{
		{
			description: "dqdl",
			target:      compiler.DQDL,
			source:      `CREATE TABLE Test { Id VARCHAR(10) PRIMARY KEY { -not_empty, -CONTAINS "test" } };`,
			expected: "IsComplete \"Id\",\n" +
				"IsPrimaryKey \"Id\",\n" +
				"ColumnDataType \"Id\" = \"VarChar\",\n" +
				"ColumnLength \"Id\" > 0,\n" +
				"CustomSql \"select count() from Test where Id like '%test%' \",\n",
		},
		{
			description: "pydeequ with filtered group",
			target:      compiler.PyDeequ,
			source:      `CREATE TABLE Test { Name VARCHAR(10) { -LIKE "A%" 0.5 WHERE "Price > 10 && Active = 1" }, Price INT(3) };`,
			contains: []string{
				`.satisfies("Name LIKE 'A%'", "check_like_pattern_Test_Name", lambda x: x >= 0.5).where("( ( Active = 1 ) AND ( Price > 10 ) )")`,
				`.hasDataType("Price", ConstrainableDataTypes.Numeric, lambda x: x >= 1)`,
			},
		},
		{
			description: "pyspark",
			target:      compiler.PySpark,
			source:      `CREATE TABLE sales.Orders { OrderId INT(10) PRIMARY KEY, Total DECIMAL(10, 2) };`,
			contains: []string{
				"class salesOrders:",
				`    order_id = "OrderId"`,
				`StructField("Total", DecimalType(10, 2), True),`,
			},
		},
		{
			description: "unsupported target",
			target:      compiler.Target("sql"),
			source:      `CREATE TABLE Test { Id INT(3) };`,
			expectErr:   compiler.ErrUnsupportedTarget,
		},
		{
			description: "syntax error",
			target:      compiler.DQDL,
			source:      `CREATE TABLE Test { Id INT(3) NULL };`,
			expectErr:   parser.ErrSyntax,
		},
		{
			description: "validation error",
			target:      compiler.DQDL,
			source:      `CREATE TABLE Test { Price FLOAT(3) { -REGEX "[0-9]+" } };`,
			expectErr:   model.ErrValidation,
		},
	}

	service := compiler.New()
	for _, testCase := range testCases {
		actual, err := service.Compile(context.Background(), testCase.target, testCase.source)
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.expected != "" {
			assert.Equal(t, testCase.expected, actual, testCase.description)
		}
		for _, fragment := range testCase.contains {
			assert.Contains(t, actual, fragment, testCase.description)
		}
	}
}

func TestWithBackend(t *testing.T) {
	service := compiler.New(compiler.WithBackend(compiler.DQDL, &tableNameBackend{}))
	actual, err := service.Compile(context.Background(), compiler.DQDL, `CREATE TABLE s.Test { Id INT(3) };`)
	if assert.Nil(t, err) {
		assert.Equal(t, "table:s.Test", actual)
	}
}

func TestWithMetrics(t *testing.T) {
	metrics := gmetric.New()
	service := compiler.New(compiler.WithMetrics(metrics))
	_, err := service.Compile(context.Background(), compiler.DQDL, `CREATE TABLE Test { Id INT(3) };`)
	assert.Nil(t, err)
	for _, target := range compiler.Targets() {
		assert.NotNil(t, metrics.LookupOperation(compiler.MetricName(target)), string(target))
	}
}
