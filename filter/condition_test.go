package filter_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ddlx/filter"
	"testing"
)

var (
	fooZero   = &filter.ValueCondition{Field: "foo", Operator: filter.EqualTo, Value: "0"}
	fooLtBar  = &filter.FieldCondition{First: "foo", Operator: filter.Less, Second: "bar"}
	fooEqBar  = &filter.FieldCondition{First: "foo", Operator: filter.EqualTo, Second: "bar"}
	fizzZero  = &filter.ValueCondition{Field: "fizz", Operator: filter.EqualTo, Value: "0"}
	fooGtFive = &filter.ValueCondition{Field: "foo", Operator: filter.Greater, Value: "5"}
)

func TestCondition_String(t *testing.T) {
	testCases := []struct {
		description string
		condition   filter.Condition
		expected    string
	}{
		{description: "value", condition: fooZero, expected: "( foo = 0 )"},
		{description: "field", condition: fooLtBar, expected: "( foo < bar )"},
		{description: "and", condition: filter.And{fooZero, fooLtBar}, expected: "( ( foo = 0 ) AND ( foo < bar ) )"},
		{description: "or", condition: filter.Or{fooZero, fooLtBar}, expected: "( ( foo = 0 ) OR ( foo < bar ) )"},
		{description: "not", condition: &filter.Not{X: fooEqBar}, expected: "NOT ( ( foo = bar ) )"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, testCase.condition.String(), testCase.description)
	}
}

func TestReduce(t *testing.T) {
	testCases := []struct {
		description string
		input       filter.Condition
		expected    filter.Condition
	}{
		{
			description: "nested and under not",
			input:       &filter.Not{X: filter.And{filter.And{fooZero, fooLtBar}, filter.And{fooEqBar, fizzZero}}},
			expected:    &filter.Not{X: filter.And{fooZero, fooLtBar, fooEqBar, fizzZero}},
		},
		{
			description: "or is kept under and",
			input:       &filter.Not{X: filter.And{filter.And{fooZero, fooLtBar}, filter.Or{fooEqBar, fizzZero}}},
			expected:    &filter.Not{X: filter.And{fooZero, fooLtBar, filter.Or{fooEqBar, fizzZero}}},
		},
		{
			description: "deep and",
			input:       filter.And{filter.And{fooZero, filter.And{filter.And{fooEqBar, fooLtBar}, fizzZero}}},
			expected:    filter.And{fooZero, fooEqBar, fooLtBar, fizzZero},
		},
		{
			description: "nested or",
			input:       filter.Or{filter.Or{fooZero, fooLtBar}, fizzZero},
			expected:    filter.Or{fooZero, fooLtBar, fizzZero},
		},
		{
			description: "leaf is unchanged",
			input:       fooZero,
			expected:    fooZero,
		},
	}
	for _, testCase := range testCases {
		reduced := filter.Reduce(testCase.input)
		assert.Equal(t, testCase.expected, reduced, testCase.description)
		assert.Equal(t, reduced, filter.Reduce(reduced), testCase.description+" idempotent")
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		description string
		a           filter.Condition
		b           filter.Condition
		expected    bool
	}{
		{description: "order insensitive and", a: filter.And{fooZero, fooLtBar}, b: filter.And{fooLtBar, fooZero}, expected: true},
		{description: "order insensitive nested", a: filter.Or{filter.And{fooZero, fooLtBar}, fizzZero}, b: filter.Or{fizzZero, filter.And{fooLtBar, fooZero}}, expected: true},
		{description: "and vs or", a: filter.And{fooZero, fooLtBar}, b: filter.Or{fooZero, fooLtBar}, expected: false},
		{description: "different leaves", a: filter.And{fooZero, fooGtFive}, b: filter.And{fooZero, fooLtBar}, expected: false},
		{description: "no de morgan", a: &filter.Not{X: filter.And{fooZero, fooLtBar}}, b: filter.Or{&filter.Not{X: fooZero}, &filter.Not{X: fooLtBar}}, expected: false},
		{description: "both nil", expected: true},
		{description: "one nil", a: fooZero, expected: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, filter.Equal(testCase.a, testCase.b), testCase.description)
	}
}

func TestCanonical(t *testing.T) {
	first, err := filter.Parse("foo = 0 &&  foo < bar || foo = bar && fizz = 0")
	require.NoError(t, err)
	second, err := filter.Parse("fizz = 0 && foo = bar || (foo < bar && foo = 0)")
	require.NoError(t, err)

	assert.Equal(t, filter.Canonical(first), filter.Canonical(second))
	assert.Equal(t, "( ( ( fizz = 0 ) AND ( foo = bar ) ) OR ( ( foo < bar ) AND ( foo = 0 ) ) )", filter.Canonical(first))

	reparsed, err := filter.Parse("(fizz = 0 && foo = bar) || (foo < bar && foo = 0)")
	require.NoError(t, err)
	assert.True(t, filter.Equal(filter.Reduce(first), filter.Reduce(reparsed)))
	assert.Equal(t, "", filter.Canonical(nil))
}
