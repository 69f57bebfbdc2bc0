package filter

import (
	"sort"
	"strings"
)

type (
	//Operator represents comparison operator
	Operator string

	//Condition represents filter condition tree node
	Condition interface {
		String() string
	}

	//And represents conjunction
	And []Condition

	//Or represents disjunction
	Or []Condition

	//Not represents negation
	Not struct {
		X Condition
	}

	//FieldCondition compares two fields
	FieldCondition struct {
		First    string
		Operator Operator
		Second   string
	}

	//ValueCondition compares field with a literal
	ValueCondition struct {
		Field    string
		Operator Operator
		Value    string
	}
)

const (
	Greater      Operator = ">"
	Less         Operator = "<"
	EqualTo      Operator = "="
	NotEqual     Operator = "!="
	GreaterEqual Operator = ">="
	LessEqual    Operator = "<="
)

func (a And) String() string {
	return join(a, " AND ")
}

func (o Or) String() string {
	return join(o, " OR ")
}

func (n *Not) String() string {
	return "NOT ( " + n.X.String() + " )"
}

func (c *FieldCondition) String() string {
	return "( " + c.First + " " + string(c.Operator) + " " + c.Second + " )"
}

func (c *ValueCondition) String() string {
	return "( " + c.Field + " " + string(c.Operator) + " " + c.Value + " )"
}

func join(conditions []Condition, separator string) string {
	sb := strings.Builder{}
	sb.WriteString("( ")
	for i, condition := range conditions {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(condition.String())
	}
	sb.WriteString(" )")
	return sb.String()
}

// Reduce splices nested conjunctions into their parent conjunction and nested
// disjunctions into their parent disjunction, it returns a new tree
func Reduce(condition Condition) Condition {
	switch actual := condition.(type) {
	case And:
		var result And
		for _, child := range actual {
			reduced := Reduce(child)
			if nested, ok := reduced.(And); ok {
				result = append(result, nested...)
				continue
			}
			result = append(result, reduced)
		}
		return result
	case Or:
		var result Or
		for _, child := range actual {
			reduced := Reduce(child)
			if nested, ok := reduced.(Or); ok {
				result = append(result, nested...)
				continue
			}
			result = append(result, reduced)
		}
		return result
	case *Not:
		return &Not{X: Reduce(actual.X)}
	}
	return condition
}

// Sort orders children of every conjunction and disjunction by their canonical text, it returns a new tree
func Sort(condition Condition) Condition {
	switch actual := condition.(type) {
	case And:
		return And(sortConditions(actual))
	case Or:
		return Or(sortConditions(actual))
	case *Not:
		return &Not{X: Sort(actual.X)}
	}
	return condition
}

func sortConditions(conditions []Condition) []Condition {
	type keyed struct {
		key       string
		condition Condition
	}
	items := make([]keyed, 0, len(conditions))
	for _, condition := range conditions {
		sorted := Sort(condition)
		items = append(items, keyed{key: sorted.String(), condition: sorted})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})
	result := make([]Condition, len(items))
	for i, item := range items {
		result[i] = item.condition
	}
	return result
}

// Equal returns true if both conditions render the same text once sorted
func Equal(a, b Condition) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Sort(a).String() == Sort(b).String()
}

// Canonical returns reduced, sorted condition text, empty for nil condition
func Canonical(condition Condition) string {
	if condition == nil {
		return ""
	}
	return Sort(Reduce(condition)).String()
}
