package model

// DefaultThreshold represents fraction of rows that must satisfy a rule when none is declared
const DefaultThreshold = 1.0

type (
	//Rule represents column level rule
	Rule interface {
		Kind() RuleKind
		Config() *ExtConfig
	}

	//RuleKind represents rule kind name
	RuleKind string

	//Frequency represents schedule frequency
	Frequency string

	//ExtConfig represents rule scheduling metadata
	ExtConfig struct {
		Name              string
		Description       string
		Priority          uint32
		Enabled           bool
		ScheduleEnabled   bool
		ScheduleFrequency Frequency
	}

	LikePattern struct {
		Pattern   string
		Threshold float64
		Ext       ExtConfig
	}

	RegexPattern struct {
		Pattern   string
		Threshold float64
		Ext       ExtConfig
	}

	ContainsValue struct {
		Value     string
		Threshold float64
		Ext       ExtConfig
	}

	NonNull struct {
		Threshold float64
		Ext       ExtConfig
	}

	NotEmpty struct {
		Threshold float64
		Ext       ExtConfig
	}

	Uniqueness struct {
		Ext ExtConfig
	}

	IsType struct {
		DataType DataType
		Ext      ExtConfig
	}
)

const (
	LikePatternKind   RuleKind = "LikePattern"
	RegexPatternKind  RuleKind = "RegexPattern"
	ContainsValueKind RuleKind = "ContainsValue"
	NonNullKind       RuleKind = "NonNull"
	NotEmptyKind      RuleKind = "NotEmpty"
	UniquenessKind    RuleKind = "Uniqueness"
	IsTypeKind        RuleKind = "IsType"

	Daily Frequency = "Daily"
)

// NewExtConfig creates empty rule metadata
func NewExtConfig() ExtConfig {
	return ExtConfig{ScheduleFrequency: Daily}
}

func (r *LikePattern) Kind() RuleKind     { return LikePatternKind }
func (r *LikePattern) Config() *ExtConfig { return &r.Ext }

func (r *RegexPattern) Kind() RuleKind     { return RegexPatternKind }
func (r *RegexPattern) Config() *ExtConfig { return &r.Ext }

func (r *ContainsValue) Kind() RuleKind     { return ContainsValueKind }
func (r *ContainsValue) Config() *ExtConfig { return &r.Ext }

func (r *NonNull) Kind() RuleKind     { return NonNullKind }
func (r *NonNull) Config() *ExtConfig { return &r.Ext }

func (r *NotEmpty) Kind() RuleKind     { return NotEmptyKind }
func (r *NotEmpty) Config() *ExtConfig { return &r.Ext }

func (r *Uniqueness) Kind() RuleKind     { return UniquenessKind }
func (r *Uniqueness) Config() *ExtConfig { return &r.Ext }

func (r *IsType) Kind() RuleKind     { return IsTypeKind }
func (r *IsType) Config() *ExtConfig { return &r.Ext }

// NewLikePattern creates like rule
func NewLikePattern(pattern string, threshold float64) *LikePattern {
	return &LikePattern{Pattern: pattern, Threshold: threshold, Ext: NewExtConfig()}
}

// NewRegexPattern creates regex rule
func NewRegexPattern(pattern string, threshold float64) *RegexPattern {
	return &RegexPattern{Pattern: pattern, Threshold: threshold, Ext: NewExtConfig()}
}

// NewContainsValue creates contains rule
func NewContainsValue(value string, threshold float64) *ContainsValue {
	return &ContainsValue{Value: value, Threshold: threshold, Ext: NewExtConfig()}
}

// NewNonNull creates completeness rule
func NewNonNull(threshold float64) *NonNull {
	return &NonNull{Threshold: threshold, Ext: NewExtConfig()}
}

// NewNotEmpty creates not empty rule
func NewNotEmpty(threshold float64) *NotEmpty {
	return &NotEmpty{Threshold: threshold, Ext: NewExtConfig()}
}

// NewUniqueness creates uniqueness rule
func NewUniqueness() *Uniqueness {
	return &Uniqueness{Ext: NewExtConfig()}
}

// NewIsType creates data type rule
func NewIsType(dataType DataType) *IsType {
	return &IsType{DataType: dataType, Ext: NewExtConfig()}
}

// Threshold returns rule threshold, rules without threshold return DefaultThreshold
func Threshold(rule Rule) float64 {
	switch actual := rule.(type) {
	case *LikePattern:
		return actual.Threshold
	case *RegexPattern:
		return actual.Threshold
	case *ContainsValue:
		return actual.Threshold
	case *NonNull:
		return actual.Threshold
	case *NotEmpty:
		return actual.Threshold
	}
	return DefaultThreshold
}
