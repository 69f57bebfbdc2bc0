package compiler

import (
	"fmt"
	"github.com/viant/ddlx/compiler/dqdl"
	"github.com/viant/ddlx/compiler/pydeequ"
	"github.com/viant/ddlx/compiler/pyspark"
	"strings"
)

// Target represents compilation target language
type Target string

const (
	PyDeequ Target = pydeequ.Target
	DQDL    Target = dqdl.Target
	PySpark Target = pyspark.Target
)

// Targets returns supported targets
func Targets() []Target {
	return []Target{PyDeequ, DQDL, PySpark}
}

// ParseTarget returns target for case-insensitive name
func ParseTarget(name string) (Target, error) {
	candidate := Target(strings.ToLower(strings.TrimSpace(name)))
	for _, target := range Targets() {
		if target == candidate {
			return target, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTarget, name)
}
