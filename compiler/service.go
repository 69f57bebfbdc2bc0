package compiler

import (
	"context"
	"errors"
	"fmt"
	"github.com/viant/ddlx/compiler/dqdl"
	"github.com/viant/ddlx/compiler/pydeequ"
	"github.com/viant/ddlx/compiler/pyspark"
	"github.com/viant/ddlx/model"
	"github.com/viant/ddlx/parser"
	"github.com/viant/ddlx/shared/logging"
	"github.com/viant/ddlx/template"
	"github.com/viant/gmetric"
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/provider"
	"time"
)

const metricLocation = "github.com/viant/ddlx/compiler"

var (
	//ErrUnsupportedTarget is returned for unknown target name
	ErrUnsupportedTarget = errors.New("unsupported target")
	//ErrLowering is returned when a validated rule has no target representation
	ErrLowering = model.ErrLowering
)

// Backend lowers validated table definition into target text
type Backend interface {
	Compile(ctx context.Context, table *model.TableDef) (string, error)
}

// Counter represents compilation performance counter
type Counter interface {
	Begin(started time.Time) counter.OnDone
}

// Service compiles schema source into target languages
type Service struct {
	logger    logging.Logger
	templates *template.Service
	metrics   *gmetric.Service
	backends  map[Target]Backend
	counters  map[Target]Counter
}

// Compile parses and validates source, then lowers it with the target backend
func (s *Service) Compile(ctx context.Context, target Target, source string) (string, error) {
	if _, ok := s.backends[target]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
	}
	ctx = logging.WithValue(ctx, logging.TargetKey, string(target))
	table, err := parser.Parse(source)
	if err != nil {
		s.logger.Debugc(ctx, "failed to parse source", "error", err.Error())
		return "", err
	}
	s.logger.Debugc(ctx, "parsed table", "table", table.TableRef.String(), "columns", len(table.Columns))
	return s.CompileTable(ctx, target, table)
}

// CompileTable lowers validated table definition with the target backend
func (s *Service) CompileTable(ctx context.Context, target Target, table *model.TableDef) (string, error) {
	backend, ok := s.backends[target]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
	}
	started := time.Now()
	if cnt, ok := s.counters[target]; ok {
		onDone := cnt.Begin(started)
		defer func() { onDone(time.Now()) }()
	}
	output, err := backend.Compile(ctx, table)
	if err != nil {
		return "", err
	}
	s.logger.Infoc(ctx, "compiled table", "table", table.TableRef.String(), "elapsed", time.Since(started).String())
	return output, nil
}

// New creates compiler service with the built-in backends
func New(options ...Option) *Service {
	ret := &Service{backends: map[Target]Backend{}, counters: map[Target]Counter{}}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = logging.Nop()
	}
	if ret.templates == nil {
		ret.templates = template.New()
	}
	if ret.metrics == nil {
		ret.metrics = gmetric.New()
	}
	defaults := map[Target]Backend{
		DQDL:    dqdl.New(ret.logger),
		PyDeequ: pydeequ.New(ret.templates),
		PySpark: pyspark.New(ret.templates),
	}
	for target, backend := range defaults {
		if _, ok := ret.backends[target]; !ok {
			ret.backends[target] = backend
		}
	}
	for target := range ret.backends {
		ret.counters[target] = ret.counter(target)
	}
	return ret
}

func (s *Service) counter(target Target) Counter {
	name := MetricName(target)
	if cnt := s.metrics.LookupOperation(name); cnt != nil {
		return cnt
	}
	return s.metrics.MultiOperationCounter(metricLocation, name, string(target)+" compilation performance", time.Millisecond, time.Minute, 2, provider.NewBasic())
}

// MetricName returns compilation counter name for the target
func MetricName(target Target) string {
	return string(target) + ".compile"
}
