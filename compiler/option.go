package compiler

import (
	"github.com/viant/ddlx/shared/logging"
	"github.com/viant/ddlx/template"
	"github.com/viant/gmetric"
)

// Option represents compiler option
type Option func(s *Service)

// WithLogger sets logger
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTemplates sets template service used by templated backends
func WithTemplates(templates *template.Service) Option {
	return func(s *Service) {
		s.templates = templates
	}
}

// WithBackend registers or replaces backend for the target
func WithBackend(target Target, backend Backend) Option {
	return func(s *Service) {
		s.backends[target] = backend
	}
}

// WithMetrics sets metrics service, compilation counters are registered per target
func WithMetrics(metrics *gmetric.Service) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}
