package template

import "github.com/viant/afs"

// Option represents service option
type Option func(s *Service)

// WithBaseURL sets template location, templates are expected under <baseURL>/<id>.vm
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithFs sets storage service
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}
