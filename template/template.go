package template

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/velty"
	"sort"
	"strings"
	"sync"
)

//go:embed pydeequ/*.vm pyspark/*.vm
var defaults embed.FS

// ID represents template identifier, a slash separated path without extension
type ID string

const (
	//PyDeequColumnLevelCheck renders PyDeequ column level checks, expects ColumnLevelChecks variable
	PyDeequColumnLevelCheck ID = "pydeequ/column_level_check"
	//PySparkDataClass renders PySpark schema class, expects TableName and Columns variables
	PySparkDataClass ID = "pyspark/data_class"

	extension = ".vm"
)

var (
	//ErrNotFound is returned when template can not be located
	ErrNotFound = errors.New("template not found")
	//ErrSyntax is returned when template can not be compiled or executed
	ErrSyntax = errors.New("invalid template")
)

// Service renders velty templates, templates are loaded from BaseURL when set, embedded ones are used otherwise
type Service struct {
	baseURL string
	fs      afs.Service
	mux     sync.RWMutex
	sources map[ID]string
}

// Render renders template with supplied variables, line endings are normalized to \n
func (s *Service) Render(ctx context.Context, id ID, variables map[string]interface{}) (string, error) {
	source, err := s.source(ctx, id)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)

	planner := velty.New(velty.BufferSize(len(source)))
	for _, name := range names {
		if err = planner.DefineVariable(name, variables[name]); err != nil {
			return "", fmt.Errorf("%w: %v: failed to define %v: %v", ErrSyntax, id, name, err)
		}
	}
	exec, newState, err := planner.Compile([]byte(source))
	if err != nil {
		return "", fmt.Errorf("%w: %v: %v", ErrSyntax, id, err)
	}
	state := newState()
	for _, name := range names {
		if err = state.SetValue(name, variables[name]); err != nil {
			return "", fmt.Errorf("%w: %v: failed to set %v: %v", ErrSyntax, id, name, err)
		}
	}
	if err = exec.Exec(state); err != nil {
		return "", fmt.Errorf("%w: %v: %v", ErrSyntax, id, err)
	}
	return strings.ReplaceAll(state.Buffer.String(), "\r", ""), nil
}

func (s *Service) source(ctx context.Context, id ID) (string, error) {
	s.mux.RLock()
	source, ok := s.sources[id]
	s.mux.RUnlock()
	if ok {
		return source, nil
	}
	data, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	source = string(data)
	s.mux.Lock()
	s.sources[id] = source
	s.mux.Unlock()
	return source, nil
}

func (s *Service) load(ctx context.Context, id ID) ([]byte, error) {
	location := string(id) + extension
	if s.baseURL != "" {
		URL := url.Join(s.baseURL, location)
		if ok, _ := s.fs.Exists(ctx, URL); !ok {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, URL)
		}
		data, err := s.fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrNotFound, URL, err)
		}
		return data, nil
	}
	data, err := defaults.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return data, nil
}

// New creates template service
func New(options ...Option) *Service {
	ret := &Service{sources: map[ID]string{}}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}
