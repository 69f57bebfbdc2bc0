package config

import (
	"context"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
	"path/filepath"
	"strings"
)

// ErrConfiguration is returned for invalid or missing configuration
var ErrConfiguration = errors.New("invalid configuration")

// Config represents compiler defaults loaded from JSON or YAML file
type Config struct {
	URL          string `json:",omitempty" yaml:",omitempty"`
	Target       string `json:",omitempty" yaml:",omitempty" validate:"omitempty,oneof=pydeequ dqdl pyspark"`
	TemplatesURL string `json:",omitempty" yaml:",omitempty"`
	OutputURL    string `json:",omitempty" yaml:",omitempty"`
	LogLevel     string `json:",omitempty" yaml:",omitempty" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// Init sets defaults
func (c *Config) Init() {
	c.Target = strings.ToLower(strings.TrimSpace(c.Target))
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
}

// Validate validates config
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrapf(ErrConfiguration, "%v", err)
	}
	return nil
}

// NewConfigFromURL loads config from URL, relative locations are resolved against config location
func NewConfigFromURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "failed to load config %v: %v", URL, err)
	}
	aMap := map[string]interface{}{}
	switch strings.ToLower(filepath.Ext(URL)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &aMap)
	default:
		err = json.Unmarshal(data, &aMap)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "failed to decode config %v: %v", URL, err)
	}
	cfg := &Config{}
	if err = toolbox.DefaultConverter.AssignConverted(cfg, aMap); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "failed to assign config %v: %v", URL, err)
	}
	cfg.URL = URL
	cfg.Init()
	cfg.normalizeURLs(baseDir(URL))
	return cfg, cfg.Validate()
}

func (c *Config) normalizeURLs(baseURL string) {
	if c.TemplatesURL != "" && url.IsRelative(c.TemplatesURL) {
		c.TemplatesURL = url.Join(baseURL, c.TemplatesURL)
	}
	if c.OutputURL != "" && url.IsRelative(c.OutputURL) {
		c.OutputURL = url.Join(baseURL, c.OutputURL)
	}
}

func baseDir(URL string) string {
	if strings.Contains(URL, "://") {
		parent, _ := url.Split(URL, "file")
		return parent
	}
	return filepath.Dir(URL)
}
