package options

import (
	"context"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/viant/ddlx/config"
	"slices"
	"strings"
)

// Options represents command line options
type Options struct {
	Target       string `short:"t" long:"target" description:"compilation target" choice:"pydeequ" choice:"dqdl" choice:"pyspark" validate:"required,oneof=pydeequ dqdl pyspark"`
	InputString  string `short:"s" long:"input-string" description:"schema source text" validate:"required_without=InputFile,excluded_with=InputFile"`
	InputFile    string `short:"f" long:"input-file" description:"schema source location" validate:"required_without=InputString"`
	OutputFile   string `short:"o" long:"output-file" description:"output location, stdout is used when empty"`
	ConfigURL    string `short:"c" long:"config" description:"JSON or YAML config location"`
	TemplatesURL string `short:"T" long:"templates" description:"template override location"`
	LogLevel     string `short:"L" long:"log-level" description:"log level" choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR"`
	Version      bool   `short:"v" long:"version" description:"print version"`
}

// Init loads optional config, fills unset options from it and validates the result
func (o *Options) Init(ctx context.Context) error {
	if o.ConfigURL != "" {
		o.ConfigURL = ensureAbsPath(o.ConfigURL)
		cfg, err := config.NewConfigFromURL(ctx, o.ConfigURL)
		if err != nil {
			return err
		}
		o.Merge(cfg)
	}
	o.Target = strings.ToLower(o.Target)
	if o.LogLevel == "" {
		o.LogLevel = "INFO"
	}
	o.InputFile = ensureAbsPath(o.InputFile)
	o.OutputFile = ensureAbsPath(o.OutputFile)
	o.TemplatesURL = ensureAbsPath(o.TemplatesURL)
	return o.Validate()
}

// Merge fills unset options with config values
func (o *Options) Merge(cfg *config.Config) {
	if o.Target == "" {
		o.Target = cfg.Target
	}
	if o.TemplatesURL == "" {
		o.TemplatesURL = cfg.TemplatesURL
	}
	if o.OutputFile == "" {
		o.OutputFile = cfg.OutputURL
	}
	if o.LogLevel == "" {
		o.LogLevel = cfg.LogLevel
	}
}

// Validate validates options
func (o *Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return errors.Wrapf(config.ErrConfiguration, "%v", describe(err))
	}
	return nil
}

func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	var messages []string
	for _, fieldError := range validationErrors {
		message := fieldError.Error()
		switch fieldError.Field() {
		case "Target":
			message = "target was empty or unsupported"
		case "InputString", "InputFile":
			message = "input string or input file is required"
			if fieldError.Tag() == "excluded_with" {
				message = "input string and input file are mutually exclusive"
			}
		}
		if !slices.Contains(messages, message) {
			messages = append(messages, message)
		}
	}
	return strings.Join(messages, ", ")
}
