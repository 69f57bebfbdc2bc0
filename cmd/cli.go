package cmd

import (
	"context"
	"fmt"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/ddlx/cmd/options"
	"github.com/viant/ddlx/compiler"
	"github.com/viant/ddlx/shared/logging"
	"github.com/viant/ddlx/template"
	"io"
	"os"
	"strings"
)

// RunApp runs command line compiler writing output to stdout
func RunApp(version string, args []string) error {
	return New(version, args, os.Stdout, os.Stderr)
}

// New parses arguments, compiles schema source and writes the result to output file or stdout
func New(version string, args []string, stdout, stderr io.Writer) error {
	opts, err := buildOptions(args)
	if err != nil || opts == nil {
		return err
	}
	if opts.Version {
		_, err = fmt.Fprintf(stdout, "ddlx: version: %v\n", version)
		return err
	}
	ctx := context.Background()
	if err = opts.Init(ctx); err != nil {
		return err
	}
	logger := logging.New(opts.LogLevel, stderr)
	fs := afs.New()
	source, err := loadSource(ctx, fs, opts)
	if err != nil {
		return err
	}
	ctx = logging.WithValue(ctx, logging.SourceKey, sourceName(opts))
	target, err := compiler.ParseTarget(opts.Target)
	if err != nil {
		return err
	}
	var templateOptions []template.Option
	if opts.TemplatesURL != "" {
		templateOptions = append(templateOptions, template.WithBaseURL(opts.TemplatesURL), template.WithFs(fs))
	}
	service := compiler.New(compiler.WithLogger(logger), compiler.WithTemplates(template.New(templateOptions...)))
	output, err := service.Compile(ctx, target, source)
	if err != nil {
		logger.Errorc(ctx, "compilation failed", "error", err.Error())
		return err
	}
	if opts.OutputFile == "" {
		_, err = io.WriteString(stdout, output)
		return err
	}
	if err = fs.Upload(ctx, opts.OutputFile, file.DefaultFileOsMode, strings.NewReader(output)); err != nil {
		return errors.Wrapf(err, "failed to write %v", opts.OutputFile)
	}
	logger.Infoc(ctx, "written output", "location", opts.OutputFile)
	return nil
}

func buildOptions(args []string) (*options.Options, error) {
	opts := &options.Options{}
	if _, err := flags.ParseArgs(opts, args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, err
	}
	return opts, nil
}

func loadSource(ctx context.Context, fs afs.Service, opts *options.Options) (string, error) {
	if opts.InputString != "" {
		return opts.InputString, nil
	}
	data, err := fs.DownloadWithURL(ctx, opts.InputFile)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %v", opts.InputFile)
	}
	return string(data), nil
}

func sourceName(opts *options.Options) string {
	if opts.InputFile != "" {
		return opts.InputFile
	}
	return "input-string"
}
