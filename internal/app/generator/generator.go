package generator

//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"sewerlink/internal/app/errors"
	"sewerlink/internal/config"
	"sewerlink/internal/config/logger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// file pairs an embedded template with its output name
type file struct {
	template string
	name     func(opts Options) string
}

var files = []file{
	{template: "templates/sewerlink.yaml.tmpl", name: func(Options) string { return config.ConfigFile }},
	{template: "templates/fixtures.yaml.tmpl", name: func(opts Options) string { return opts.FixturesFile }},
}

// Options contains the values substituted into the generated files
type Options struct {
	Dir          string
	FixturesFile string
	Watch        bool
	LogLevel     string
}

// DefaultOptions returns sensible defaults for generation
func DefaultOptions() Options {
	return Options{
		Dir:          ".",
		FixturesFile: config.DefaultFixturesFile,
		Watch:        true,
		LogLevel:     config.DefaultLogLevel,
	}
}

// Generator writes a starter sewerlink.yaml and fixtures.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance printing dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return NewGeneratorWithOutput(os.Stdout, log)
}

// NewGeneratorWithOutput creates a generator printing dry runs to out
func NewGeneratorWithOutput(out io.Writer, log logger.Logger) Generator {
	return &generator{
		out: out,
		log: log,
	}
}

// Generate renders every template; existing files are kept unless force is set
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Dir == "" {
		opts.Dir = "."
	}

	if opts.FixturesFile == "" {
		opts.FixturesFile = config.DefaultFixturesFile
	}

	if !dryRun && !force {
		for _, f := range files {
			path := filepath.Join(opts.Dir, f.name(opts))
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%w: %s", errors.ErrFileAlreadyExists, path)
			}
		}
	}

	for _, f := range files {
		content, err := render(f.template, opts)
		if err != nil {
			return err
		}

		path := filepath.Join(opts.Dir, f.name(opts))

		if dryRun {
			fmt.Fprintf(g.out, "# %s\n%s\n", path, content)
			continue
		}

		if err := os.WriteFile(path, content, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		g.log.Info().Msgf("Generated %s", path)
	}

	return nil
}

// render executes one embedded template
func render(name string, opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(filepath.Base(name)).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
