package envy

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/fatih/color"

	"github.com/quornian/envy/internal/config"
	"github.com/quornian/envy/internal/highlight"
	"github.com/quornian/envy/internal/model"
	"github.com/quornian/envy/internal/palette"
	"github.com/quornian/envy/internal/pathcheck"
	"github.com/quornian/envy/internal/render"
	"github.com/quornian/envy/internal/splitter"
	"github.com/quornian/envy/internal/system"
)

// Envy is an application that prints environment variables.
type Envy struct {
	env      system.Environment
	fs       system.FileSystem
	runtime  system.Runtime
	terminal system.Terminal
	stdErr   io.Writer
	stdOut   io.Writer
}

// NewEnvy creates a new Envy application.
func NewEnvy(
	env system.Environment,
	fs system.FileSystem,
	runtime system.Runtime,
	terminal system.Terminal,
	stdErr io.Writer,
	stdOut io.Writer,
) *Envy {
	return &Envy{
		env:      env,
		fs:       fs,
		runtime:  runtime,
		terminal: terminal,
		stdErr:   stdErr,
		stdOut:   stdOut,
	}
}

// Compile compiles the configuration into a pipeline writing to the standard
// output (or another defined io.Writer). It reports and returns an error if
// the name pattern, the search pattern or the separators are not valid. The
// terminal is probed here, once, when the color mode is auto.
func (e *Envy) Compile(cfg config.Config) (*Pipeline, error) {
	name, err := model.NewPattern(cfg.Pattern, cfg.Regex, cfg.IgnoreCase)
	if err != nil {
		e.reportError(err, "cannot use name pattern %q", cfg.Pattern)
		return nil, err
	}

	var search *model.RegexPattern
	if cfg.Search != "" {
		search, err = model.NewRegexPattern(cfg.Search, cfg.IgnoreCase)
		if err != nil {
			e.reportError(err, "cannot use search pattern %q", cfg.Search)
			return nil, err
		}
	}

	separators := cfg.Separators
	if separators == "" {
		separators = e.runtime.ListSeparators()
	}

	split, err := splitter.New(separators)
	if err != nil {
		e.reportError(err, "cannot use separators %q", separators)
		return nil, err
	}

	useColor := cfg.Color.UseColor(func() bool {
		return e.terminal.IsTerminal(e.stdOut)
	})
	pal := palette.Resolve(useColor, palette.ParseOverrides(cfg.Colors))

	slog.Default().Debug(
		"compiled pipeline",
		"pattern", name.String(),
		"search", cfg.Search,
		"separators", separators,
		"color", useColor,
	)

	return &Pipeline{
		name:         name,
		onlyMatching: cfg.OnlyMatching,
		palette:      pal,
		checker:      pathcheck.NewChecker(cfg.CheckPaths, e.fs, e.runtime),
		highlighter:  highlight.NewHighlighter(search, pal),
		renderer:     render.NewRenderer(e.stdOut, pal),
		splitter:     split,
	}, nil
}

// PrintVariables prints the environment variables selected by the
// configuration, sorted by name, to the standard output (or another defined
// io.Writer). Configuration errors are reported before the environment is
// read. It returns an error if the configuration is not valid or the output
// cannot be written.
func (e *Envy) PrintVariables(cfg config.Config) error {
	pipeline, err := e.Compile(cfg)
	if err != nil {
		return err
	}

	vars := e.env.Snapshot()

	names := make([]string, 0, len(vars))
	for name := range vars {
		if pipeline.Includes(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	logger := slog.Default().With("total", len(vars), "selected", len(names))
	logger.Debug("read environment")

	for _, name := range names {
		v, ok := pipeline.Process(name, vars[name])
		if !ok {
			logger.Debug("no value segment matched the search", "name", name)
			continue
		}

		if err = pipeline.Write(v); err != nil {
			return err
		}
	}

	return nil
}

// reportError prints a configuration error to the standard error (or another
// defined io.Writer).
func (e *Envy) reportError(err error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	color.New(color.FgRed).Fprintf(e.stdErr, "❌ %s: %v\n", msg, err)
	slog.Default().Debug(msg, "err", err)
}
