package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quornian/envy/internal/config"
	"github.com/quornian/envy/internal/envy"
	"github.com/quornian/envy/internal/logging"
	"github.com/quornian/envy/internal/system"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // set by the linker

func main() {
	cmd := newRootCmd(system.NewEnvironment(), os.Stderr)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(env system.Environment, stdErr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envy [pattern]",
		Short: "envy - print environment variables, one value part per line",
		Long: "Print the environment variables whose name matches PATTERN (a glob, or a\n" +
			"regular expression with --regex), splitting each value on its separators.\n" +
			"Every flag can also be set with an ENVY_ prefixed environment variable,\n" +
			"e.g. ENVY_COLOR=never or ENVY_ONLY_MATCHING=true.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return reportError(stdErr, err)
			}

			cfg, err := config.Load(v, args)
			if err != nil {
				return reportError(stdErr, err)
			}

			slog.SetDefault(logging.NewLogger(stdErr, cfg.Verbose))

			return envy.NewEnvy(
				env,
				system.NewFileSystem(),
				system.NewRuntime(),
				system.NewTerminal(),
				stdErr,
				cmd.OutOrStdout(),
			).PrintVariables(cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return reportError(stdErr, err)
	})

	return cmd
}

func reportError(stdErr io.Writer, err error) error {
	color.New(color.FgRed).Fprintf(stdErr, "❌ invalid configuration: %v\n", err)
	return err
}
