// acfgen generates ACF field group JSON from Vue single-file components.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/phobologic/acfgen/internal/config"
	"github.com/phobologic/acfgen/internal/field"
	"github.com/phobologic/acfgen/internal/output"
	"github.com/phobologic/acfgen/internal/parse"
)

var version = "dev"

// Exit codes by failure kind.
const (
	exitError       = 1
	exitUsage       = 2
	exitSource      = 3
	exitMetadata    = 4
	exitUnmapped    = 5
	exitDestination = 6
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// usageError marks errors caused by invalid command line input.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return exitUsage
	case errors.Is(err, parse.ErrSourceNotFound), errors.Is(err, parse.ErrSourceUnreadable):
		return exitSource
	case errors.Is(err, parse.ErrMetadata):
		return exitMetadata
	case errors.Is(err, field.ErrUnmappedType):
		return exitUnmapped
	case errors.Is(err, output.ErrDestinationWrite):
		return exitDestination
	}
	return exitError
}

// app holds state shared by all subcommands.
type app struct {
	stderr     io.Writer
	configPath string
	verbosity  int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:           "acfgen",
		Short:         "Generate ACF field groups from Vue components",
		Long:          "acfgen reads the props of a Vue single-file component and writes a matching ACF field group JSON file.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("acfgen {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFile, "Path to config file")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Log more detail (repeatable)")

	root.AddCommand(newParseCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newInitCmd(a))
	return root
}

// loadConfig reads the config file. The default file is optional; a file
// named with --config must exist.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	required := cmd.Flags().Changed("config")
	cfg, err := config.LoadFile(a.configPath, required)
	if err != nil {
		return config.Config{}, usageError{err}
	}
	return cfg, nil
}

func (a *app) logger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(a.stderr, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(a.stderr, args)
	}, funcr.Options{Verbosity: a.verbosity}).WithName("acfgen")
}

// stringFlag returns the flag value if the user set it, otherwise fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
