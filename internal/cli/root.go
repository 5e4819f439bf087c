package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Config is an explicit config file path. Empty means $SHIELDLAB_CONFIG
	// or the default location.
	Config string

	// Materials, Model and Database override the matching config keys
	// when set.
	Materials string
	Model     string
	Database  string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the shieldlab CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shieldlab",
		Short: "shieldlab - radiation shielding calculator",
		Long: `Compare gamma shielding materials by transmission, half- and
tenth-value layers, and check the floor load of the resulting walls.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("%w: format %q must be one of %v", errInvalidFlag, opts.Format, ValidFormats)
			}
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default $SHIELDLAB_CONFIG or ~/.config/shieldlab/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Materials, "materials", "", "CUE material dataset replacing the built-in materials")
	cmd.PersistentFlags().StringVar(&opts.Model, "model", "", "build-up model (linear|none)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the SQLite history database")

	// Add subcommands
	cmd.AddCommand(NewMaterialsCommand(opts))
	cmd.AddCommand(NewTransmissionCommand(opts))
	cmd.AddCommand(NewLoadCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewTargetCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors a command already reported through its OutputFormatter are not
// printed again; anything else (flag parsing, argument counts) goes to
// stderr as a command error.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCommandError
	}
	return GetExitCode(err)
}

// setupLogging installs the default slog logger. Library packages log at
// Debug level, so they are silent unless --verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}
