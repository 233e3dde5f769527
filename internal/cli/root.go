// Package cli implements the forge command line tool: building rules from
// YAML definitions, validating .rbx files, and pushing, pulling and solving
// rules against a workspace.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulesmith/forge/api"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	BaseURL string
	APIKey  string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the forge CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "forge",
		Short: "Build, validate and solve decision rules",
		Long: `forge builds decision rules from YAML definitions, validates .rbx rule
files against the wire schema, and pushes, pulls and solves rules against a
hosted workspace.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", os.Getenv("FORGE_BASE_URL"), "workspace base URL (env FORGE_BASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.APIKey, "api-key", os.Getenv("FORGE_API_KEY"), "workspace API key (env FORGE_API_KEY)")

	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewPushCommand(opts))
	cmd.AddCommand(NewPullCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))

	return cmd
}

// Workspace builds an API client from the global flags. Commands that talk
// to the workspace call this and fail early when credentials are missing.
func (o *RootOptions) Workspace() (*api.Client, error) {
	if o.BaseURL == "" {
		return nil, NewExitError(ExitCommandError, "no workspace base URL: set --base-url or FORGE_BASE_URL")
	}
	if o.APIKey == "" {
		return nil, NewExitError(ExitCommandError, "no API key: set --api-key or FORGE_API_KEY")
	}
	clientOpts := []api.Option{}
	if o.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		clientOpts = append(clientOpts, api.WithLogger(logger))
	}
	return api.New(o.BaseURL, o.APIKey, clientOpts...), nil
}

// Formatter builds the output formatter for a command invocation.
func (o *RootOptions) Formatter(stdout, stderr io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    stdout,
		ErrWriter: stderr,
		Verbose:   o.Verbose,
	}
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
