package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rulesmith/forge/forge"
	"github.com/rulesmith/forge/internal/ruleschema"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file.rbx>",
		Short: "Validate a .rbx rule file against the wire schema",
		Long: `Validate checks a .rbx file two ways: structurally against the embedded
CUE schema of the wire format, and semantically by round-tripping it through
the builder. Exit code 1 means the file was rejected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	out := rootOpts.Formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	data, err := os.ReadFile(path)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitCommandError, "reading file", err)
	}

	if err := ruleschema.Validate(data); err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitFailure, "schema validation failed", err)
	}
	out.VerboseLog("wire schema ok")

	rule, err := forge.FromJSON(data)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitFailure, "builder rejected rule", err)
	}
	out.VerboseLog("builder ok: %d conditions", rule.ConditionCount())

	return out.Success("valid: " + rule.Name())
}
