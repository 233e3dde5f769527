package cli

import (
	"github.com/spf13/cobra"

	"github.com/rulesmith/forge/forge"
)

// NewPullCommand creates the pull command.
func NewPullCommand(rootOpts *RootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:           "pull <rule-id>",
		Short:         "Export a rule from the workspace to a .rbx file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(rootOpts, args[0], outDir, cmd)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the .rbx file to")
	return cmd
}

func runPull(rootOpts *RootOptions, id, outDir string, cmd *cobra.Command) error {
	out := rootOpts.Formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	client, err := rootOpts.Workspace()
	if err != nil {
		out.Failure(err.Error())
		return err
	}

	rule, err := forge.FromWorkspace(cmd.Context(), client, id)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitFailure, "fetching rule", err)
	}
	out.VerboseLog("fetched rule %q (%d conditions)", rule.Name(), rule.ConditionCount())

	written, err := rule.Export(outDir)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitCommandError, "exporting rule", err)
	}
	return out.Success(written)
}
