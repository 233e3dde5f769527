package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rulesmith/forge/forge"
)

// NewPushCommand creates the push command.
func NewPushCommand(rootOpts *RootOptions) *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:           "push <file.rbx>",
		Short:         "Import a .rbx rule file into the workspace",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(rootOpts, args[0], publish, cmd)
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "publish the rule after importing")
	return cmd
}

func runPush(rootOpts *RootOptions, path string, publish bool, cmd *cobra.Command) error {
	out := rootOpts.Formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	data, err := os.ReadFile(path)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitCommandError, "reading file", err)
	}
	rule, err := forge.FromJSON(data)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitFailure, "parsing rule", err)
	}

	client, err := rootOpts.Workspace()
	if err != nil {
		out.Failure(err.Error())
		return err
	}
	rule.SetWorkspace(client)

	ctx := cmd.Context()
	if publish {
		err = rule.Publish(ctx)
	} else {
		err = rule.Update(ctx)
	}
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitFailure, "pushing rule", err)
	}
	out.VerboseLog("pushed rule %s (publish=%v)", rule.ID(), publish)
	return out.Success(rule.Slug())
}
