package cli

import (
	"github.com/spf13/cobra"
)

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build <definition.yaml>",
		Short: "Build a .rbx rule file from a YAML definition",
		Long: `Build reads a declarative YAML rule definition, runs it through the
builder's validation (field types, operator catalogs, argument checks), and
exports the resulting rule as a .rbx file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, args[0], outDir, cmd)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the .rbx file to")
	return cmd
}

func runBuild(rootOpts *RootOptions, path, outDir string, cmd *cobra.Command) error {
	out := rootOpts.Formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	def, err := LoadDefinition(path)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitCommandError, "loading definition", err)
	}
	out.VerboseLog("loaded definition %q (%d conditions)", def.Name, len(def.Conditions))

	rule, err := BuildRule(def)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitFailure, "building rule", err)
	}

	written, err := rule.Export(outDir)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitCommandError, "exporting rule", err)
	}
	return out.Success(written)
}
