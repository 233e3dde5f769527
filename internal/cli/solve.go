package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	var data string
	var file string

	cmd := &cobra.Command{
		Use:   "solve <slug>",
		Short: "Solve a published rule with a request payload",
		Long: `Solve posts a request payload to a published rule and prints the
response. The payload comes from --data (inline JSON) or --file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, args[0], data, file, cmd)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "request payload as inline JSON")
	cmd.Flags().StringVarP(&file, "file", "f", "", "request payload file")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	return cmd
}

func runSolve(rootOpts *RootOptions, slug, data, file string, cmd *cobra.Command) error {
	out := rootOpts.Formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	payload, err := readPayload(data, file)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitCommandError, "reading payload", err)
	}

	client, err := rootOpts.Workspace()
	if err != nil {
		out.Failure(err.Error())
		return err
	}

	result, err := client.Rules.Solve(cmd.Context(), slug, payload)
	if err != nil {
		out.Failure(err.Error())
		return WrapExitError(ExitFailure, "solving rule", err)
	}

	if rootOpts.Format == "json" {
		return out.Success(result)
	}
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return WrapExitError(ExitFailure, "encoding response", err)
	}
	return out.Success(string(encoded))
}

func readPayload(data, file string) (map[string]any, error) {
	var raw []byte
	switch {
	case data != "":
		raw = []byte(data)
	case file != "":
		var err error
		raw, err = os.ReadFile(file)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("no payload: pass --data or --file")
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	return payload, nil
}
