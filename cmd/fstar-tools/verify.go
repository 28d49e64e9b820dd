package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fstarlabs/agent-tools/tools"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file.fst>",
		Short: "Submit an F* source file to the verification service",
		Long: `Runs one create/execute/release episode of the F* execution tool against
the configured verification service and prints the result message.
Reads from stdin when the file argument is "-".`,
		Args: cobra.ExactArgs(1),
		RunE: runVerify,
	}
	cmd.Flags().StringP("problem", "p", "", "Problem id the submission answers (required)")
	_ = cmd.MarkFlagRequired("problem")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	problemID, _ := cmd.Flags().GetString("problem")

	var (
		code []byte
		err  error
	)
	if args[0] == "-" {
		code, err = io.ReadAll(cmd.InOrStdin())
	} else {
		code, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}

	registry, _, err := buildRegistry()
	if err != nil {
		return err
	}
	fstar, ok := registry[tools.FStarToolName]
	if !ok {
		return fmt.Errorf("registry has no %q tool", tools.FStarToolName)
	}

	params, err := json.Marshal(map[string]string{"code": string(code)})
	if err != nil {
		return fmt.Errorf("encode parameters: %w", err)
	}
	extras, err := json.Marshal(map[string]any{
		"tools_kwargs": map[string]string{"example_name": problemID},
	})
	if err != nil {
		return fmt.Errorf("encode call context: %w", err)
	}

	ctx := cmd.Context()
	id, err := fstar.Create(ctx, tools.CreateRequest{})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	defer func() { _ = fstar.Release(ctx, id) }()

	res := fstar.Execute(ctx, id, params, extras)
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)

	if !strings.HasPrefix(res.Message, "Verification Success: True") {
		// Non-zero exit so scripts can branch on the verdict.
		os.Exit(1)
	}
	return nil
}
