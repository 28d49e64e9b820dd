package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fstarlabs/agent-tools/tools"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog of available tools",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	registry, _, err := buildRegistry()
	if err != nil {
		return err
	}
	lister, ok := registry[tools.ListToolName]
	if !ok {
		return fmt.Errorf("registry has no %q tool", tools.ListToolName)
	}

	ctx := cmd.Context()
	id, err := lister.Create(ctx, tools.CreateRequest{})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	defer func() { _ = lister.Release(ctx, id) }()

	res := lister.Execute(ctx, id, nil, nil)
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}
