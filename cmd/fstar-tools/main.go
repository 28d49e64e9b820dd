package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fstarlabs/agent-tools/internal/config"
	"github.com/fstarlabs/agent-tools/internal/logging"
	"github.com/fstarlabs/agent-tools/tools"
)

// Set via ldflags at build time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "fstar-tools",
	Short: "Agent tool plugins for remote F* proof verification",
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("fstar-tools version %s\n", version))

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVerifyCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildRegistry loads config and wires the tool dispatch table.
func buildRegistry() (map[string]tools.Tool, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger := logging.New(cfg.Logging.Level)
	return tools.NewRegistry(cfg, logger), logger, nil
}
