package tools

import (
	"github.com/rs/zerolog"

	"github.com/fstarlabs/agent-tools/internal/config"
	"github.com/fstarlabs/agent-tools/internal/verifier"
)

// NewRegistry builds the name→Tool dispatch table the hosting runtime
// indexes by model-emitted tool-call names. Populated once at startup from
// configuration; tools are plain interface values, not a class hierarchy.
func NewRegistry(cfg *config.Config, logger zerolog.Logger) map[string]Tool {
	client := verifier.NewClient(
		verifier.WithBaseURL(cfg.Verifier.Host),
		verifier.WithTimeout(cfg.Verifier.Timeout),
		verifier.WithLogger(logger),
	)
	fstar := NewFStarExecutionTool(client, logger)
	list := NewListTool(fstar.Descriptor())
	return map[string]Tool{
		fstar.Descriptor().Name: fstar,
		list.Descriptor().Name:  list,
	}
}
