package tools_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fstarlabs/agent-tools/internal/config"
	"github.com/fstarlabs/agent-tools/tools"
)

func testConfig() *config.Config {
	return &config.Config{
		Verifier: config.VerifierConfig{
			Host:    "http://localhost:8005",
			Timeout: 15 * time.Second,
		},
		Logging: config.LoggingConfig{Level: "warn"},
	}
}

func TestNewRegistry_ToolNames(t *testing.T) {
	registry := tools.NewRegistry(testConfig(), zerolog.Nop())

	want := []string{"tools/execute_fstar", "tools/list"}
	if len(registry) != len(want) {
		t.Fatalf("registry size: got %d want %d", len(registry), len(want))
	}
	for _, name := range want {
		tool, ok := registry[name]
		if !ok {
			t.Errorf("missing tool: %q", name)
			continue
		}
		if tool.Descriptor().Name != name {
			t.Errorf("registry key %q maps to descriptor %q", name, tool.Descriptor().Name)
		}
	}
}

func TestAnthropicToolParams(t *testing.T) {
	registry := tools.NewRegistry(testConfig(), zerolog.Nop())
	params := tools.AnthropicToolParams(registry)

	if len(params) != 2 {
		t.Fatalf("params: got %d want 2", len(params))
	}
	// Name-sorted: execute_fstar before list.
	first := params[0].OfTool
	if first == nil || first.Name != "tools/execute_fstar" {
		t.Fatalf("first param: got %+v", params[0])
	}
	if len(first.InputSchema.Required) != 1 || first.InputSchema.Required[0] != "code" {
		t.Errorf("required: got %v want [code]", first.InputSchema.Required)
	}
	second := params[1].OfTool
	if second == nil || second.Name != "tools/list" {
		t.Fatalf("second param: got %+v", params[1])
	}
}
