package tools

import (
	"sort"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicToolParams converts a registry's descriptors into the tool list
// a host built on the Anthropic SDK passes with each message request.
// Output is name-sorted so request payloads stay deterministic.
func AnthropicToolParams(registry map[string]Tool) []anthropic.ToolUnionParam {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]anthropic.ToolUnionParam, 0, len(names))
	for _, name := range names {
		desc := registry[name].Descriptor()
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        desc.Name,
			Description: anthropic.String(desc.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: desc.Parameters,
				Required:   desc.Required,
			},
		}})
	}
	return out
}
