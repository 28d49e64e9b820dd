package tools

import (
	"context"
	"encoding/json"
)

// ParamSpec describes a single tool parameter in the descriptor's
// parameters mapping.
type ParamSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Descriptor is the schema surface a hosting runtime introspects before
// exposing a tool to the model. Immutable once constructed.
type Descriptor struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]ParamSpec `json:"parameters"`
	Required    []string             `json:"required"`
}

// CreateRequest carries the optional inputs to Tool.Create. An empty
// InstanceID asks the tool to generate a fresh one.
type CreateRequest struct {
	InstanceID  string
	GroundTruth string
	Extras      json.RawMessage
}

// Result is the triple every Execute call resolves to. Score carries no
// verification outcome for the tools in this module; pass/fail semantics
// live entirely in Message.
type Result struct {
	Message  string
	Score    float64
	Metadata map[string]any
}

// Tool is the lifecycle contract the hosting agent runtime drives:
// introspect the schema, create an instance per conversation episode,
// execute it zero or more times, then release it.
//
// Execute is total: it never returns an error. Contract violations,
// transport faults and protocol faults are all rendered into the Result
// message with score 0.
type Tool interface {
	Descriptor() Descriptor
	Create(ctx context.Context, req CreateRequest) (string, error)
	Execute(ctx context.Context, instanceID string, params, extras json.RawMessage) Result
	Release(ctx context.Context, instanceID string) error
}

// emptyMetadata returns a fresh non-nil metadata map so callers can range
// or marshal without nil checks.
func emptyMetadata() map[string]any { return map[string]any{} }
