package tools

import (
	"context"
	"encoding/json"
	"time"
)

// ListToolName is the model-facing name of the catalog tool.
const ListToolName = "tools/list"

const listToolDescription = "Shows the list of all available tools, with information about name and parameters."

// ListTool is a read-only directory of invocable tools. The catalog is
// serialized once at construction and never mutated afterwards; dynamic
// registration would need an explicit synchronized update mechanism this
// design deliberately omits.
type ListTool struct {
	descriptor Descriptor
	catalog    string
	instances  *instanceSet
}

// NewListTool builds the catalog from the given descriptors.
func NewListTool(entries ...Descriptor) *ListTool {
	if entries == nil {
		entries = []Descriptor{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		// Descriptors are plain string-keyed data; marshal cannot fail.
		panic("tools: marshal catalog: " + err.Error())
	}
	return &ListTool{
		descriptor: Descriptor{
			Name:        ListToolName,
			Description: listToolDescription,
			Parameters:  map[string]ParamSpec{},
			Required:    []string{},
		},
		catalog:   string(b),
		instances: newInstanceSet(),
	}
}

func (t *ListTool) Descriptor() Descriptor { return t.descriptor }

func (t *ListTool) Create(ctx context.Context, req CreateRequest) (string, error) {
	return t.instances.add(req.InstanceID, req.GroundTruth), nil
}

// Execute ignores parameters and extras and returns the static catalog.
func (t *ListTool) Execute(ctx context.Context, instanceID string, params, extras json.RawMessage) Result {
	emitToolExec(ListToolName, instanceID, time.Now(), "")
	return Result{Message: t.catalog, Score: 0, Metadata: emptyMetadata()}
}

func (t *ListTool) Release(ctx context.Context, instanceID string) error {
	t.instances.remove(instanceID)
	return nil
}
