package tools_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fstarlabs/agent-tools/tools"
)

func TestListTool_CatalogRoundTrip(t *testing.T) {
	fstar := newFStarTool(t, func(w http.ResponseWriter, r *http.Request) {})
	lister := tools.NewListTool(fstar.Descriptor())

	ctx := context.Background()
	id, err := lister.Create(ctx, tools.CreateRequest{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	res := lister.Execute(ctx, id, nil, nil)

	if res.Score != 0 {
		t.Errorf("score: got %v want 0", res.Score)
	}
	if len(res.Metadata) != 0 {
		t.Errorf("metadata: got %v want empty map", res.Metadata)
	}

	var catalog []tools.Descriptor
	if err := json.Unmarshal([]byte(res.Message), &catalog); err != nil {
		t.Fatalf("catalog is not valid JSON: %v\n%s", err, res.Message)
	}
	if len(catalog) != 1 {
		t.Fatalf("catalog entries: got %d want 1", len(catalog))
	}
	entry := catalog[0]
	if entry.Name != "tools/execute_fstar" {
		t.Errorf("entry name: got %q", entry.Name)
	}
	if len(entry.Required) != 1 || entry.Required[0] != "code" {
		t.Errorf("entry required: got %v want [code]", entry.Required)
	}
	if entry.Parameters["code"].Type != "string" {
		t.Errorf("entry code parameter: got %+v", entry.Parameters["code"])
	}

	if err := lister.Release(ctx, id); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestListTool_CatalogIsStable(t *testing.T) {
	fstar := newFStarTool(t, func(w http.ResponseWriter, r *http.Request) {})
	lister := tools.NewListTool(fstar.Descriptor())

	ctx := context.Background()
	id, _ := lister.Create(ctx, tools.CreateRequest{})
	first := lister.Execute(ctx, id, nil, nil)
	second := lister.Execute(ctx, id, json.RawMessage(`{"ignored": true}`), json.RawMessage(`{"also": "ignored"}`))
	if first.Message != second.Message {
		t.Error("catalog output changed between executions")
	}
}

func TestListTool_Descriptor(t *testing.T) {
	lister := tools.NewListTool()
	desc := lister.Descriptor()
	if desc.Name != "tools/list" {
		t.Errorf("name: got %q", desc.Name)
	}
	if len(desc.Parameters) != 0 {
		t.Errorf("parameters: got %v want none", desc.Parameters)
	}
	if len(desc.Required) != 0 {
		t.Errorf("required: got %v want none", desc.Required)
	}
}
