package mcp

import (
	"encoding/json"
	"os"
)

// ToolDescriptor is one manifest entry in the tools/list response shape.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// manifestEntry mirrors the on-disk manifest, which uses snake_case for the
// schema key.
type manifestEntry struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// loadManifest reads the tool manifest fresh on every call; it is not
// cached. Any failure yields an empty tool list, never an error.
func loadManifest(path string) []ToolDescriptor {
	raw, err := os.ReadFile(path)
	if err != nil {
		return []ToolDescriptor{}
	}
	var entries []manifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []ToolDescriptor{}
	}
	tools := make([]ToolDescriptor, 0, len(entries))
	for _, e := range entries {
		schema := e.InputSchema
		if schema == nil {
			schema = map[string]any{}
		}
		tools = append(tools, ToolDescriptor{
			Name:        e.Name,
			Description: e.Description,
			InputSchema: schema,
		})
	}
	return tools
}
