package mcp

// ToolDefinition describes one callable tool for an MCP client, mirroring
// the shape termfx-morfx's tools.go exposes (name/description/JSON-Schema
// input) trimmed to the two operations this engine serves.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// sourceSchema is the shared {filename, language?, content, point} object
// every operation's request is built from, mirroring the Request envelope
// original_source/slicer/src/main.rs decodes from stdin.
func sourceSchema(description string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": description,
		"properties": map[string]any{
			"filename": map[string]any{
				"type":        "string",
				"description": "File name, used to guess the language when language is omitted",
			},
			"language": map[string]any{
				"type":        "string",
				"description": "Language tag (e.g. python, go, cpp); guessed from filename/content if omitted",
			},
			"content": map[string]any{
				"type":        "string",
				"description": "Full source text",
			},
			"point": map[string]any{
				"type":        "object",
				"description": "0-indexed cursor position",
				"properties": map[string]any{
					"row":    map[string]any{"type": "integer"},
					"column": map[string]any{"type": "integer"},
				},
				"required": []string{"row", "column"},
			},
		},
		"required": []string{"content", "point"},
	}
}

// GetToolDefinitions returns the tools this server exposes: slice and
// inline, named and shaped after spec.md §6's two public operations.
func GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "slice",
			Description: "Compute the backward or forward variable slice at a point in a source file",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source": sourceSchema("The file to slice"),
					"direction": map[string]any{
						"type":        "string",
						"enum":        []string{"backward", "forward"},
						"description": "backward: what this variable depends on. forward: what depends on it.",
					},
				},
				"required": []string{"source", "direction"},
			},
		},
		{
			Name:        "inline",
			Description: "Inline the function called at a point into its callsite",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source": sourceSchema("The file containing the call to inline"),
					"callee": sourceSchema("The file containing the callee's definition"),
				},
				"required": []string{"source", "callee"},
			},
		},
	}
}
