package server

import "github.com/ironsheep/image-filters-mcp/internal/filter"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every single-image tool.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Optional file name to also save the result as PNG in the configured output directory. Any extension is replaced with .png",
	}
}

// filterTool builds the definition of a single-image filter tool.
func filterTool(name, description string) Tool {
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":   pathProperty(),
				"output": outputProperty(),
			},
			"required": []string{"path"},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Pixel Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate, including the packed ARGB value and the low-byte sample the filters read.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_window",
			Description: "Read a rectangular window of low-byte samples with a boundary policy deciding what lies past the image edge. Optionally apply a 3x3 gradient kernel to the window.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate of the window (may be negative)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate of the window (may be negative)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Window width in pixels. Default 3",
						"default":     3,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Window height in pixels. Default 3",
						"default":     3,
					},
					"boundary": map[string]interface{}{
						"type":        "string",
						"enum":        boundaryNames(),
						"description": "How out-of-bounds pixels are resolved. Default stretch",
						"default":     filter.Stretch.String(),
					},
					"kernel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"horizontal", "vertical"},
						"description": "Optional gradient kernel; requires a 3x3 window",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Filters
		filterTool("image_grayscale",
			"Convert an image to grayscale using BT.601 luminance weights. Returns base64-encoded PNG."),
		filterTool("image_gradient_horizontal",
			"Highlight horizontal edges: grayscale, then a 3x3 gradient kernel with stretched borders. Returns base64-encoded PNG."),
		filterTool("image_gradient_vertical",
			"Highlight vertical edges: grayscale, then a 3x3 gradient kernel with stretched borders. Returns base64-encoded PNG."),
		filterTool("image_edge_detect",
			"Detect edges as the saturating sum of the horizontal and vertical gradients. Returns base64-encoded PNG."),
		filterTool("image_max_range",
			"Stretch the contrast so the darkest sample maps to 0 and the brightest to 255. Uniform images are returned unchanged. Returns base64-encoded PNG."),
		{
			Name:        "image_compose",
			Description: "Add two images channel by channel, saturating at 255. The result covers the larger extent of both; missing pixels count as black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path1": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first image",
					},
					"path2": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second image",
					},
					"output": outputProperty(),
				},
				"required": []string{"path1", "path2"},
			},
		},
		{
			Name:        "image_filter_pipeline",
			Description: "Apply named filters in order, each consuming the previous result. With no filters, runs edge-detect then max-range.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"filters": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
							"enum": filter.Names(),
						},
						"description": "Filter names applied left to right",
					},
					"output": outputProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

func boundaryNames() []string {
	policies := []filter.BoundaryPolicy{filter.Wrap, filter.Stretch, filter.Black, filter.White, filter.Gray}
	names := make([]string, len(policies))
	for i, p := range policies {
		names[i] = p.String()
	}
	return names
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
