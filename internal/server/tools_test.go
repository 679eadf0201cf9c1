package server

import (
	"testing"

	"github.com/ironsheep/image-filters-mcp/internal/filter"
)

var expectedTools = []string{
	"image_load",
	"image_dimensions",
	"image_sample_color",
	"image_sample_window",
	"image_grayscale",
	"image_gradient_horizontal",
	"image_gradient_vertical",
	"image_edge_detect",
	"image_max_range",
	"image_compose",
	"image_filter_pipeline",
}

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func requiredParams(t *testing.T, tool Tool) map[string]bool {
	t.Helper()
	required, ok := tool.InputSchema["required"].([]string)
	if !ok {
		t.Fatalf("%s: 'required' should be a string slice", tool.Name)
	}
	set := make(map[string]bool, len(required))
	for _, r := range required {
		set[r] = true
	}
	return set
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}

	toolMap := toolsByName()
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestGetToolDefinitions_EveryToolDispatches(t *testing.T) {
	s := New()
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			_, err := s.executeTool(tool.Name, []byte(`{}`))
			if err == nil {
				t.Fatal("expected a missing-argument error")
			}
			if got := err.Error(); got == "unknown tool: "+tool.Name {
				t.Errorf("tool %s is listed but not dispatched", tool.Name)
			}
		})
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}
			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || props == nil {
				t.Fatal("InputSchema properties should be a map")
			}
			for name := range requiredParams(t, tool) {
				if _, ok := props[name]; !ok {
					t.Errorf("required parameter %s has no property schema", name)
				}
			}
		})
	}
}

func TestToolDefinitions_RequiredParams(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"image_load", []string{"path"}},
		{"image_dimensions", []string{"path"}},
		{"image_sample_color", []string{"path", "x", "y"}},
		{"image_sample_window", []string{"path", "x", "y"}},
		{"image_grayscale", []string{"path"}},
		{"image_gradient_horizontal", []string{"path"}},
		{"image_gradient_vertical", []string{"path"}},
		{"image_edge_detect", []string{"path"}},
		{"image_max_range", []string{"path"}},
		{"image_compose", []string{"path1", "path2"}},
		{"image_filter_pipeline", []string{"path"}},
	}

	toolMap := toolsByName()
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := toolMap[tt.tool]
			if !ok {
				t.Fatalf("tool %s not found", tt.tool)
			}
			got := requiredParams(t, tool)
			if len(got) != len(tt.required) {
				t.Errorf("required: got %v, want %v", got, tt.required)
			}
			for _, r := range tt.required {
				if !got[r] {
					t.Errorf("should require '%s'", r)
				}
			}
		})
	}
}

func TestToolDefinitions_FilterToolsAcceptOutput(t *testing.T) {
	toolMap := toolsByName()
	for _, name := range []string{
		"image_grayscale", "image_gradient_horizontal", "image_gradient_vertical",
		"image_edge_detect", "image_max_range", "image_compose", "image_filter_pipeline",
	} {
		props := toolMap[name].InputSchema["properties"].(map[string]interface{})
		if _, ok := props["output"]; !ok {
			t.Errorf("%s: missing optional 'output' parameter", name)
		}
	}
}

func TestToolDefinitions_SampleWindowEnums(t *testing.T) {
	tool := toolsByName()["image_sample_window"]
	props := tool.InputSchema["properties"].(map[string]interface{})

	boundary := props["boundary"].(map[string]interface{})
	enum, ok := boundary["enum"].([]string)
	if !ok {
		t.Fatal("boundary should have enum")
	}
	for _, e := range enum {
		if _, err := filter.ParseBoundaryPolicy(e); err != nil {
			t.Errorf("boundary enum %q does not parse: %v", e, err)
		}
	}
	if len(enum) != 5 {
		t.Errorf("boundary enum: got %v, want 5 policies", enum)
	}
	if boundary["default"] != "stretch" {
		t.Errorf("boundary default: got %v, want stretch", boundary["default"])
	}

	kernel := props["kernel"].(map[string]interface{})
	for _, e := range kernel["enum"].([]string) {
		if _, ok := namedKernels[e]; !ok {
			t.Errorf("kernel enum %q has no kernel", e)
		}
	}

	for _, dim := range []string{"width", "height"} {
		if d := props[dim].(map[string]interface{})["default"]; d != 3 {
			t.Errorf("%s default: got %v, want 3", dim, d)
		}
	}
}

func TestToolDefinitions_PipelineFilterNames(t *testing.T) {
	tool := toolsByName()["image_filter_pipeline"]
	props := tool.InputSchema["properties"].(map[string]interface{})
	items := props["filters"].(map[string]interface{})["items"].(map[string]interface{})
	enum := items["enum"].([]string)

	names := filter.Names()
	if len(enum) != len(names) {
		t.Fatalf("filters enum: got %v, want %v", enum, names)
	}
	for i := range names {
		if enum[i] != names[i] {
			t.Errorf("filters enum: got %v, want %v", enum, names)
			break
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
