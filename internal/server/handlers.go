package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/image-filters-mcp/internal/filter"
	"github.com/ironsheep/image-filters-mcp/internal/imaging"
	"github.com/ironsheep/image-filters-mcp/internal/raster"
)

// maxWindowSamples bounds the pixel count of an image_sample_window request.
const maxWindowSamples = 1 << 20

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// invalidParamsError marks a tool failure caused by the caller's arguments
// rather than by the image or the filesystem.
type invalidParamsError struct {
	err error
}

func (e *invalidParamsError) Error() string { return e.err.Error() }
func (e *invalidParamsError) Unwrap() error { return e.err }

func invalidParams(format string, args ...interface{}) error {
	return &invalidParamsError{err: fmt.Errorf(format, args...)}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Bad arguments or an unknown tool return code -32602; any other tool
// failure returns code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tool call %v: %s", req.ID, params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		var bad *invalidParamsError
		if errors.As(err, &bad) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Runs the filter or query
//  5. Encodes the result, saving it when an output name is given
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Pixel Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_window":
		return s.handleImageSampleWindow(args)

	// Filters
	case "image_grayscale":
		return s.handleFilter("grayscale", args)
	case "image_gradient_horizontal":
		return s.handleFilter("gradient-horizontal", args)
	case "image_gradient_vertical":
		return s.handleFilter("gradient-vertical", args)
	case "image_edge_detect":
		return s.handleFilter("edge-detect", args)
	case "image_max_range":
		return s.handleFilter("max-range", args)
	case "image_compose":
		return s.handleImageCompose(args)
	case "image_filter_pipeline":
		return s.handleImageFilterPipeline(args)

	default:
		return nil, invalidParams("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating missing arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &invalidParamsError{err: err}
	}
	return nil
}

func requirePath(name, path string) error {
	if path == "" {
		return invalidParams("%s is required", name)
	}
	return nil
}

// finish encodes img and, when output is set, also saves it.
func (s *Server) finish(img *raster.Image, output string) (*imaging.FilterResult, error) {
	result, err := imaging.EncodeResult(img)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return result, nil
	}

	saved, err := s.writer.Write(output, img)
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("saved %s", saved)
	}
	result.SavedPath = saved
	return result, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath("path", a.Path); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath("path", a.Path); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Pixel Inspection Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath("path", a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Raster(a.Path)
	if err != nil {
		return nil, err
	}
	result, err := imaging.SampleColor(img, a.X, a.Y)
	if err != nil {
		return nil, &invalidParamsError{err: err}
	}
	return result, nil
}

type imageSampleWindowArgs struct {
	Path     string `json:"path"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Boundary string `json:"boundary"`
	Kernel   string `json:"kernel"`
}

// SampleWindowResult lists the low-byte samples of a window in row-major
// order, resolved through a boundary policy.
type SampleWindowResult struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Boundary string `json:"boundary"`
	Samples  []int  `json:"samples"`

	// Kernel and WeightedAverage are set when a kernel was applied.
	Kernel          string   `json:"kernel,omitempty"`
	WeightedAverage *float64 `json:"weighted_average,omitempty"`
}

var namedKernels = map[string]*filter.Kernel{
	"horizontal": filter.HorizontalKernel,
	"vertical":   filter.VerticalKernel,
}

func (s *Server) handleImageSampleWindow(args json.RawMessage) (interface{}, error) {
	var a imageSampleWindowArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath("path", a.Path); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = 3
	}
	if a.Height == 0 {
		a.Height = 3
	}
	if a.Width < 0 || a.Height < 0 ||
		a.Width > maxWindowSamples || a.Height > maxWindowSamples || a.Width*a.Height > maxWindowSamples {
		return nil, invalidParams("window %dx%d out of range", a.Width, a.Height)
	}
	if a.Boundary == "" {
		a.Boundary = filter.Stretch.String()
	}
	policy, err := filter.ParseBoundaryPolicy(a.Boundary)
	if err != nil {
		return nil, &invalidParamsError{err: err}
	}

	var kernel *filter.Kernel
	if a.Kernel != "" {
		k, ok := namedKernels[a.Kernel]
		if !ok {
			return nil, invalidParams("unknown kernel %q (want horizontal or vertical)", a.Kernel)
		}
		if k.Width() != a.Width || k.Height() != a.Height {
			return nil, invalidParams("kernel %s needs a %dx%d window, got %dx%d",
				a.Kernel, k.Width(), k.Height(), a.Width, a.Height)
		}
		kernel = k
	}

	img, err := s.cache.Raster(a.Path)
	if err != nil {
		return nil, err
	}

	samples := filter.SampleWindow(img, a.X, a.Y, a.Width, a.Height, policy)
	result := &SampleWindowResult{
		X:        a.X,
		Y:        a.Y,
		Width:    a.Width,
		Height:   a.Height,
		Boundary: policy.String(),
		Samples:  make([]int, len(samples)),
	}
	for i, v := range samples {
		result.Samples[i] = int(v)
	}

	if kernel != nil {
		avg, err := kernel.Apply(samples)
		if err != nil {
			return nil, err
		}
		result.Kernel = a.Kernel
		result.WeightedAverage = &avg
	}
	return result, nil
}

// === Filter Handlers ===

type filterArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

func (s *Server) handleFilter(name string, args json.RawMessage) (interface{}, error) {
	var a filterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath("path", a.Path); err != nil {
		return nil, err
	}
	img, err := s.cache.Raster(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := filter.Apply(name, img)
	if err != nil {
		return nil, err
	}
	return s.finish(out, a.Output)
}

type imageComposeArgs struct {
	Path1  string `json:"path1"`
	Path2  string `json:"path2"`
	Output string `json:"output"`
}

func (s *Server) handleImageCompose(args json.RawMessage) (interface{}, error) {
	var a imageComposeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath("path1", a.Path1); err != nil {
		return nil, err
	}
	if err := requirePath("path2", a.Path2); err != nil {
		return nil, err
	}
	img1, err := s.cache.Raster(a.Path1)
	if err != nil {
		return nil, err
	}
	img2, err := s.cache.Raster(a.Path2)
	if err != nil {
		return nil, err
	}
	return s.finish(filter.Compose(img1, img2), a.Output)
}

type imageFilterPipelineArgs struct {
	Path    string   `json:"path"`
	Filters []string `json:"filters"`
	Output  string   `json:"output"`
}

func (s *Server) handleImageFilterPipeline(args json.RawMessage) (interface{}, error) {
	var a imageFilterPipelineArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := requirePath("path", a.Path); err != nil {
		return nil, err
	}
	if len(a.Filters) == 0 {
		a.Filters = filter.DefaultPipeline
	}
	img, err := s.cache.Raster(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := filter.Pipeline(img, a.Filters...)
	var unknown *filter.UnknownFilterError
	if errors.As(err, &unknown) {
		return nil, &invalidParamsError{err: err}
	}
	if err != nil {
		return nil, err
	}
	return s.finish(out, a.Output)
}
