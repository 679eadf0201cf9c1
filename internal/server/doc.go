// Package server implements the MCP (Model Context Protocol) server for image filters.
//
// This package provides a JSON-RPC 2.0 server that exposes the raster filters
// through the MCP protocol, so a client can run grayscale conversion, gradient
// and edge detection, contrast stretching and composition on image files and
// inspect individual pixels or sample windows.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Pixel Inspection:
//   - image_sample_color: Get color at pixel
//   - image_sample_window: Read a window through a boundary policy
//
// Filters (each returns a base64 PNG and accepts an optional output name):
//   - image_grayscale
//   - image_gradient_horizontal
//   - image_gradient_vertical
//   - image_edge_detect
//   - image_max_range
//   - image_compose: saturating sum of two images
//   - image_filter_pipeline: named filters applied in order
//
// # Output Files
//
// When a filter tool is given an "output" name the result is also written
// as PNG into Config.OutputDir. Unless Config.Overwrite is set, an
// existing file is left untouched and the tool reports an error.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses:
//   - -32602: unknown tool or bad arguments (missing path, coordinates
//     outside the image, unknown boundary policy or filter name)
//   - -32000: tool execution failure (unreadable file, refused overwrite)
//   - data: the Go error string
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.NewWithConfig(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
