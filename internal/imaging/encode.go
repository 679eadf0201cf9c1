package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FilterResult contains a filtered image encoded as base64 PNG.
type FilterResult struct {
	// Width of the output image in pixels.
	Width int `json:"width"`

	// Height of the output image in pixels. Composition may produce a
	// larger image than either input.
	Height int `json:"height"`

	// ImageBase64 is the output image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`

	// SavedPath is set when the result was also written to disk.
	SavedPath string `json:"saved_path,omitempty"`
}

// EncodeResult encodes img as base64 PNG.
//
// Returns an error if PNG encoding fails, which includes images with no
// pixels.
func EncodeResult(img image.Image) (*FilterResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &FilterResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
