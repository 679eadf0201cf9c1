package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrExists is returned by Writer.Write when the target file is already
// present and overwriting is disabled.
var ErrExists = errors.New("output file already exists")

// Writer saves images as PNG files into a single output directory.
//
// The zero value writes into the current directory and never replaces an
// existing file.
type Writer struct {
	// Dir is the output directory. It is created on first write.
	Dir string

	// Overwrite allows replacing files that already exist.
	Overwrite bool
}

// Path returns the file Write would produce for name.
//
// Any extension on name is replaced with ".png", so "flower.jpg" becomes
// "flower.png". The name must be a plain file name without directories.
func (w *Writer) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid output name %q: must be a plain file name", name)
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name+".png"), nil
}

// Write encodes img as PNG and returns the path written.
//
// When Overwrite is false and the file exists, Write fails with an error
// wrapping ErrExists and leaves the file untouched. The image is encoded
// before the file is opened, so an encoding failure touches nothing on disk.
func (w *Writer) Write(name string, img image.Image) (string, error) {
	path, err := w.Path(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !w.Overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
