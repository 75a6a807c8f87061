package upload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// FromPath reads the file at path into memory and detects its
// content type from the leading bytes.
func FromPath(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", path, err)
	}

	return FromBytes(filepath.Base(path), b), nil
}

// FromBytes wraps b as a File named name, detecting its content type.
func FromBytes(name string, b []byte) File {
	return File{
		Name:        name,
		ContentType: mimetype.Detect(b).String(),
		Body:        bytes.NewReader(b),
		Size:        int64(len(b)),
	}
}
