// Package filex holds small file helpers: inlining attachments as data URLs
// and preparing directories for the database file.
package filex

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// EncodeDataURL reads the file at path and returns it as
// "data:<mime>;base64,<payload>". The MIME type is sniffed from the content.
// An empty path yields "".
func EncodeDataURL(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return EncodeBytes(data), nil
}

// EncodeBytes is EncodeDataURL for content already in memory.
func EncodeBytes(data []byte) string {
	mediaType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return "data:" + strings.TrimSpace(mediaType) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// EnsureParentDir creates the directory that will hold path. In-memory
// database names and bare file names need nothing.
func EnsureParentDir(path string) error {
	if path == "" || strings.HasPrefix(path, ":memory:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
