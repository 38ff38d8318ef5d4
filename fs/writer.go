// Package fs provides file-based storage for extraction results.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/batch"
)

// SourceToPath converts a source file path to a relative result path.
// Example: site/docs/index.html → site/docs/index.json
func SourceToPath(source string) (string, error) {
	path := filepath.ToSlash(filepath.Clean(source))
	path = strings.TrimPrefix(path, filepath.ToSlash(filepath.VolumeName(source)))

	// Keep results inside the output directory.
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p == "" || p == "." || p == ".." {
			continue
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return "", toolbox.Errorf(toolbox.EINVALID, "source %q has no file name", source)
	}

	path = strings.Join(parts, "/")
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return filepath.FromSlash(path + ".json"), nil
}

// Writer writes batch outcomes as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteOutcome writes an outcome to disk and returns the file path.
func (w *Writer) WriteOutcome(ctx context.Context, o batch.Outcome) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := SourceToPath(o.Source)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", toolbox.Errorf(toolbox.EINTERNAL, "failed to create directory: %v", err)
	}

	data, err := toolbox.EncodeJSON(o)
	if err != nil {
		return "", toolbox.Errorf(toolbox.EINTERNAL, "failed to encode outcome: %v", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return "", toolbox.Errorf(toolbox.EINTERNAL, "failed to encode outcome: %v", err)
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
		return "", toolbox.Errorf(toolbox.EINTERNAL, "failed to write %s: %v", fullPath, err)
	}
	return fullPath, nil
}
