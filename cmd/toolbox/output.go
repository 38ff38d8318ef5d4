package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/toolbox"
)

// errFailed is returned after a failed response has been written to stdout.
var errFailed = errors.New("operation failed")

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	if deps.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// readInput reads the named file, or stdin when path is empty or "-".
func readInput(deps *Dependencies, path string) (string, error) {
	if path == "" || path == "-" {
		if deps.Stdin == nil {
			return "", toolbox.Errorf(toolbox.EINVALID, "no input: stdin is not available")
		}
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", toolbox.Errorf(toolbox.EINTERNAL, "failed to read stdin: %v", err)
		}
		return string(data), nil
	}
	return readFile(path)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", toolbox.Errorf(toolbox.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", toolbox.Errorf(toolbox.EINTERNAL, "failed to read %s: %v", path, err)
	}
	return string(data), nil
}
