package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadLimits(t *testing.T) {
	t.Parallel()

	t.Run("overlays YAML values onto defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "limits.yaml", `
all:
  paragraphs: 25
  links: 0
contact:
  urls: 100
text:
  maxLength: 200
`)

		limits, err := yaml.LoadLimits(path)

		require.NoError(t, err)
		want := toolbox.DefaultLimits()
		want.AllParagraphs = 25
		want.AllLinks = 0
		want.URLs = 100
		want.MaxTextLength = 200
		assert.Equal(t, want, limits)
	})

	t.Run("reads JSON files", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "limits.json", `{"links": {"internal": 5, "anchors": 2}}`)

		limits, err := yaml.LoadLimits(path)

		require.NoError(t, err)
		assert.Equal(t, 5, limits.InternalLinks)
		assert.Equal(t, 2, limits.AnchorLinks)
		assert.Equal(t, toolbox.DefaultExternalLinks, limits.ExternalLinks)
	})

	t.Run("reads files with unknown extensions", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "limits.conf", `{"structured": {"jsonLD": 9}}`)

		limits, err := yaml.LoadLimits(path)

		require.NoError(t, err)
		assert.Equal(t, 9, limits.JSONLD)
	})

	t.Run("rejects negative caps", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "limits.yml", "contact:\n  emails: -1\n")

		_, err := yaml.LoadLimits(path)

		assert.Equal(t, toolbox.EINVALID, toolbox.ErrorCode(err))
		assert.Equal(t, "emails limit cannot be negative", toolbox.ErrorMessage(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "limits.yaml", "all: [unclosed")

		_, err := yaml.LoadLimits(path)

		assert.Equal(t, toolbox.EINVALID, toolbox.ErrorCode(err))
	})

	t.Run("reports missing files as not found", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadLimits(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, toolbox.ENOTFOUND, toolbox.ErrorCode(err))
	})
}
