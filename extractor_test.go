package toolbox_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fwojciec/toolbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []toolbox.ExtractType{
		"all", "links", "text", "metadata", "structured", "emails", "phone_numbers", "urls",
	}, toolbox.ExtractTypes())
}

func TestExtractionResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("flattens report fields next to status", func(t *testing.T) {
		t.Parallel()

		result := &toolbox.ExtractionResult{
			Success: true,
			Emails:  &toolbox.EmailsReport{Emails: []string{"a@b.com"}, TotalFound: 1},
		}

		b, err := json.Marshal(result)

		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"emails":["a@b.com"],"total_found":1}`, string(b))
	})

	t.Run("encodes error results without a report", func(t *testing.T) {
		t.Parallel()

		result := toolbox.ExtractionResult{
			Error:          "Unknown extraction type: nope",
			AvailableTypes: []toolbox.ExtractType{toolbox.ExtractAll},
		}

		b, err := json.Marshal(result)

		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"error":"Unknown extraction type: nope","available_types":["all"]}`, string(b))
	})

	t.Run("leaves escaping to the outer encoder", func(t *testing.T) {
		t.Parallel()

		result := &toolbox.ExtractionResult{
			Success: true,
			URLs:    &toolbox.URLsReport{URLs: []string{"http://x.com/?a=1&b=<2>"}},
		}

		var raw bytes.Buffer
		enc := json.NewEncoder(&raw)
		enc.SetEscapeHTML(false)
		require.NoError(t, enc.Encode(result))
		assert.Contains(t, raw.String(), `"http://x.com/?a=1&b=<2>"`)

		escaped, err := json.Marshal(result)
		require.NoError(t, err)
		assert.Contains(t, string(escaped), `\u0026b=\u003c2\u003e`)
	})

	t.Run("returns the populated report", func(t *testing.T) {
		t.Parallel()

		report := &toolbox.URLsReport{}
		result := &toolbox.ExtractionResult{Success: true, URLs: report}

		assert.Same(t, report, result.Report())
	})
}
