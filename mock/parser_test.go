package mock_test

import (
	"testing"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ toolbox.Parser = &mock.Parser{}
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ParseFn", func(t *testing.T) {
		t.Parallel()

		want := toolbox.NewDocument()
		var calledWith string
		p := &mock.Parser{
			ParseFn: func(content string) (*toolbox.Document, error) {
				calledWith = content
				return want, nil
			},
		}

		got, err := p.Parse("<p>hi</p>")

		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Equal(t, "<p>hi</p>", calledWith)
	})
}

func TestContentExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ExtractFn", func(t *testing.T) {
		t.Parallel()

		var gotType toolbox.ExtractType
		e := &mock.ContentExtractor{
			ExtractFn: func(_ string, typ toolbox.ExtractType, _ toolbox.ExtractOptions) *toolbox.ExtractionResult {
				gotType = typ
				return &toolbox.ExtractionResult{Success: true, ExtractType: typ}
			},
		}

		result := e.Extract("", toolbox.ExtractEmails, toolbox.ExtractOptions{})

		assert.True(t, result.Success)
		assert.Equal(t, toolbox.ExtractEmails, gotType)
	})
}
