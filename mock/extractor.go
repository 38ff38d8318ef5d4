package mock

import "github.com/fwojciec/toolbox"

var _ toolbox.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of toolbox.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(content string, typ toolbox.ExtractType, opts toolbox.ExtractOptions) *toolbox.ExtractionResult
}

func (e *ContentExtractor) Extract(content string, typ toolbox.ExtractType, opts toolbox.ExtractOptions) *toolbox.ExtractionResult {
	return e.ExtractFn(content, typ, opts)
}
