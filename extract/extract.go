// Package extract implements content extraction over parsed markup.
// An Extractor scans content once with its Parser and hands the
// resulting Document to the extractor selected by the request type.
// Contact and URL extraction operate on the raw content instead.
package extract

import (
	"fmt"
	"slices"

	"github.com/fwojciec/toolbox"
)

// Ensure Extractor implements toolbox.ContentExtractor at compile time.
var _ toolbox.ContentExtractor = (*Extractor)(nil)

// Extractor routes extraction requests to the extractor for their type.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	Parser toolbox.Parser
	Limits toolbox.Limits
}

// NewExtractor creates an Extractor with default limits.
func NewExtractor(parser toolbox.Parser) *Extractor {
	return &Extractor{
		Parser: parser,
		Limits: toolbox.DefaultLimits(),
	}
}

// Extract runs the extraction selected by typ. Errors and panics raised
// while extracting are reported in the result, never returned.
func (e *Extractor) Extract(content string, typ toolbox.ExtractType, opts toolbox.ExtractOptions) (result *toolbox.ExtractionResult) {
	if !slices.Contains(toolbox.ExtractTypes(), typ) {
		return &toolbox.ExtractionResult{
			Error:          fmt.Sprintf("Unknown extraction type: %s", typ),
			AvailableTypes: toolbox.ExtractTypes(),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			result = failure(typ, toolbox.Errorf(toolbox.EINTERNAL, "extraction failed: %v", r))
		}
	}()

	result = &toolbox.ExtractionResult{Success: true, ExtractType: typ}
	if err := e.extract(result, content, opts); err != nil {
		return failure(typ, err)
	}
	return result
}

func (e *Extractor) extract(result *toolbox.ExtractionResult, content string, opts toolbox.ExtractOptions) error {
	if err := e.Limits.Validate(); err != nil {
		return err
	}

	// Contact extractors match against the raw content and skip the scan.
	switch result.ExtractType {
	case toolbox.ExtractEmails:
		result.Emails = Emails(content, e.Limits)
		return nil
	case toolbox.ExtractPhoneNumbers:
		result.PhoneNumbers = PhoneNumbers(content, e.Limits)
		return nil
	case toolbox.ExtractURLs:
		result.URLs = URLs(content, e.Limits)
		return nil
	}

	if e.Parser == nil {
		return toolbox.Errorf(toolbox.EINTERNAL, "no parser configured")
	}
	doc, err := e.Parser.Parse(content)
	if err != nil {
		return err
	}

	switch result.ExtractType {
	case toolbox.ExtractAll:
		result.All = All(doc, content, e.Limits)
	case toolbox.ExtractLinks:
		result.Links, err = Links(doc, opts, e.Limits)
	case toolbox.ExtractText:
		result.Text, err = Text(doc, opts, e.Limits)
	case toolbox.ExtractMetadata:
		result.Metadata = Metadata(doc, content)
	case toolbox.ExtractStructured:
		result.Structured = Structured(doc, content, e.Limits)
	}
	return err
}

func failure(typ toolbox.ExtractType, err error) *toolbox.ExtractionResult {
	return &toolbox.ExtractionResult{
		Error:       toolbox.ErrorMessage(err),
		ExtractType: typ,
	}
}

// capped returns at most n leading elements of s, never nil.
func capped[T any](s []T, n int) []T {
	if s == nil {
		return []T{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// unique returns the distinct values of s in first-seen order.
func unique(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
