package extract

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/toolbox"
)

// All reports every element of doc, each list capped by limits.
func All(doc *toolbox.Document, content string, limits toolbox.Limits) *toolbox.AllReport {
	headings := make(map[toolbox.HeadingLevel][]string, len(toolbox.HeadingLevels))
	for _, level := range toolbox.HeadingLevels {
		headings[level] = capped(doc.Headings[level], limits.AllHeadings)
	}

	return &toolbox.AllReport{
		Links:      capped(doc.Links, limits.AllLinks),
		Images:     capped(doc.Images, limits.AllImages),
		Headings:   headings,
		Paragraphs: capped(doc.Paragraphs, limits.AllParagraphs),
		MetaTags:   capped(doc.MetaTags, limits.AllMetaTags),
		Stats: toolbox.AllStats{
			TotalLinks:      len(doc.Links),
			TotalImages:     len(doc.Images),
			TotalHeadings:   doc.HeadingCount(),
			TotalParagraphs: len(doc.Paragraphs),
			TotalMetaTags:   len(doc.MetaTags),
		},
		ContentHash: ContentHash(content),
	}
}

// ContentHash returns a hex fingerprint of content.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
