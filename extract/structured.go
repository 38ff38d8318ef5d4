package extract

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/fwojciec/toolbox"
)

var jsonLDPattern = regexp.MustCompile(`(?is)<script[^>]*type=["']application/ld\+json["'][^>]*>(.*?)</script>`)

// Structured reports JSON-LD blocks, microdata indicators, the heading
// outline and image alt text coverage. JSON-LD blocks that are not valid
// JSON are skipped.
func Structured(doc *toolbox.Document, content string, limits toolbox.Limits) *toolbox.StructuredReport {
	var blocks []any
	for _, m := range jsonLDPattern.FindAllStringSubmatch(content, -1) {
		block := bytes.TrimSpace([]byte(m[1]))
		if !json.Valid(block) {
			continue
		}
		// RawMessage keeps the block's own key order when re-encoded.
		blocks = append(blocks, json.RawMessage(block))
	}

	outline := doc.Outline()

	withAlt := 0
	for _, img := range doc.Images {
		if img.Alt != "" {
			withAlt++
		}
	}

	return &toolbox.StructuredReport{
		JSONLD:              capped(blocks, limits.JSONLD),
		JSONLDCount:         len(blocks),
		HasJSONLD:           len(blocks) > 0,
		MicrodataIndicators: strings.Count(content, "itemscope"),
		DocumentOutline:     capped(outline, limits.Outline),
		OutlineCount:        len(outline),
		ImagesWithAlt:       withAlt,
		TotalImages:         len(doc.Images),
	}
}
