package toolbox

// HeadingLevel identifies a heading element (h1 through h6).
type HeadingLevel string

// Heading levels in document outline order.
const (
	H1 HeadingLevel = "h1"
	H2 HeadingLevel = "h2"
	H3 HeadingLevel = "h3"
	H4 HeadingLevel = "h4"
	H5 HeadingLevel = "h5"
	H6 HeadingLevel = "h6"
)

// HeadingLevels lists every heading level from h1 to h6.
var HeadingLevels = []HeadingLevel{H1, H2, H3, H4, H5, H6}

// ParseHeadingLevel returns the heading level for a lowercase tag name.
func ParseHeadingLevel(tag string) (HeadingLevel, bool) {
	for _, level := range HeadingLevels {
		if string(level) == tag {
			return level, true
		}
	}
	return "", false
}

// Link is an anchor element with an href attribute.
type Link struct {
	Href  string `json:"href"`
	Title string `json:"title"`
	Rel   string `json:"rel"`

	// AbsoluteHref is set by the link extractor when a base URL is known.
	AbsoluteHref string `json:"absolute_href,omitempty"`
}

// Image is an img element with a src attribute.
type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// MetaTag holds the raw attributes of a meta element.
type MetaTag map[string]string

// Document is the result of a single scan over markup. It is built once
// by a Parser and never mutated afterwards.
type Document struct {
	Links      []Link
	Images     []Image
	Headings   map[HeadingLevel][]string
	Paragraphs []string
	MetaTags   []MetaTag
}

// NewDocument returns an empty Document with every heading level present.
func NewDocument() *Document {
	headings := make(map[HeadingLevel][]string, len(HeadingLevels))
	for _, level := range HeadingLevels {
		headings[level] = []string{}
	}
	return &Document{
		Links:      []Link{},
		Images:     []Image{},
		Headings:   headings,
		Paragraphs: []string{},
		MetaTags:   []MetaTag{},
	}
}

// HeadingCount returns the number of headings across all levels.
func (d *Document) HeadingCount() int {
	n := 0
	for _, level := range HeadingLevels {
		n += len(d.Headings[level])
	}
	return n
}

// Outline returns every non-empty heading ordered by level, then by
// document order within a level.
func (d *Document) Outline() []OutlineEntry {
	outline := make([]OutlineEntry, 0, d.HeadingCount())
	for _, level := range HeadingLevels {
		for _, text := range d.Headings[level] {
			if text != "" {
				outline = append(outline, OutlineEntry{Level: level, Text: text})
			}
		}
	}
	return outline
}

// Parser scans markup into a Document.
type Parser interface {
	// Parse scans content in a single pass. The content need not be
	// well-formed; malformed markup is handled on a best-effort basis.
	Parse(content string) (*Document, error)
}
