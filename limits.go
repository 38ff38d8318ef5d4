package toolbox

// Default output caps.
const (
	DefaultAllLinks        = 50
	DefaultAllImages       = 50
	DefaultAllHeadings     = 20
	DefaultAllParagraphs   = 10
	DefaultAllMetaTags     = 50
	DefaultInternalLinks   = 20
	DefaultExternalLinks   = 20
	DefaultAnchorLinks     = 10
	DefaultHeadingsSummary = 5
	DefaultJSONLD          = 5
	DefaultOutline         = 20
	DefaultEmails          = 20
	DefaultPhoneNumbers    = 20
	DefaultURLs            = 30
	DefaultUniqueDomains   = 20
	DefaultTopDomains      = 10
	DefaultMaxTextLength   = 5000
)

// Limits caps the size of every list an extraction returns. Reports always
// carry uncapped totals next to capped lists.
type Limits struct {
	// Per-field caps for the "all" extraction type. AllHeadings applies per level.
	AllLinks      int
	AllImages     int
	AllHeadings   int
	AllParagraphs int
	AllMetaTags   int

	InternalLinks int
	ExternalLinks int
	AnchorLinks   int

	// HeadingsSummary caps headings per level in text extraction.
	HeadingsSummary int

	JSONLD  int
	Outline int

	Emails        int
	PhoneNumbers  int
	URLs          int
	UniqueDomains int
	TopDomains    int

	// MaxTextLength is the default text length when options leave it unset.
	MaxTextLength int
}

// DefaultLimits returns the default output caps.
func DefaultLimits() Limits {
	return Limits{
		AllLinks:        DefaultAllLinks,
		AllImages:       DefaultAllImages,
		AllHeadings:     DefaultAllHeadings,
		AllParagraphs:   DefaultAllParagraphs,
		AllMetaTags:     DefaultAllMetaTags,
		InternalLinks:   DefaultInternalLinks,
		ExternalLinks:   DefaultExternalLinks,
		AnchorLinks:     DefaultAnchorLinks,
		HeadingsSummary: DefaultHeadingsSummary,
		JSONLD:          DefaultJSONLD,
		Outline:         DefaultOutline,
		Emails:          DefaultEmails,
		PhoneNumbers:    DefaultPhoneNumbers,
		URLs:            DefaultURLs,
		UniqueDomains:   DefaultUniqueDomains,
		TopDomains:      DefaultTopDomains,
		MaxTextLength:   DefaultMaxTextLength,
	}
}

// Validate returns an error if any cap is negative or the text length is not positive.
func (l Limits) Validate() error {
	caps := []struct {
		name  string
		value int
	}{
		{"all links", l.AllLinks},
		{"all images", l.AllImages},
		{"all headings", l.AllHeadings},
		{"all paragraphs", l.AllParagraphs},
		{"all meta tags", l.AllMetaTags},
		{"internal links", l.InternalLinks},
		{"external links", l.ExternalLinks},
		{"anchor links", l.AnchorLinks},
		{"headings summary", l.HeadingsSummary},
		{"json-ld", l.JSONLD},
		{"outline", l.Outline},
		{"emails", l.Emails},
		{"phone numbers", l.PhoneNumbers},
		{"urls", l.URLs},
		{"unique domains", l.UniqueDomains},
		{"top domains", l.TopDomains},
	}
	for _, c := range caps {
		if c.value < 0 {
			return Errorf(EINVALID, "%s limit cannot be negative", c.name)
		}
	}
	if l.MaxTextLength <= 0 {
		return Errorf(EINVALID, "max text length must be positive")
	}
	return nil
}
