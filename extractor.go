package toolbox

import "bytes"

// ExtractType selects which subset of the parsed content an extraction returns.
type ExtractType string

// Supported extraction types.
const (
	ExtractAll          ExtractType = "all"
	ExtractLinks        ExtractType = "links"
	ExtractText         ExtractType = "text"
	ExtractMetadata     ExtractType = "metadata"
	ExtractStructured   ExtractType = "structured"
	ExtractEmails       ExtractType = "emails"
	ExtractPhoneNumbers ExtractType = "phone_numbers"
	ExtractURLs         ExtractType = "urls"
)

// ExtractTypes returns every supported extraction type.
func ExtractTypes() []ExtractType {
	return []ExtractType{
		ExtractAll, ExtractLinks, ExtractText, ExtractMetadata, ExtractStructured,
		ExtractEmails, ExtractPhoneNumbers, ExtractURLs,
	}
}

// ExtractOptions configures link and text extraction.
type ExtractOptions struct {
	// BaseURL resolves relative hrefs and decides which links are internal.
	BaseURL string `json:"base_url,omitempty"`

	// FilterExternal drops links whose host differs from BaseURL's host.
	// Ignored when BaseURL is empty.
	FilterExternal bool `json:"filter_external,omitempty"`

	// IncludeHeadings prepends heading text to extracted text. Nil means true.
	IncludeHeadings *bool `json:"include_headings,omitempty"`

	// MaxLength caps extracted text in characters. Zero means Limits.MaxTextLength.
	MaxLength int `json:"max_length,omitempty"`
}

// ContentExtractor routes a request to the extractor for its type.
type ContentExtractor interface {
	// Extract never fails: unknown types and extraction errors are
	// reported through the result's Success and Error fields.
	Extract(content string, typ ExtractType, opts ExtractOptions) *ExtractionResult
}

// ExtractionResult is the response of a single extraction. At most one
// report is set, matching ExtractType.
type ExtractionResult struct {
	Success        bool          `json:"success"`
	Error          string        `json:"error,omitempty"`
	ExtractType    ExtractType   `json:"extract_type,omitempty"`
	AvailableTypes []ExtractType `json:"available_types,omitempty"`

	All          *AllReport          `json:"-"`
	Links        *LinksReport        `json:"-"`
	Text         *TextReport         `json:"-"`
	Metadata     *MetadataReport     `json:"-"`
	Structured   *StructuredReport   `json:"-"`
	Emails       *EmailsReport       `json:"-"`
	PhoneNumbers *PhoneNumbersReport `json:"-"`
	URLs         *URLsReport         `json:"-"`
}

// Report returns the populated report, or nil for failed extractions.
func (r *ExtractionResult) Report() any {
	switch {
	case r.All != nil:
		return r.All
	case r.Links != nil:
		return r.Links
	case r.Text != nil:
		return r.Text
	case r.Metadata != nil:
		return r.Metadata
	case r.Structured != nil:
		return r.Structured
	case r.Emails != nil:
		return r.Emails
	case r.PhoneNumbers != nil:
		return r.PhoneNumbers
	case r.URLs != nil:
		return r.URLs
	}
	return nil
}

// MarshalJSON flattens the report's fields next to the result's status fields.
func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	type header ExtractionResult
	head, err := EncodeJSON(header(r))
	if err != nil {
		return nil, err
	}
	report := r.Report()
	if report == nil {
		return head, nil
	}
	body, err := EncodeJSON(report)
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if bytes.Equal(body, []byte("{}")) {
		return head, nil
	}

	var buf bytes.Buffer
	buf.Write(head[:len(head)-1])
	buf.WriteByte(',')
	buf.Write(body[1:])
	return buf.Bytes(), nil
}

// AllReport is the result of the "all" extraction type.
type AllReport struct {
	Links       []Link                    `json:"links"`
	Images      []Image                   `json:"images"`
	Headings    map[HeadingLevel][]string `json:"headings"`
	Paragraphs  []string                  `json:"paragraphs"`
	MetaTags    []MetaTag                 `json:"meta_tags"`
	Stats       AllStats                  `json:"stats"`
	ContentHash string                    `json:"content_hash"`
}

// AllStats reports uncapped totals for the "all" extraction type.
type AllStats struct {
	TotalLinks      int `json:"total_links"`
	TotalImages     int `json:"total_images"`
	TotalHeadings   int `json:"total_headings"`
	TotalParagraphs int `json:"total_paragraphs"`
	TotalMetaTags   int `json:"total_meta_tags"`
}

// LinksReport is the result of the "links" extraction type.
type LinksReport struct {
	TotalLinks    int       `json:"total_links"`
	InternalLinks []Link    `json:"internal_links"`
	ExternalLinks []Link    `json:"external_links"`
	AnchorLinks   []Link    `json:"anchor_links"`
	Stats         LinkStats `json:"stats"`
}

// LinkStats reports uncapped per-category link counts.
type LinkStats struct {
	InternalCount int `json:"internal_count"`
	ExternalCount int `json:"external_count"`
	AnchorCount   int `json:"anchor_count"`
}

// TextReport is the result of the "text" extraction type.
type TextReport struct {
	Text            string                    `json:"text"`
	Stats           TextStats                 `json:"stats"`
	HeadingsSummary map[HeadingLevel][]string `json:"headings_summary"`
}

// TextStats describes extracted text.
type TextStats struct {
	CharacterCount    int     `json:"character_count"`
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AverageWordLength float64 `json:"average_word_length"`
}

// MetadataReport is the result of the "metadata" extraction type.
type MetadataReport struct {
	Metadata        Metadata `json:"metadata"`
	TotalMetaTags   int      `json:"total_meta_tags"`
	HasOGTags       bool     `json:"has_og_tags"`
	HasTwitterTags  bool     `json:"has_twitter_tags"`
	OGTagCount      int      `json:"og_tag_count"`
	TwitterTagCount int      `json:"twitter_tag_count"`
}

// Metadata holds the common page metadata classified from meta tags.
type Metadata struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    string            `json:"keywords"`
	Author      string            `json:"author"`
	Viewport    string            `json:"viewport"`
	Charset     string            `json:"charset"`
	OGTags      map[string]string `json:"og_tags"`
	TwitterTags map[string]string `json:"twitter_tags"`
	Other       []MetaTag         `json:"other"`
}

// StructuredReport is the result of the "structured" extraction type.
type StructuredReport struct {
	JSONLD              []any          `json:"json_ld"`
	JSONLDCount         int            `json:"json_ld_count"`
	HasJSONLD           bool           `json:"has_json_ld"`
	MicrodataIndicators int            `json:"microdata_indicators"`
	DocumentOutline     []OutlineEntry `json:"document_outline"`
	OutlineCount        int            `json:"outline_count"`
	ImagesWithAlt       int            `json:"images_with_alt"`
	TotalImages         int            `json:"total_images"`
}

// OutlineEntry is a single heading in a document outline.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
}

// EmailsReport is the result of the "emails" extraction type.
type EmailsReport struct {
	Emails     []string `json:"emails"`
	TotalFound int      `json:"total_found"`
}

// PhoneNumbersReport is the result of the "phone_numbers" extraction type.
type PhoneNumbersReport struct {
	PhoneNumbers []string `json:"phone_numbers"`
	TotalFound   int      `json:"total_found"`
}

// URLsReport is the result of the "urls" extraction type.
type URLsReport struct {
	URLs            []string      `json:"urls"`
	TotalFound      int           `json:"total_found"`
	UniqueDomains   []string      `json:"unique_domains"`
	DomainFrequency []DomainCount `json:"domain_frequency"`
}

// DomainCount is the number of distinct URLs found for a host.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}
