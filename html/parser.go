// Package html provides a toolbox.Parser built on the golang.org/x/net/html
// tokenizer. It scans markup in a single linear pass without building a tree.
package html

import (
	"strings"

	"github.com/fwojciec/toolbox"
	"golang.org/x/net/html"
)

// Ensure Parser implements toolbox.Parser at compile time.
var _ toolbox.Parser = (*Parser)(nil)

// Parser scans markup with an html.Tokenizer.
//
// Headings (h1-h6) and paragraphs capture their text until the matching
// closing tag. Only one capture is active at a time: opening another
// heading or paragraph discards the capture in progress. A capture still
// open at end of input is dropped.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse scans content into a Document. It never fails on malformed markup.
func (p *Parser) Parse(content string) (*toolbox.Document, error) {
	doc := toolbox.NewDocument()
	s := &scanState{doc: doc}

	z := html.NewTokenizer(strings.NewReader(content))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF or a reader error; either way the scan is over.
			break
		}

		switch tt {
		case html.StartTagToken:
			s.startTag(z.Token(), false)
		case html.SelfClosingTagToken:
			s.startTag(z.Token(), true)
		case html.EndTagToken:
			s.endTag(z.Token())
		case html.TextToken:
			s.text(string(z.Text()))
		}
	}

	return doc, nil
}

// scanState is the single piece of mutable state threaded through a scan.
type scanState struct {
	doc *toolbox.Document

	// capture is the tag whose text is being accumulated, or "".
	capture string
	chunks  []string

	// rawDepth counts open script/style elements inside a capture.
	rawDepth int
}

func (s *scanState) startTag(tok html.Token, selfClosing bool) {
	switch tok.Data {
	case "a":
		if href, ok := attr(tok, "href"); ok {
			title, _ := attr(tok, "title")
			rel, _ := attr(tok, "rel")
			s.doc.Links = append(s.doc.Links, toolbox.Link{Href: href, Title: title, Rel: rel})
		}
	case "img":
		if src, ok := attr(tok, "src"); ok {
			alt, _ := attr(tok, "alt")
			title, _ := attr(tok, "title")
			s.doc.Images = append(s.doc.Images, toolbox.Image{Src: src, Alt: alt, Title: title})
		}
	case "meta":
		tag := make(toolbox.MetaTag, len(tok.Attr))
		for _, a := range tok.Attr {
			tag[a.Key] = a.Val
		}
		s.doc.MetaTags = append(s.doc.MetaTags, tag)
	case "script", "style":
		if s.capture != "" && !selfClosing {
			s.rawDepth++
		}
	default:
		if isCapturable(tok.Data) && !selfClosing {
			s.capture = tok.Data
			s.chunks = s.chunks[:0]
			s.rawDepth = 0
		}
	}
}

func (s *scanState) endTag(tok html.Token) {
	switch {
	case s.capture == "":
		return
	case tok.Data == "script" || tok.Data == "style":
		if s.rawDepth > 0 {
			s.rawDepth--
		}
		return
	case tok.Data != s.capture:
		return
	}

	text := strings.Join(s.chunks, " ")
	if text != "" {
		if level, ok := toolbox.ParseHeadingLevel(s.capture); ok {
			s.doc.Headings[level] = append(s.doc.Headings[level], text)
		} else {
			s.doc.Paragraphs = append(s.doc.Paragraphs, text)
		}
	}
	s.capture = ""
	s.chunks = s.chunks[:0]
	s.rawDepth = 0
}

func (s *scanState) text(data string) {
	if s.capture == "" || s.rawDepth > 0 {
		return
	}
	if trimmed := strings.TrimSpace(data); trimmed != "" {
		s.chunks = append(s.chunks, trimmed)
	}
}

func isCapturable(tag string) bool {
	if tag == "p" {
		return true
	}
	_, ok := toolbox.ParseHeadingLevel(tag)
	return ok
}

// attr returns the value of the named attribute; the last duplicate wins.
// The tokenizer lowercases attribute keys, so the lookup is exact.
func attr(tok html.Token, key string) (val string, ok bool) {
	for _, a := range tok.Attr {
		if a.Key == key {
			val, ok = a.Val, true
		}
	}
	return val, ok
}
