package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/toolbox"
)

// Ensure Parser implements toolbox.Parser at compile time.
var _ toolbox.Parser = (*Parser)(nil)

// elementSelector matches every element a Document records. Cascadia
// returns matches in document order.
const elementSelector = "a[href], img[src], meta, h1, h2, h3, h4, h5, h6, p"

// Parser builds a Document from a DOM tree instead of a token stream.
// The HTML5 tree builder repairs malformed nesting first, so unclosed
// paragraphs are closed implicitly rather than dropped.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a DOM from content and walks the recorded elements.
func (p *Parser) Parse(content string) (*toolbox.Document, error) {
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, toolbox.Errorf(toolbox.EINVALID, "failed to parse HTML: %v", err)
	}

	doc := toolbox.NewDocument()
	dom.Find(elementSelector).Each(func(_ int, sel *goquery.Selection) {
		switch tag := goquery.NodeName(sel); tag {
		case "a":
			href, _ := sel.Attr("href")
			doc.Links = append(doc.Links, toolbox.Link{
				Href:  href,
				Title: sel.AttrOr("title", ""),
				Rel:   sel.AttrOr("rel", ""),
			})
		case "img":
			src, _ := sel.Attr("src")
			doc.Images = append(doc.Images, toolbox.Image{
				Src:   src,
				Alt:   sel.AttrOr("alt", ""),
				Title: sel.AttrOr("title", ""),
			})
		case "meta":
			tag := make(toolbox.MetaTag)
			for _, a := range sel.Get(0).Attr {
				tag[a.Key] = a.Val
			}
			doc.MetaTags = append(doc.MetaTags, tag)
		case "p":
			if text := elementText(sel); text != "" {
				doc.Paragraphs = append(doc.Paragraphs, text)
			}
		default:
			level, ok := toolbox.ParseHeadingLevel(tag)
			if !ok {
				return
			}
			if text := elementText(sel); text != "" {
				doc.Headings[level] = append(doc.Headings[level], text)
			}
		}
	})

	return doc, nil
}

// elementText returns the element's text with script and style content
// removed and whitespace runs collapsed to single spaces.
func elementText(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find("script, style").Remove()
	return strings.Join(strings.Fields(clone.Text()), " ")
}
