package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/toolbox"
)

var titlePattern = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

// Metadata classifies the meta tags of doc and reads the page title from
// the raw content.
func Metadata(doc *toolbox.Document, content string) *toolbox.MetadataReport {
	md := toolbox.Metadata{
		OGTags:      map[string]string{},
		TwitterTags: map[string]string{},
		Other:       []toolbox.MetaTag{},
	}

	if m := titlePattern.FindStringSubmatch(content); m != nil {
		md.Title = strings.TrimSpace(m[1])
	}

	for _, tag := range doc.MetaTags {
		name := strings.ToLower(tag["name"])
		property := strings.ToLower(tag["property"])
		value := tag["content"]

		switch {
		case name == "description":
			md.Description = value
		case name == "keywords":
			md.Keywords = value
		case name == "author":
			md.Author = value
		case name == "viewport":
			md.Viewport = value
		case tag["charset"] != "":
			md.Charset = tag["charset"]
		case strings.HasPrefix(property, "og:"):
			md.OGTags[property] = value
		case strings.HasPrefix(property, "twitter:"):
			md.TwitterTags[property] = value
		default:
			md.Other = append(md.Other, tag)
		}
	}

	return &toolbox.MetadataReport{
		Metadata:        md,
		TotalMetaTags:   len(doc.MetaTags),
		HasOGTags:       len(md.OGTags) > 0,
		HasTwitterTags:  len(md.TwitterTags) > 0,
		OGTagCount:      len(md.OGTags),
		TwitterTagCount: len(md.TwitterTags),
	}
}
