package extract

import (
	"net/url"
	"strings"

	"github.com/fwojciec/toolbox"
)

// Links categorizes the links of doc into internal, external and anchor
// links. With a base URL every link gets an absolute href, and
// FilterExternal drops links that resolve to another host.
func Links(doc *toolbox.Document, opts toolbox.ExtractOptions, limits toolbox.Limits) (*toolbox.LinksReport, error) {
	var base *url.URL
	if opts.BaseURL != "" {
		u, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, toolbox.Errorf(toolbox.EINVALID, "invalid base URL %q: %v", opts.BaseURL, err)
		}
		base = u
	}

	// Copy so that resolving hrefs leaves the document untouched.
	links := make([]toolbox.Link, 0, len(doc.Links))
	for _, link := range doc.Links {
		if base != nil {
			link.AbsoluteHref = resolve(base, link.Href)
			if opts.FilterExternal && hostOf(link.AbsoluteHref) != base.Host {
				continue
			}
		}
		links = append(links, link)
	}

	var internal, external, anchors []toolbox.Link
	for _, link := range links {
		switch {
		case strings.HasPrefix(link.Href, "#"):
			anchors = append(anchors, link)
		case isExternal(link, base):
			external = append(external, link)
		default:
			internal = append(internal, link)
		}
	}

	return &toolbox.LinksReport{
		TotalLinks:    len(links),
		InternalLinks: capped(internal, limits.InternalLinks),
		ExternalLinks: capped(external, limits.ExternalLinks),
		AnchorLinks:   capped(anchors, limits.AnchorLinks),
		Stats: toolbox.LinkStats{
			InternalCount: len(internal),
			ExternalCount: len(external),
			AnchorCount:   len(anchors),
		},
	}, nil
}

// isExternal reports whether link is an absolute http(s) URL on a host
// other than base's. Without a base every absolute link is external.
func isExternal(link toolbox.Link, base *url.URL) bool {
	href := link.Href
	if link.AbsoluteHref != "" {
		href = link.AbsoluteHref
	}
	lower := strings.ToLower(href)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	return base == nil || hostOf(href) != base.Host
}

// resolve joins href onto base. An unparsable href is returned as is.
func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
