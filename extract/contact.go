package extract

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/fwojciec/toolbox"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// phonePatterns are applied in order and their matches combined.
var phonePatterns = []*regexp.Regexp{
	// US style with optional country code.
	regexp.MustCompile(`\+?1?\s*\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
	// Loosely delimited international digit groups.
	regexp.MustCompile(`\+?[0-9]{1,3}[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{1,4}[-.\s]?[0-9]{1,9}`),
	regexp.MustCompile(`\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
}

// urlPattern captures the host and optional port as its first group.
var urlPattern = regexp.MustCompile(`https?://((?:[-\p{L}\p{N}_.])+(?::\d+)?)(?:/[^\s]*)?`)

// Emails returns the distinct email addresses in content.
func Emails(content string, limits toolbox.Limits) *toolbox.EmailsReport {
	emails := unique(emailPattern.FindAllString(content, -1))
	return &toolbox.EmailsReport{
		Emails:     capped(emails, limits.Emails),
		TotalFound: len(emails),
	}
}

// PhoneNumbers returns the distinct, trimmed phone number candidates in
// content.
func PhoneNumbers(content string, limits toolbox.Limits) *toolbox.PhoneNumbersReport {
	var matches []string
	for _, p := range phonePatterns {
		for _, m := range p.FindAllString(content, -1) {
			matches = append(matches, strings.TrimSpace(m))
		}
	}
	numbers := unique(matches)
	return &toolbox.PhoneNumbersReport{
		PhoneNumbers: capped(numbers, limits.PhoneNumbers),
		TotalFound:   len(numbers),
	}
}

// URLs returns the distinct http(s) URLs in content along with the hosts
// they point at. Domain frequency counts distinct URLs per host, most
// frequent first.
func URLs(content string, limits toolbox.Limits) *toolbox.URLsReport {
	var (
		urls    []string
		domains []toolbox.DomainCount
		seen    = map[string]struct{}{}
		index   = map[string]int{}
	)
	for _, m := range urlPattern.FindAllStringSubmatch(content, -1) {
		rawURL, domain := m[0], m[1]
		if _, ok := seen[rawURL]; ok {
			continue
		}
		seen[rawURL] = struct{}{}
		urls = append(urls, rawURL)

		if i, ok := index[domain]; ok {
			domains[i].Count++
			continue
		}
		index[domain] = len(domains)
		domains = append(domains, toolbox.DomainCount{Domain: domain, Count: 1})
	}

	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = d.Domain
	}

	frequency := slices.Clone(domains)
	slices.SortStableFunc(frequency, func(a, b toolbox.DomainCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return &toolbox.URLsReport{
		URLs:            capped(urls, limits.URLs),
		TotalFound:      len(urls),
		UniqueDomains:   capped(names, limits.UniqueDomains),
		DomainFrequency: capped(frequency, limits.TopDomains),
	}
}
