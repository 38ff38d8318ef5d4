package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/toolbox"
)

// Ellipsis marks text truncated to the maximum length.
const Ellipsis = "..."

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Text joins heading and paragraph text into a single whitespace-collapsed
// string, truncated to the maximum length in characters.
func Text(doc *toolbox.Document, opts toolbox.ExtractOptions, limits toolbox.Limits) (*toolbox.TextReport, error) {
	maxLength := opts.MaxLength
	if maxLength < 0 {
		return nil, toolbox.Errorf(toolbox.EINVALID, "max_length cannot be negative")
	}
	if maxLength == 0 {
		maxLength = limits.MaxTextLength
	}

	var parts []string
	if opts.IncludeHeadings == nil || *opts.IncludeHeadings {
		for _, level := range toolbox.HeadingLevels {
			parts = append(parts, doc.Headings[level]...)
		}
	}
	parts = append(parts, doc.Paragraphs...)

	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if utf8.RuneCountInString(text) > maxLength {
		text = string([]rune(text)[:maxLength]) + Ellipsis
	}

	summary := make(map[toolbox.HeadingLevel][]string)
	for _, level := range toolbox.HeadingLevels {
		if headings := doc.Headings[level]; len(headings) > 0 {
			summary[level] = capped(headings, limits.HeadingsSummary)
		}
	}

	return &toolbox.TextReport{
		Text:            text,
		Stats:           TextStats(text),
		HeadingsSummary: summary,
	}, nil
}

// TextStats counts characters, whitespace-separated words and sentences
// in text. Sentences are the non-blank segments between runs of '.', '!'
// and '?'.
func TextStats(text string) toolbox.TextStats {
	words := strings.Fields(text)

	sentences := 0
	for _, s := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	var average float64
	if len(words) > 0 {
		letters := 0
		for _, w := range words {
			letters += utf8.RuneCountInString(w)
		}
		average = float64(letters) / float64(len(words))
	}

	return toolbox.TextStats{
		CharacterCount:    utf8.RuneCountInString(text),
		WordCount:         len(words),
		SentenceCount:     sentences,
		AverageWordLength: average,
	}
}
