// Package textstat computes descriptive statistics, readability scores
// and term frequencies for plain text.
package textstat

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/toolbox"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Analysis types.
const (
	TypeFull        = "full"
	TypeBasic       = "basic"
	TypeReadability = "readability"
	TypeFrequency   = "frequency"
)

// Types returns every supported analysis type.
func Types() []string {
	return []string{TypeBasic, TypeReadability, TypeFrequency, TypeFull}
}

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	wordPattern      = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	digitPattern     = regexp.MustCompile(`\d`)
	urlPattern       = regexp.MustCompile(`https?://\S+`)
	emailPattern     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
)

// englishHints are matched as substrings of the lowercased text.
var englishHints = []string{"the", "and", "is", "in", "to"}

// Report is the result of an analysis. A single-section analysis encodes
// as that section alone; a full analysis encodes every section.
type Report struct {
	Type      string   `json:"-"`
	Error     string   `json:"error,omitempty"`
	Available []string `json:"available,omitempty"`

	Basic       *Basic       `json:"basic,omitempty"`
	Readability *Readability `json:"readability,omitempty"`
	Frequency   *Frequency   `json:"frequency,omitempty"`
	Metadata    *Metadata    `json:"metadata,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	type report Report
	switch {
	case r.Error != "":
	case r.Type == TypeBasic:
		return toolbox.EncodeJSON(r.Basic)
	case r.Type == TypeReadability:
		return toolbox.EncodeJSON(r.Readability)
	case r.Type == TypeFrequency:
		return toolbox.EncodeJSON(r.Frequency)
	}
	return toolbox.EncodeJSON(report(r))
}

// Basic holds character, word, sentence and paragraph counts.
type Basic struct {
	CharacterCount         int     `json:"character_count"`
	CharacterCountNoSpaces int     `json:"character_count_no_spaces"`
	WordCount              int     `json:"word_count"`
	SentenceCount          int     `json:"sentence_count"`
	ParagraphCount         int     `json:"paragraph_count"`
	AverageWordLength      float64 `json:"average_word_length"`
	AverageSentenceLength  float64 `json:"average_sentence_length"`
}

// Readability holds the Flesch reading ease score and its inputs.
type Readability struct {
	FleschReadingEase       float64 `json:"flesch_reading_ease"`
	DifficultyLevel         string  `json:"difficulty_level"`
	TotalSyllables          int     `json:"total_syllables"`
	AverageSyllablesPerWord float64 `json:"average_syllables_per_word"`
}

// Frequency holds the most common words, characters and word pairs.
type Frequency struct {
	UniqueWords      int         `json:"unique_words"`
	TopWords         []TermCount `json:"top_10_words"`
	TopCharacters    []TermCount `json:"top_10_characters"`
	TopBigrams       []TermCount `json:"top_5_bigrams"`
	LexicalDiversity float64     `json:"lexical_diversity"`
}

// TermCount is the number of occurrences of a term.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Metadata holds content hints.
type Metadata struct {
	HasNumbers   bool   `json:"has_numbers"`
	HasURLs      bool   `json:"has_urls"`
	HasEmails    bool   `json:"has_emails"`
	LanguageHint string `json:"language_hint"`
}

// Analyze runs the analysis named by typ over text. It never fails:
// empty text and unknown types are reported in the result's Error field.
func Analyze(text, typ string) *Report {
	if text == "" {
		return &Report{Error: "No text provided"}
	}

	r := &Report{Type: typ}
	switch typ {
	case TypeBasic:
		r.Basic = AnalyzeBasic(text)
	case TypeReadability:
		r.Readability = AnalyzeReadability(text)
	case TypeFrequency:
		r.Frequency = AnalyzeFrequency(text)
	case TypeFull:
		r.Basic = AnalyzeBasic(text)
		r.Readability = AnalyzeReadability(text)
		r.Frequency = AnalyzeFrequency(text)
		r.Metadata = AnalyzeMetadata(text)
	default:
		return &Report{
			Error:     fmt.Sprintf("Unknown analysis type: %s", typ),
			Available: Types(),
		}
	}
	return r
}

// sentences returns the non-blank segments between runs of '.', '!' and '?'.
func sentences(text string) []string {
	var out []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// AnalyzeBasic counts characters, words, sentences and paragraphs. Words
// are whitespace separated and paragraphs are separated by blank lines.
func AnalyzeBasic(text string) *Basic {
	words := strings.Fields(text)
	sents := sentences(text)

	b := &Basic{
		CharacterCount:         utf8.RuneCountInString(text),
		CharacterCountNoSpaces: utf8.RuneCountInString(strings.NewReplacer(" ", "", "\n", "").Replace(text)),
		WordCount:              len(words),
		SentenceCount:          len(sents),
		ParagraphCount:         strings.Count(text, "\n\n") + 1,
	}
	if len(words) > 0 {
		letters := 0
		for _, w := range words {
			letters += utf8.RuneCountInString(w)
		}
		b.AverageWordLength = float64(letters) / float64(len(words))
	}
	if len(sents) > 0 {
		b.AverageSentenceLength = float64(len(words)) / float64(len(sents))
	}
	return b
}

// AnalyzeReadability computes the Flesch reading ease score using a
// vowel-group syllable estimate.
func AnalyzeReadability(text string) *Readability {
	words := strings.Fields(text)
	sents := sentences(text)

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	r := &Readability{
		DifficultyLevel: "Cannot calculate",
		TotalSyllables:  syllables,
	}
	if len(words) > 0 {
		perWord := float64(syllables) / float64(len(words))
		r.AverageSyllablesPerWord = round2(perWord)
		if len(sents) > 0 {
			perSentence := float64(len(words)) / float64(len(sents))
			score := 206.835 - 1.015*perSentence - 84.6*perWord
			r.FleschReadingEase = round2(score)
			r.DifficultyLevel = difficulty(score)
		}
	}
	return r
}

func difficulty(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	}
	return "Very Difficult"
}

// countSyllables counts groups of consecutive vowels, at least one per word.
func countSyllables(word string) int {
	count := 0
	previous := false
	for _, r := range strings.ToLower(word) {
		vowel := strings.ContainsRune("aeiou", r)
		if vowel && !previous {
			count++
		}
		previous = vowel
	}
	return max(1, count)
}

// AnalyzeFrequency counts lowercased words, non-whitespace characters and
// adjacent word pairs.
func AnalyzeFrequency(text string) *Frequency {
	lower := cases.Lower(language.Und).String(text)
	words := wordPattern.FindAllString(lower, -1)

	var chars []string
	for _, r := range lower {
		if r != ' ' && r != '\n' && r != '\t' {
			chars = append(chars, string(r))
		}
	}

	bigrams := make([]string, 0, max(0, len(words)-1))
	for i := 0; i+1 < len(words); i++ {
		bigrams = append(bigrams, words[i]+" "+words[i+1])
	}

	wordCounts := count(words)
	f := &Frequency{
		UniqueWords:   len(wordCounts),
		TopWords:      top(wordCounts, 10),
		TopCharacters: top(count(chars), 10),
		TopBigrams:    top(count(bigrams), 5),
	}
	if len(words) > 0 {
		f.LexicalDiversity = float64(len(wordCounts)) / float64(len(words))
	}
	return f
}

// count tallies terms in first-seen order.
func count(terms []string) []TermCount {
	index := make(map[string]int)
	var counts []TermCount
	for _, t := range terms {
		if i, ok := index[t]; ok {
			counts[i].Count++
			continue
		}
		index[t] = len(counts)
		counts = append(counts, TermCount{Term: t, Count: 1})
	}
	return counts
}

// top returns the n most common terms. Ties keep first-seen order.
func top(counts []TermCount, n int) []TermCount {
	sorted := slices.Clone(counts)
	slices.SortStableFunc(sorted, func(a, b TermCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		return []TermCount{}
	}
	return sorted
}

// AnalyzeMetadata detects numbers, URLs and email addresses, and guesses
// whether the text is English from common function words.
func AnalyzeMetadata(text string) *Metadata {
	lower := cases.Lower(language.Und).String(text)
	hint := "unknown"
	for _, w := range englishHints {
		if strings.Contains(lower, w) {
			hint = "english"
			break
		}
	}
	return &Metadata{
		HasNumbers:   digitPattern.MatchString(text),
		HasURLs:      urlPattern.MatchString(text),
		HasEmails:    emailPattern.MatchString(text),
		LanguageHint: hint,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
