package textstat_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/toolbox/textstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		r := textstat.Analyze("", textstat.TypeFull)

		assert.Equal(t, "No text provided", r.Error)
	})

	t.Run("lists available types for unknown types", func(t *testing.T) {
		t.Parallel()

		r := textstat.Analyze("text", "sentiment")

		assert.Equal(t, "Unknown analysis type: sentiment", r.Error)
		assert.Equal(t, []string{"basic", "readability", "frequency", "full"}, r.Available)
	})

	t.Run("encodes single sections flat", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(textstat.Analyze("Hi there.", textstat.TypeBasic))

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"character_count": 9,
			"character_count_no_spaces": 8,
			"word_count": 2,
			"sentence_count": 1,
			"paragraph_count": 1,
			"average_word_length": 4,
			"average_sentence_length": 2
		}`, string(data))
	})

	t.Run("nests every section in a full analysis", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(textstat.Analyze("The cat sat.", textstat.TypeFull))

		require.NoError(t, err)
		var got map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Len(t, got, 4)
		assert.Contains(t, got, "basic")
		assert.Contains(t, got, "readability")
		assert.Contains(t, got, "frequency")
		assert.JSONEq(t, `{
			"has_numbers": false,
			"has_urls": false,
			"has_emails": false,
			"language_hint": "english"
		}`, string(got["metadata"]))
	})

	t.Run("encodes errors with their hints", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(textstat.Analyze("x", "bogus"))

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"error": "Unknown analysis type: bogus",
			"available": ["basic", "readability", "frequency", "full"]
		}`, string(data))
	})
}

func TestAnalyzeBasic(t *testing.T) {
	t.Parallel()

	t.Run("counts paragraphs and sentences", func(t *testing.T) {
		t.Parallel()

		b := textstat.AnalyzeBasic("One two. Three!\n\nFour five six?")

		assert.Equal(t, 6, b.WordCount)
		assert.Equal(t, 3, b.SentenceCount)
		assert.Equal(t, 2, b.ParagraphCount)
		assert.Equal(t, 2.0, b.AverageSentenceLength)
		assert.Equal(t, 31, b.CharacterCount)
		assert.Equal(t, 25, b.CharacterCountNoSpaces)
	})

	t.Run("reports zero averages without words", func(t *testing.T) {
		t.Parallel()

		b := textstat.AnalyzeBasic("   ")

		assert.Zero(t, b.AverageWordLength)
		assert.Zero(t, b.AverageSentenceLength)
		assert.Zero(t, b.SentenceCount)
	})
}

func TestAnalyzeReadability(t *testing.T) {
	t.Parallel()

	t.Run("scores simple text as very easy", func(t *testing.T) {
		t.Parallel()

		r := textstat.AnalyzeReadability("The cat sat. The dog ran.")

		assert.Equal(t, 6, r.TotalSyllables)
		assert.Equal(t, 1.0, r.AverageSyllablesPerWord)
		assert.Equal(t, 119.19, r.FleschReadingEase)
		assert.Equal(t, "Very Easy", r.DifficultyLevel)
	})

	t.Run("counts vowel groups as syllables", func(t *testing.T) {
		t.Parallel()

		r := textstat.AnalyzeReadability("beautiful rhythm")

		// beau-ti-ful has three vowel groups; rhythm has none but counts once.
		assert.Equal(t, 4, r.TotalSyllables)
	})

	t.Run("cannot score text without sentences", func(t *testing.T) {
		t.Parallel()

		r := textstat.AnalyzeReadability("...")

		assert.Equal(t, "Cannot calculate", r.DifficultyLevel)
		assert.Zero(t, r.FleschReadingEase)
	})
}

func TestAnalyzeFrequency(t *testing.T) {
	t.Parallel()

	t.Run("ranks words, characters and bigrams", func(t *testing.T) {
		t.Parallel()

		f := textstat.AnalyzeFrequency("The cat and the hat. THE end")

		assert.Equal(t, 5, f.UniqueWords)
		assert.Equal(t, textstat.TermCount{Term: "the", Count: 3}, f.TopWords[0])
		assert.Equal(t, []textstat.TermCount{
			{Term: "cat", Count: 1},
			{Term: "and", Count: 1},
			{Term: "hat", Count: 1},
			{Term: "end", Count: 1},
		}, f.TopWords[1:])
		assert.Equal(t, textstat.TermCount{Term: "the cat", Count: 1}, f.TopBigrams[0])
		assert.Len(t, f.TopBigrams, 5)
		assert.Equal(t, textstat.TermCount{Term: "t", Count: 5}, f.TopCharacters[0])
		assert.InDelta(t, 5.0/7.0, f.LexicalDiversity, 1e-12)
	})

	t.Run("returns empty lists for text without words", func(t *testing.T) {
		t.Parallel()

		f := textstat.AnalyzeFrequency("!!")

		assert.Empty(t, f.TopWords)
		assert.NotNil(t, f.TopWords)
		assert.Zero(t, f.LexicalDiversity)
		assert.Equal(t, []textstat.TermCount{{Term: "!", Count: 2}}, f.TopCharacters)
	})
}

func TestAnalyzeMetadata(t *testing.T) {
	t.Parallel()

	t.Run("detects numbers, links and addresses", func(t *testing.T) {
		t.Parallel()

		m := textstat.AnalyzeMetadata("Mail x@y.io or visit https://y.io 24/7")

		assert.True(t, m.HasNumbers)
		assert.True(t, m.HasURLs)
		assert.True(t, m.HasEmails)
	})

	t.Run("guesses the language from common words", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "english", textstat.AnalyzeMetadata("Go TO bed").LanguageHint)
		assert.Equal(t, "unknown", textstat.AnalyzeMetadata("zzz qqq").LanguageHint)
	})
}
