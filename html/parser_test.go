package html_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements toolbox.Parser at compile time.
var _ toolbox.Parser = (*html.Parser)(nil)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("collects links images and meta tags", func(t *testing.T) {
		t.Parallel()

		content := `<html><head>
<meta charset="utf-8">
<meta name="description" content="A page">
</head><body>
<a href="/docs" title="Docs" rel="nofollow">Docs</a>
<a name="no-href">skip</a>
<img src="/logo.png" alt="Logo"/>
<img alt="no src">
</body></html>`

		doc, err := html.NewParser().Parse(content)

		require.NoError(t, err)
		assert.Equal(t, []toolbox.Link{{Href: "/docs", Title: "Docs", Rel: "nofollow"}}, doc.Links)
		assert.Equal(t, []toolbox.Image{{Src: "/logo.png", Alt: "Logo"}}, doc.Images)
		assert.Equal(t, []toolbox.MetaTag{
			{"charset": "utf-8"},
			{"name": "description", "content": "A page"},
		}, doc.MetaTags)
	})

	t.Run("captures headings and paragraphs in document order", func(t *testing.T) {
		t.Parallel()

		content := `<h1>Title</h1><p>First.</p><h2>Section</h2><p>  Second  </p><h2>Other</h2>`

		doc, err := html.NewParser().Parse(content)

		require.NoError(t, err)
		assert.Equal(t, []string{"Title"}, doc.Headings[toolbox.H1])
		assert.Equal(t, []string{"Section", "Other"}, doc.Headings[toolbox.H2])
		assert.Equal(t, []string{"First.", "Second"}, doc.Paragraphs)
	})

	t.Run("keeps text of nested inline elements", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<p>Hello <b>bold</b> world</p>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"Hello bold world"}, doc.Paragraphs)
	})

	t.Run("normalizes tag case", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<H3>Upper</H3><A HREF="x">x</A>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"Upper"}, doc.Headings[toolbox.H3])
		assert.Equal(t, "x", doc.Links[0].Href)
	})

	t.Run("new capturable tag resets the capture", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<p>lost<h2>kept</h2></p>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"kept"}, doc.Headings[toolbox.H2])
		assert.Empty(t, doc.Paragraphs)
	})

	t.Run("drops capture left open at end of input", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<p>closed</p><p>never closed`)

		require.NoError(t, err)
		assert.Equal(t, []string{"closed"}, doc.Paragraphs)
	})

	t.Run("skips empty captures", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<h1>   </h1><p></p>`)

		require.NoError(t, err)
		assert.Empty(t, doc.Headings[toolbox.H1])
		assert.Empty(t, doc.Paragraphs)
	})

	t.Run("ignores script text inside a capture", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<p>before<script>var x = "</p>";</script> after</p>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"before after"}, doc.Paragraphs)
	})

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<p>Fish &amp; Chips</p><a href="/a?x=1&amp;y=2">q</a>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"Fish & Chips"}, doc.Paragraphs)
		assert.Equal(t, "/a?x=1&y=2", doc.Links[0].Href)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse(`<div><p>ok</p><a href="broken`)

		require.NoError(t, err)
		assert.Equal(t, []string{"ok"}, doc.Paragraphs)
	})

	t.Run("handles plain text", func(t *testing.T) {
		t.Parallel()

		doc, err := html.NewParser().Parse("just text, no markup")

		require.NoError(t, err)
		assert.Empty(t, doc.Links)
		assert.Zero(t, doc.HeadingCount())
	})

	t.Run("scans large input", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat(`<p>para</p><a href="/x">x</a>`, 5000)

		doc, err := html.NewParser().Parse(content)

		require.NoError(t, err)
		assert.Len(t, doc.Paragraphs, 5000)
		assert.Len(t, doc.Links, 5000)
	})
}
