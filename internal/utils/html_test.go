package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", StripHTML("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "plain text", StripHTML("plain text"))
	assert.Equal(t, "", StripHTML("<br/>"))
}

func TestExtractExcerpt(t *testing.T) {
	short := "<p>Short content</p>"
	assert.Equal(t, "Short content", ExtractExcerpt(short))

	long := "<p>" + strings.Repeat("a", 200) + "</p>"
	got := ExtractExcerpt(long)
	assert.Len(t, got, 153)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "abc", TruncateText("abc", 150))
	assert.Equal(t, strings.Repeat("x", 150), TruncateText(strings.Repeat("x", 200), 150))
}

func TestSplitParagraphs(t *testing.T) {
	html := "<p>First paragraph</p>\n<p>Second paragraph</p>\n\n"
	assert.Equal(t, []string{"First paragraph", "Second paragraph"}, SplitParagraphs(html))

	assert.Equal(t, []string{"single line"}, SplitParagraphs("single line"))
}

func TestExtractSourceLinks(t *testing.T) {
	html := `<p>Lihat di <a href="https://instagram.com/yptkiasma/p/abc">IG</a>
dan https://facebook.com/yptkiasma serta https://threads.net/@kiasma
juga https://example.com/ignored</p>`

	links := ExtractSourceLinks(html)

	assert.Len(t, links, 3)
	assert.Equal(t, "instagram", links[0].Platform)
	assert.Equal(t, "facebook", links[1].Platform)
	assert.Equal(t, "threads", links[2].Platform)
}

func TestExtractSourceLinksEmpty(t *testing.T) {
	assert.Empty(t, ExtractSourceLinks("<p>no links here</p>"))
}
