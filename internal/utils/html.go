package utils

import (
	"regexp"
	"strings"
)

const excerptLength = 150

var (
	htmlTag = regexp.MustCompile(`<[^>]*>`)
	httpURL = regexp.MustCompile(`https?://[^\s<>"]+`)
)

type SourceLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

func StripHTML(html string) string {
	return strings.TrimSpace(htmlTag.ReplaceAllString(html, ""))
}

// ExtractExcerpt returns the first excerptLength characters of the
// tag-stripped content, with an ellipsis when truncated.
func ExtractExcerpt(html string) string {
	text := StripHTML(html)
	runes := []rune(text)

	if len(runes) > excerptLength {
		return string(runes[:excerptLength]) + "..."
	}

	return text
}

// TruncateText caps s at n characters without adding an ellipsis.
func TruncateText(s string, n int) string {
	runes := []rune(s)

	if len(runes) > n {
		return string(runes[:n])
	}

	return s
}

// SplitParagraphs strips tags and splits the remaining text into
// non-empty paragraphs, one per line of the source HTML.
func SplitParagraphs(html string) []string {
	text := htmlTag.ReplaceAllString(html, "")

	var paragraphs []string

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	if len(paragraphs) == 0 {
		return []string{text}
	}

	return paragraphs
}

// ExtractSourceLinks scans the HTML for social-media URLs and tags each
// with its platform. URLs from unknown domains are dropped.
func ExtractSourceLinks(html string) []SourceLink {
	links := []SourceLink{}

	for _, url := range httpURL.FindAllString(html, -1) {
		switch {
		case strings.Contains(url, "instagram.com"):
			links = append(links, SourceLink{Platform: "instagram", URL: url})
		case strings.Contains(url, "facebook.com"):
			links = append(links, SourceLink{Platform: "facebook", URL: url})
		case strings.Contains(url, "threads.net"):
			links = append(links, SourceLink{Platform: "threads", URL: url})
		}
	}

	return links
}
