package web

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(goldhtml.WithHardWraps()),
	)

	// The footer is a single line of card text: inline formatting and links only.
	htmlSanitizer = bluemonday.NewPolicy()
	htmlSanitizer.AllowElements("strong", "em", "code", "del", "br")
	htmlSanitizer.AllowStandardURLs()
	htmlSanitizer.AllowAttrs("href").OnElements("a")
	htmlSanitizer.RequireNoFollowOnLinks(true)
}

// RenderFooter converts the card footer from inline markdown to sanitized
// HTML. Block wrappers are dropped so the result fits inside a single line.
// Returns empty string for empty input.
func RenderFooter(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return html.EscapeString(src)
	}

	return strings.TrimSpace(htmlSanitizer.Sanitize(buf.String()))
}
