package parse

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// The markdown converter and sanitizer policy are initialized once and
// reused. Their configuration never changes and both are safe to share;
// conversion and sanitization create per-call state.
var (
	markdownInstance goldmark.Markdown
	sanitizePolicy   *bluemonday.Policy
	markdownOnce     sync.Once
)

func markdownRenderer() (goldmark.Markdown, *bluemonday.Policy) {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
		sanitizePolicy = bluemonday.UGCPolicy()
	})
	return markdownInstance, sanitizePolicy
}

// RenderMarkdown converts a markdown segment to sanitized display markup.
// Raw HTML embedded in the source is dropped by the sanitizer, so the output
// is always safe to hand to a display surface. Conversion failures degrade
// to the escaped input rather than an error; rendering is total.
func RenderMarkdown(md string) string {
	if md == "" {
		return ""
	}
	renderer, policy := markdownRenderer()

	var buf bytes.Buffer
	if err := renderer.Convert([]byte(md), &buf); err != nil {
		return policy.Sanitize("<pre>" + md + "</pre>")
	}
	return policy.SanitizeReader(&buf).String()
}
