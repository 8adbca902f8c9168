package parse

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "paragraph",
			input:    "hello world",
			contains: "<p>hello world</p>",
		},
		{
			name:     "emphasis",
			input:    "some *emphasis* here",
			contains: "<em>emphasis</em>",
		},
		{
			name:     "gfm strikethrough",
			input:    "~~gone~~",
			contains: "<del>gone</del>",
		},
		{
			name:     "heading",
			input:    "# Title",
			contains: "Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMarkdown(tt.input)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
			}
		})
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	dangerous := []string{
		`<script>alert(1)</script>`,
		`[x](javascript:alert(1))`,
		`<img src=x onerror=alert(1)>`,
	}

	for _, input := range dangerous {
		got := RenderMarkdown(input)
		if strings.Contains(got, "<script") || strings.Contains(got, "javascript:") || strings.Contains(got, "onerror") {
			t.Errorf("RenderMarkdown(%q) not sanitized: %q", input, got)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown(""); got != "" {
		t.Errorf("RenderMarkdown(\"\") = %q, want empty", got)
	}
}
