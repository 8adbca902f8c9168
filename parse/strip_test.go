package parse

import "testing"

func TestStripToolTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no markup passes through",
			input:    "plain answer text",
			expected: "plain answer text",
		},
		{
			name:     "tool_call element removed with payload",
			input:    `before <tool_call>{"name":"search"}</tool_call> after`,
			expected: "before  after",
		},
		{
			name:     "tool_response with attributes",
			input:    `<tool_response id="1">result data</tool_response>rest`,
			expected: "rest",
		},
		{
			name:     "multiple elements",
			input:    "<tool_call>a</tool_call>text<tool_result>b</tool_result>",
			expected: "text",
		},
		{
			name:     "dangling open tag removed",
			input:    "streamed <tool_call>partial payload",
			expected: "streamed partial payload",
		},
		{
			name:     "dangling close tag removed",
			input:    "payload</tool_call> tail",
			expected: "payload tail",
		},
		{
			name:     "spans newlines",
			input:    "x<function_call>\nline1\nline2\n</function_call>y",
			expected: "xy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripToolTags(tt.input)
			if got != tt.expected {
				t.Errorf("StripToolTags(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripBoxTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "wrapper removed content kept",
			input:    "<box>important note</box>",
			expected: "important note",
		},
		{
			name:     "wrapper with attributes",
			input:    `<box kind="info">note</box> tail`,
			expected: "note tail",
		},
		{
			name:     "no box",
			input:    "nothing here",
			expected: "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripBoxTags(tt.input)
			if got != tt.expected {
				t.Errorf("StripBoxTags(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripIdempotence(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<tool_call>x</tool_call>y",
		"<box>kept</box>",
		"a<tool_call>b</tool_call><box>c</box>d",
		"dangling <tool_response> open",
		"<box><tool_call>nested</tool_call></box>",
	}

	for _, input := range inputs {
		once := StripTags(input)
		twice := StripTags(once)
		if once != twice {
			t.Errorf("StripTags not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
