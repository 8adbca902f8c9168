// Package parse transforms raw model-output text into structured,
// cacheable renderable segments.
//
// The pipeline runs in a fixed order: tool-protocol tags are stripped, box
// annotation wrappers are stripped, artifacts are lifted out, the reasoning
// trace is separated from the answer (recursing into artifacts hidden inside
// the trace), and the remaining text is split into alternating markdown and
// fenced-code segments.
//
// # Usage
//
// Create a Service and parse messages as they arrive:
//
//	svc := parse.Default()
//	msg := svc.Parse(content, parse.Options{IsStreaming: false})
//	for _, seg := range msg.Segments {
//	    if seg.Type == parse.SegmentMarkdown {
//	        html := svc.RenderMarkdown(seg.Content)
//	        _ = html
//	    }
//	}
//
// # Caching
//
// Non-streaming parses are cached in a bounded LRU keyed by the content hash
// plus the extraction flags in effect. Streaming parses bypass the cache
// entirely: partial text must never be served for a later, fuller message.
//
// # Totality
//
// No operation in this package returns an error. Malformed or adversarial
// text degrades gracefully: an unterminated reasoning block is treated as
// still streaming, an unterminated artifact fails to match and stays plain
// text, and empty input yields a well-defined empty result.
package parse
