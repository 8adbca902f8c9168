// Package hearth is the message-content core of a chat application for
// self-hosted inference backends.
//
// Hearth is deliberately small: a message parsing service that turns raw
// model output into structured, cacheable renderable segments (code blocks,
// reasoning traces, embedded artifacts, markdown), and a context management
// service that tracks a token budget across a growing conversation and
// shrinks history on demand. Rendering, transport, backend supervision, and
// persistence are external collaborators; this module performs no I/O.
//
// # Quick Start
//
// Create a client and parse messages as they complete:
//
//	client, err := hearth.New(
//	    hearth.WithContextConfig(contextmgr.Config{PreserveRecentMessages: 6}),
//	    hearth.WithHooks(hooks.DefaultLoggingHooks()),
//	)
//	parsed := client.ParseMessage(content, parse.Options{})
//
// Track utilization and compact when the caller decides to:
//
//	stats := client.ContextStats(messages, maxContext, systemPrompt, tools)
//	if client.ShouldCompact(stats) {
//	    messages, event, err = client.CompactContext(messages, maxContext, contextmgr.StrategySlidingWindow)
//	}
//
// The subpackages are usable on their own; the root package only wires them
// together and runs the registered hooks.
package hearth
