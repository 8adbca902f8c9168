// Package contextmgr tracks and enforces a token budget across a growing
// conversation.
//
// The Manager estimates the token cost of a message list plus system prompt
// and tool schema, classifies utilization against the model's maximum
// context size, and, when the caller decides to compact, runs one of three
// strategies:
//
//   - sliding_window (default): keep the recent tail verbatim, then keep as
//     many older messages as fit under the token target, newest first.
//
//   - truncate: drop the oldest messages until the total fits the target,
//     never dropping into the preserved tail.
//
//   - summarize: replace all older messages with exactly one synthetic
//     system message carrying a truncated transcript.
//
// Token estimation is a length heuristic (roughly four characters per
// token), documented as an approximation. Callers needing accurate counts
// can plug a BPE tokenizer in via WithEstimator; the same estimator then
// backs every count the manager produces, keeping utilization internally
// consistent.
//
// The manager holds no conversation state, performs no I/O, and never
// triggers compaction on its own: states move from "needed" through
// "compacting" to "done" only inside a single synchronous Compact call,
// which either returns a complete result or an error, never a partial one.
package contextmgr
