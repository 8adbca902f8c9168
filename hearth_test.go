package hearth

import (
	"errors"
	"testing"

	"github.com/hearthchat/hearth/contextmgr"
	"github.com/hearthchat/hearth/hooks"
	"github.com/hearthchat/hearth/parse"
	"github.com/hearthchat/hearth/types"
)

func TestClientParseAndCompact(t *testing.T) {
	var parsed int
	client, err := New(
		WithHooks(hooks.ParseHookFunc(func(*parse.ParsedMessage) { parsed++ })),
	)
	if err != nil {
		t.Fatal(err)
	}

	msg := client.ParseMessage("<think>plan</think>answer", parse.Options{})
	if msg.Thinking.ThinkingContent != "plan" {
		t.Errorf("ThinkingContent = %q", msg.Thinking.ThinkingContent)
	}
	if parsed != 1 {
		t.Errorf("parse hook ran %d times, want 1", parsed)
	}

	// Streaming parses are not observed.
	client.ParseMessage("partial", parse.Options{IsStreaming: true})
	if parsed != 1 {
		t.Errorf("parse hook ran %d times after streaming parse, want 1", parsed)
	}

	messages := []types.Message{
		{Role: types.RoleUser, Content: "first question with some length to it"},
		{Role: types.RoleAssistant, Content: "first answer"},
		{Role: types.RoleUser, Content: "second question"},
		{Role: types.RoleAssistant, Content: "second answer"},
		{Role: types.RoleUser, Content: "third question"},
	}

	stats := client.ContextStats(messages, 100, "be helpful", nil)
	if stats.CurrentTokens == 0 {
		t.Error("CurrentTokens = 0")
	}

	kept, event, err := client.CompactContext(messages, 100, contextmgr.StrategySummarize)
	if err != nil {
		t.Fatal(err)
	}
	if event == nil || len(kept) == 0 {
		t.Fatalf("compaction returned kept=%d event=%v", len(kept), event)
	}
}

type countingHooks struct {
	before, after int
}

func (h *countingHooks) BeforeCompaction(contextmgr.ContextStats) { h.before++ }
func (h *countingHooks) AfterCompaction(*contextmgr.Event)        { h.after++ }

func TestClientCompactionHooks(t *testing.T) {
	counter := &countingHooks{}
	client, err := New(WithHooks(counter))
	if err != nil {
		t.Fatal(err)
	}

	messages := []types.Message{
		{Role: types.RoleUser, Content: "one"},
		{Role: types.RoleAssistant, Content: "two"},
	}
	if _, _, err := client.CompactContext(messages, 1000, ""); err != nil {
		t.Fatal(err)
	}
	if counter.before != 1 || counter.after != 1 {
		t.Errorf("hooks ran before=%d after=%d, want 1/1", counter.before, counter.after)
	}

	// A failed compaction must not fire the after hook.
	if _, _, err := client.CompactContext(messages, 1000, "bogus"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
	if counter.after != 1 {
		t.Errorf("after hook ran on failure: %d", counter.after)
	}
}

func TestWithHooksRejectsUnknownType(t *testing.T) {
	if _, err := New(WithHooks(42)); !errors.Is(err, ErrInvalidHook) {
		t.Errorf("err = %v, want ErrInvalidHook", err)
	}
}

func TestClientConfigOptions(t *testing.T) {
	client, err := New(
		WithParserConfig(parse.Config{CacheCapacity: 5, StripToolTags: true, StripBoxTags: true}),
		WithContextConfig(contextmgr.Config{PreserveRecentMessages: 2}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := client.Context().Config().PreserveRecentMessages; got != 2 {
		t.Errorf("PreserveRecentMessages = %d, want 2", got)
	}
	// Zero fields were defaulted.
	if got := client.Context().Config().CharsPerToken; got != contextmgr.DefaultCharsPerToken {
		t.Errorf("CharsPerToken = %d, want default", got)
	}
}
