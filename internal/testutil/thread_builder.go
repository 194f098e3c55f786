package testutil

import (
	"time"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// ThreadBuilder helps construct threads with fluent chaining for tests.
// Example:
//
//	th := NewThreadBuilder("sess-1").User("hi").Assistant("hello").Build()
//
// Chain only the parts you need; timestamps default to construction time.
type ThreadBuilder struct {
	sessionID string
	messages  []core.Message
	toolCalls []core.ToolCall
	createdAt *time.Time
	updatedAt *time.Time
}

// NewThreadBuilder creates a new builder for a thread with the given session id.
// Use chainable methods (System, User, Assistant, ...) then call Build.
func NewThreadBuilder(sessionID string) *ThreadBuilder {
	return &ThreadBuilder{sessionID: sessionID}
}

// System appends a system message (chainable).
func (b *ThreadBuilder) System(text string) *ThreadBuilder {
	b.messages = append(b.messages, core.NewSystemMessage(text))
	return b
}

// User appends a user message (chainable).
func (b *ThreadBuilder) User(text string) *ThreadBuilder {
	b.messages = append(b.messages, core.NewUserMessage(text))
	return b
}

// Assistant appends an assistant message (chainable).
func (b *ThreadBuilder) Assistant(text string) *ThreadBuilder {
	b.messages = append(b.messages, core.NewAssistantMessage(text))
	return b
}

// FunctionCall appends an assistant message carrying a function call with the
// provided name and JSON argument string (chainable).
func (b *ThreadBuilder) FunctionCall(name, args string) *ThreadBuilder {
	b.messages = append(b.messages, core.NewFunctionCallMessage(core.FunctionCall{
		Name:      name,
		Arguments: args,
	}))
	return b
}

// FunctionResult appends a function role reply carrying the named function's
// output (chainable).
func (b *ThreadBuilder) FunctionResult(name, content string) *ThreadBuilder {
	b.messages = append(b.messages, core.NewFunctionMessage(name, content))
	return b
}

// Message appends a prebuilt message, useful for malformed inputs (chainable).
func (b *ThreadBuilder) Message(msg core.Message) *ThreadBuilder {
	b.messages = append(b.messages, msg)
	return b
}

// ToolCall appends a prebuilt tool call record (chainable).
func (b *ThreadBuilder) ToolCall(tc core.ToolCall) *ThreadBuilder {
	b.toolCalls = append(b.toolCalls, tc)
	return b
}

// PendingCall appends a pending tool call record (chainable).
func (b *ThreadBuilder) PendingCall(name string, args map[string]any) *ThreadBuilder {
	return b.ToolCall(core.NewToolCall(name, args))
}

// CompletedCall appends a succeeded tool call record with the given result (chainable).
func (b *ThreadBuilder) CompletedCall(name string, args map[string]any, result any) *ThreadBuilder {
	return b.ToolCall(core.NewToolCall(name, args).Succeed(result))
}

// FailedCall appends a failed tool call record with the given error detail (chainable).
func (b *ThreadBuilder) FailedCall(name string, args map[string]any, detail string) *ThreadBuilder {
	return b.ToolCall(core.NewToolCall(name, args).Fail(detail))
}

// CreatedAt overrides the thread's creation timestamp (chainable). Use mainly
// in tests where determinism matters.
func (b *ThreadBuilder) CreatedAt(ts time.Time) *ThreadBuilder { b.createdAt = &ts; return b }

// UpdatedAt overrides the thread's update timestamp (chainable).
func (b *ThreadBuilder) UpdatedAt(ts time.Time) *ThreadBuilder { b.updatedAt = &ts; return b }

// Build constructs the core.Thread value with the accumulated history.
func (b *ThreadBuilder) Build() core.Thread {
	t := core.NewThread(b.sessionID, b.messages...)
	for _, tc := range b.toolCalls {
		t = t.AddToolCall(tc)
	}
	if b.createdAt != nil {
		t.CreatedAt = *b.createdAt
	}
	if b.updatedAt != nil {
		t.UpdatedAt = *b.updatedAt
	}
	return t
}
