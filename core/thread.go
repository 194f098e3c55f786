package core

import "time"

// Thread is the full, ordered state of one conversation session: messages,
// tool calls and session metadata. It is an immutable value; every update
// method returns a new Thread and leaves the receiver untouched, so one
// Thread may be read from any number of goroutines without locks.
//
// Contract:
//   - AddMessage / AddToolCall append to fresh backing arrays and refresh
//     UpdatedAt
//   - TransformContent rewrites message content only; UpdatedAt is kept as-is
//   - UpdatedAt never precedes CreatedAt on threads built by this package
//   - Accessors return defensive copies to avoid external mutation
//
// Which derived Thread becomes the new canonical reference is the caller's
// decision; ThreadStore implementations apply last-writer-wins.
type Thread struct {
	Messages []Message `json:"messages"`
	// ToolCalls serializes under the historical "tools_calls" key, kept
	// verbatim for compatibility with existing session records.
	ToolCalls []ToolCall `json:"tools_calls"`
	SessionID string     `json:"session_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewThread creates a thread for the given session, optionally seeded with
// initial messages. Both timestamps are set to the same UTC instant. An empty
// sessionID is accepted here and reported by ValidateIntegrity.
func NewThread(sessionID string, msgs ...Message) Thread {
	now := time.Now().UTC()
	t := Thread{
		Messages:  make([]Message, 0, len(msgs)),
		ToolCalls: []ToolCall{},
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, m := range msgs {
		t.Messages = append(t.Messages, m.clone())
	}
	return t
}

// AddMessage returns a new thread with msg appended and UpdatedAt refreshed.
// The receiver is left untouched.
func (t Thread) AddMessage(msg Message) Thread {
	out := t.Clone()
	out.Messages = append(out.Messages, msg.clone())
	out.UpdatedAt = time.Now().UTC()
	return out
}

// AddToolCall returns a new thread with tc appended and UpdatedAt refreshed.
// The receiver is left untouched.
func (t Thread) AddToolCall(tc ToolCall) Thread {
	out := t.Clone()
	out.ToolCalls = append(out.ToolCalls, tc.clone())
	out.UpdatedAt = time.Now().UTC()
	return out
}

// TransformContent returns a new thread in which every message's content has
// been replaced by mapFn(content). Role, timestamp, function call and name
// are preserved per message; tool calls, session id and both thread
// timestamps carry over unchanged. Only appends refresh UpdatedAt.
func (t Thread) TransformContent(mapFn func(string) string) Thread {
	out := t.Clone()
	for i := range out.Messages {
		out.Messages[i].Content = mapFn(out.Messages[i].Content)
	}
	return out
}

// MessageCount returns the number of messages in the thread.
func (t Thread) MessageCount() int { return len(t.Messages) }

// ToolCallCount returns the number of tool calls in the thread.
func (t Thread) ToolCallCount() int { return len(t.ToolCalls) }

// Empty reports whether the thread holds no messages and no tool calls.
func (t Thread) Empty() bool { return len(t.Messages) == 0 && len(t.ToolCalls) == 0 }

// LastMessage returns the most recent message and true, or a zero message and
// false for a thread without messages.
func (t Thread) LastMessage() (Message, bool) {
	if len(t.Messages) == 0 {
		return Message{}, false
	}
	return t.Messages[len(t.Messages)-1].clone(), true
}

// History returns a copy of the message sequence in conversation order,
// optionally filtered to the given roles.
func (t Thread) History(roles ...Role) []Message {
	allowed := make(map[Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	res := make([]Message, 0, len(t.Messages))
	for _, m := range t.Messages {
		if len(allowed) > 0 && !allowed[m.Role] {
			continue
		}
		res = append(res, m.clone())
	}
	return res
}

// Clone returns a deep copy of the thread safe for independent use. Both
// sequences get fresh backing arrays; nested function calls and argument maps
// are copied one level deep.
func (t Thread) Clone() Thread {
	out := t
	out.Messages = make([]Message, len(t.Messages))
	for i, m := range t.Messages {
		out.Messages[i] = m.clone()
	}
	out.ToolCalls = make([]ToolCall, len(t.ToolCalls))
	for i, tc := range t.ToolCalls {
		out.ToolCalls[i] = tc.clone()
	}
	return out
}

// ThreadStore holds the canonical thread per session. Because Thread is an
// immutable value, implementations exchange whole snapshots; the last saved
// snapshot wins.
type ThreadStore interface {
	Save(t Thread) error
	Get(sessionID string) (Thread, error)
	AppendMessage(sessionID string, msg Message) (Thread, error)
	AppendToolCall(sessionID string, tc ToolCall) (Thread, error)
}
