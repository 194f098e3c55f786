package core

import "time"

// Role identifies the author of a message within a thread.
type Role string

// Message roles understood by the chat-completion protocol.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleFunction:
		return true
	}
	return false
}

// FunctionCall describes a tool/function invocation requested by the
// assistant.
type FunctionCall struct {
	Name      string `json:"name"`                // Tool / function name
	Arguments string `json:"arguments,omitempty"` // Serialized argument payload (e.g. JSON)
}

// Message is a single turn in a conversation. After construction it should be
// treated as immutable; edits produce a new Message value.
//
// Contract:
//   - Content may be empty only when FunctionCall is present
//   - Name is required when Role is RoleFunction
//   - Timestamp is fixed at construction (UTC)
//
// Neither rule is enforced here; partially formed messages can be built first
// and surfaced later by ValidateIntegrity.
type Message struct {
	Role         Role          `json:"role"`
	Content      string        `json:"content"`
	Timestamp    time.Time     `json:"timestamp"`
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
	Name         string        `json:"name,omitempty"`
}

// NewMessage creates a message with the given role and content stamped at the
// current UTC instant. Prefer the role-specific constructors for common
// categories.
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content, Timestamp: time.Now().UTC()}
}

// NewSystemMessage creates a system instruction message.
func NewSystemMessage(content string) Message { return NewMessage(RoleSystem, content) }

// NewUserMessage creates a user-authored message.
func NewUserMessage(content string) Message { return NewMessage(RoleUser, content) }

// NewAssistantMessage creates an assistant response message.
func NewAssistantMessage(content string) Message { return NewMessage(RoleAssistant, content) }

// NewFunctionMessage creates a function-role message carrying the output
// produced by the named function.
func NewFunctionMessage(name, content string) Message {
	m := NewMessage(RoleFunction, content)
	m.Name = name
	return m
}

// NewFunctionCallMessage creates an assistant message requesting a function
// invocation instead of carrying text content.
func NewFunctionCallMessage(fc FunctionCall) Message {
	m := NewMessage(RoleAssistant, "")
	m.FunctionCall = &fc
	return m
}

// WithContent returns a copy of the message with content replaced; role,
// timestamp, function call and name are preserved.
func (m Message) WithContent(content string) Message {
	out := m.clone()
	out.Content = content
	return out
}

// clone returns a copy whose FunctionCall pointer has its own backing value,
// so derived messages never alias their parent.
func (m Message) clone() Message {
	out := m
	if m.FunctionCall != nil {
		fc := *m.FunctionCall
		out.FunctionCall = &fc
	}
	return out
}
