package core

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a conversational or diagnostic record.
type EventType string

// Event categories emitted over the life of a session.
const (
	EventUserMessage       EventType = "user_message"
	EventAssistantResponse EventType = "assistant_response"
	EventFunctionCall      EventType = "function_call"
	EventFunctionResult    EventType = "function_result"
	EventError             EventType = "error"
	EventSystem            EventType = "system"
)

// Valid reports whether the event type is one of the recognized values.
func (t EventType) Valid() bool {
	switch t {
	case EventUserMessage, EventAssistantResponse, EventFunctionCall,
		EventFunctionResult, EventError, EventSystem:
		return true
	}
	return false
}

// Event is a free-form system or diagnostic record. After emission it should
// be treated as immutable. Data is an open mapping of string keys to
// JSON-native values (string, bool, float64, nil, []any, map[string]any);
// no cross-field invariant applies beyond Type membership in the enum.
// Timestamp uses a native time.Time (UTC).
type Event struct {
	Type      EventType      `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewEvent creates an event of the given type stamped at the current UTC
// instant. Prefer the helper constructors for common semantic categories.
func NewEvent(eventType EventType, data map[string]any) Event {
	return Event{Type: eventType, Data: data, Timestamp: time.Now().UTC()}
}

// NewUserMessageEvent records a user turn entering the session.
func NewUserMessageEvent(content string) Event {
	return NewEvent(EventUserMessage, map[string]any{"content": content})
}

// NewAssistantResponseEvent records an assistant turn produced for the session.
func NewAssistantResponseEvent(content string) Event {
	return NewEvent(EventAssistantResponse, map[string]any{"content": content})
}

// NewFunctionCallEvent records the assistant requesting execution of a named
// function with a serialized argument payload.
func NewFunctionCallEvent(name, arguments string) Event {
	return NewEvent(EventFunctionCall, map[string]any{"name": name, "arguments": arguments})
}

// NewFunctionResultEvent records the completion outcome of a previously
// requested function call. If err is non-nil its message is copied into the
// event data.
func NewFunctionResultEvent(id, name string, result any, err error) Event {
	data := map[string]any{"id": id, "name": name}
	if result != nil {
		data["result"] = result
	}
	if err != nil {
		data["error"] = err.Error()
	}
	return NewEvent(EventFunctionResult, data)
}

// NewErrorEvent records a failure observed by the host application.
func NewErrorEvent(err error) Event {
	return NewEvent(EventError, map[string]any{"error": err.Error()})
}

// NewSystemEvent records an operational note such as a session being opened.
func NewSystemEvent(note string) Event {
	return NewEvent(EventSystem, map[string]any{"note": note})
}

// NewID generates a new unique identifier.
//
// This function creates a UUID-based unique identifier that can be used for
// tool call tracking and session correlation throughout the module.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }

// EventJournal records the event history of each session and answers replay
// queries. Implementations should be safe for concurrent use and must return
// defensive copies so callers cannot mutate journaled history.
type EventJournal interface {
	Record(sessionID string, ev Event) error
	Events(sessionID string) ([]Event, error)
}
