package core

import (
	"fmt"
	"time"
)

// Canonical record form. ToMap/FromMap exchange threads as plain
// map[string]any records with RFC 3339 timestamps, the shape hosts persist
// and transmit. Parsing is deliberately permissive about absent keys (the
// validator owns semantic gaps); type mismatches and unparseable timestamps
// are errors naming the offending key or index.

// ToMap returns the canonical record form of the message.
func (m Message) ToMap() map[string]any {
	record := map[string]any{
		"role":      string(m.Role),
		"content":   m.Content,
		"timestamp": m.Timestamp.Format(time.RFC3339Nano),
	}
	if m.FunctionCall != nil {
		record["function_call"] = map[string]any{
			"name":      m.FunctionCall.Name,
			"arguments": m.FunctionCall.Arguments,
		}
	}
	if m.Name != "" {
		record["name"] = m.Name
	}
	return record
}

// MessageFromMap reconstructs a message from its canonical record form.
func MessageFromMap(record map[string]any) (Message, error) {
	role, err := optionalString(record, "role")
	if err != nil {
		return Message{}, err
	}
	content, err := optionalString(record, "content")
	if err != nil {
		return Message{}, err
	}
	name, err := optionalString(record, "name")
	if err != nil {
		return Message{}, err
	}
	ts, err := timeField(record, "timestamp")
	if err != nil {
		return Message{}, err
	}

	m := Message{Role: Role(role), Content: content, Name: name, Timestamp: ts}

	if raw, ok := record["function_call"]; ok && raw != nil {
		fcRecord, ok := raw.(map[string]any)
		if !ok {
			return Message{}, fmt.Errorf("key %q: expected record, got %T", "function_call", raw)
		}
		fcName, err := optionalString(fcRecord, "name")
		if err != nil {
			return Message{}, fmt.Errorf("function_call: %w", err)
		}
		fcArgs, err := optionalString(fcRecord, "arguments")
		if err != nil {
			return Message{}, fmt.Errorf("function_call: %w", err)
		}
		m.FunctionCall = &FunctionCall{Name: fcName, Arguments: fcArgs}
	}

	return m, nil
}

// ToMap returns the canonical record form of the tool call.
func (tc ToolCall) ToMap() map[string]any {
	record := map[string]any{
		"id":        tc.ID,
		"name":      tc.Name,
		"status":    string(tc.Status),
		"timestamp": tc.Timestamp.Format(time.RFC3339Nano),
	}
	if tc.Arguments != nil {
		args := make(map[string]any, len(tc.Arguments))
		for k, v := range tc.Arguments {
			args[k] = v
		}
		record["arguments"] = args
	}
	if tc.Result != nil {
		record["result"] = tc.Result
	}
	if tc.Error != "" {
		record["error"] = tc.Error
	}
	return record
}

// ToolCallFromMap reconstructs a tool call from its canonical record form.
func ToolCallFromMap(record map[string]any) (ToolCall, error) {
	id, err := optionalString(record, "id")
	if err != nil {
		return ToolCall{}, err
	}
	name, err := optionalString(record, "name")
	if err != nil {
		return ToolCall{}, err
	}
	status, err := optionalString(record, "status")
	if err != nil {
		return ToolCall{}, err
	}
	detail, err := optionalString(record, "error")
	if err != nil {
		return ToolCall{}, err
	}
	ts, err := timeField(record, "timestamp")
	if err != nil {
		return ToolCall{}, err
	}

	tc := ToolCall{
		ID:        id,
		Name:      name,
		Status:    ToolCallStatus(status),
		Error:     detail,
		Timestamp: ts,
		Result:    record["result"],
	}

	if raw, ok := record["arguments"]; ok && raw != nil {
		args, ok := raw.(map[string]any)
		if !ok {
			return ToolCall{}, fmt.Errorf("key %q: expected record, got %T", "arguments", raw)
		}
		tc.Arguments = make(map[string]any, len(args))
		for k, v := range args {
			tc.Arguments[k] = v
		}
	}

	return tc, nil
}

// ToMap returns the canonical record form of the event.
func (e Event) ToMap() map[string]any {
	record := map[string]any{
		"type":      string(e.Type),
		"timestamp": e.Timestamp.Format(time.RFC3339Nano),
	}
	if len(e.Data) > 0 {
		data := make(map[string]any, len(e.Data))
		for k, v := range e.Data {
			data[k] = v
		}
		record["data"] = data
	}
	return record
}

// EventFromMap reconstructs an event from its canonical record form.
func EventFromMap(record map[string]any) (Event, error) {
	eventType, err := optionalString(record, "type")
	if err != nil {
		return Event{}, err
	}
	ts, err := timeField(record, "timestamp")
	if err != nil {
		return Event{}, err
	}

	e := Event{Type: EventType(eventType), Timestamp: ts}

	if raw, ok := record["data"]; ok && raw != nil {
		data, ok := raw.(map[string]any)
		if !ok {
			return Event{}, fmt.Errorf("key %q: expected record, got %T", "data", raw)
		}
		e.Data = make(map[string]any, len(data))
		for k, v := range data {
			e.Data[k] = v
		}
	}

	return e, nil
}

// ToMap returns the canonical record form of the thread, including nested
// message and tool-call records. The inverse is ThreadFromMap; the pair
// round-trips every field losslessly.
func (t Thread) ToMap() map[string]any {
	messages := make([]any, len(t.Messages))
	for i, m := range t.Messages {
		messages[i] = m.ToMap()
	}
	toolCalls := make([]any, len(t.ToolCalls))
	for i, tc := range t.ToolCalls {
		toolCalls[i] = tc.ToMap()
	}
	return map[string]any{
		"messages":    messages,
		"tools_calls": toolCalls,
		"session_id":  t.SessionID,
		"created_at":  t.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  t.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ThreadFromMap reconstructs a thread from its canonical record form.
func ThreadFromMap(record map[string]any) (Thread, error) {
	sessionID, err := optionalString(record, "session_id")
	if err != nil {
		return Thread{}, err
	}
	createdAt, err := timeField(record, "created_at")
	if err != nil {
		return Thread{}, err
	}
	updatedAt, err := timeField(record, "updated_at")
	if err != nil {
		return Thread{}, err
	}

	msgRecords, ok := recordSlice(record["messages"])
	if !ok {
		return Thread{}, fmt.Errorf("key %q: expected a sequence of records", "messages")
	}
	tcRecords, ok := recordSlice(record["tools_calls"])
	if !ok {
		return Thread{}, fmt.Errorf("key %q: expected a sequence of records", "tools_calls")
	}

	t := Thread{
		Messages:  make([]Message, 0, len(msgRecords)),
		ToolCalls: make([]ToolCall, 0, len(tcRecords)),
		SessionID: sessionID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	for i, rec := range msgRecords {
		m, err := MessageFromMap(rec)
		if err != nil {
			return Thread{}, fmt.Errorf("message %d: %w", i+1, err)
		}
		t.Messages = append(t.Messages, m)
	}
	for i, rec := range tcRecords {
		tc, err := ToolCallFromMap(rec)
		if err != nil {
			return Thread{}, fmt.Errorf("tool call %d: %w", i+1, err)
		}
		t.ToolCalls = append(t.ToolCalls, tc)
	}
	return t, nil
}

// WireMessage is the chat-completion shape of a single message: role and
// content plus optional function name / function call. Timestamps and thread
// metadata are dropped; the projection is one-way.
type WireMessage struct {
	Role         string        `json:"role"`
	Content      string        `json:"content"`
	Name         string        `json:"name,omitempty"`
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
}

// ToWireFormat projects the thread's messages into chat-completion order.
// The returned slice is detached from the thread; mutating it leaves the
// thread untouched.
func (t Thread) ToWireFormat() []WireMessage {
	out := make([]WireMessage, len(t.Messages))
	for i, m := range t.Messages {
		wm := WireMessage{Role: string(m.Role), Content: m.Content, Name: m.Name}
		if m.FunctionCall != nil {
			fc := *m.FunctionCall
			wm.FunctionCall = &fc
		}
		out[i] = wm
	}
	return out
}

// optionalString reads a string key, tolerating absence and nil.
func optionalString(record map[string]any, key string) (string, error) {
	v, ok := record[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("key %q: expected string, got %T", key, v)
	}
	return s, nil
}

// timeField reads a required RFC 3339 timestamp key.
func timeField(record map[string]any, key string) (time.Time, error) {
	v, ok := record[key]
	if !ok || v == nil {
		return time.Time{}, fmt.Errorf("missing key %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("key %q: expected timestamp string, got %T", key, v)
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("key %q: %w", key, err)
	}
	return ts, nil
}

// recordSlice normalizes a sequence of nested records. Both []any (the shape
// produced by encoding/json) and []map[string]any (hand-built records) are
// accepted; nil normalizes to an empty sequence.
func recordSlice(v any) ([]map[string]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, true
	case []map[string]any:
		return s, true
	case []any:
		out := make([]map[string]any, 0, len(s))
		for _, e := range s {
			rec, ok := e.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, rec)
		}
		return out, true
	}
	return nil, false
}
