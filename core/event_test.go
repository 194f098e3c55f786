package core

import (
	"errors"
	"testing"
)

func TestEventType_Valid(t *testing.T) {
	valid := []EventType{
		EventUserMessage, EventAssistantResponse, EventFunctionCall,
		EventFunctionResult, EventError, EventSystem,
	}
	for _, et := range valid {
		if !et.Valid() {
			t.Errorf("event type %q should be valid", et)
		}
	}
	if EventType("heartbeat").Valid() {
		t.Error("unknown event type should be invalid")
	}
}

func TestEvent_Constructors(t *testing.T) {
	ev := NewUserMessageEvent("hi")
	if ev.Type != EventUserMessage || ev.Data["content"] != "hi" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Error("timestamp should be set at construction")
	}

	ev = NewAssistantResponseEvent("hello")
	if ev.Type != EventAssistantResponse || ev.Data["content"] != "hello" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	ev = NewFunctionCallEvent("get_weather", `{"city":"Berlin"}`)
	if ev.Type != EventFunctionCall || ev.Data["name"] != "get_weather" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	ev = NewFunctionResultEvent("tc-1", "get_weather", "sunny", nil)
	if ev.Type != EventFunctionResult || ev.Data["result"] != "sunny" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if _, hasErr := ev.Data["error"]; hasErr {
		t.Error("successful results should not carry an error key")
	}

	ev = NewFunctionResultEvent("tc-2", "get_weather", nil, errors.New("timeout"))
	if ev.Data["error"] != "timeout" {
		t.Fatalf("expected error detail in data: %+v", ev.Data)
	}

	ev = NewErrorEvent(errors.New("boom"))
	if ev.Type != EventError || ev.Data["error"] != "boom" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	ev = NewSystemEvent("session opened")
	if ev.Type != EventSystem || ev.Data["note"] != "session opened" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestEvent_IDUniqueness(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == b {
		t.Error("Expected unique IDs")
	}
	if len(a) != 36 {
		t.Errorf("expected UUID length 36, got %d (%q)", len(a), a)
	}
}
