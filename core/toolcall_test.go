package core

import "testing"

func TestToolCallStatus_Valid(t *testing.T) {
	for _, s := range []ToolCallStatus{ToolCallPending, ToolCallSuccess, ToolCallError} {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if ToolCallStatus("running").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestNewToolCall(t *testing.T) {
	tc := NewToolCall("get_weather", map[string]any{"city": "Berlin"})
	if tc.ID == "" || len(tc.ID) != 36 {
		t.Errorf("expected UUID id, got %q", tc.ID)
	}
	if tc.Status != ToolCallPending {
		t.Errorf("new tool calls start pending, got %q", tc.Status)
	}
	if tc.Name != "get_weather" || tc.Arguments["city"] != "Berlin" {
		t.Fatalf("unexpected tool call: %+v", tc)
	}
	if tc.Timestamp.IsZero() {
		t.Error("timestamp should be set at construction")
	}
}

func TestToolCall_SucceedAndFail(t *testing.T) {
	pending := NewToolCall("lookup", map[string]any{"q": "go"})

	done := pending.Succeed(map[string]any{"hits": "3"})
	if done.Status != ToolCallSuccess || done.Result == nil || done.Error != "" {
		t.Fatalf("unexpected success transition: %+v", done)
	}
	if pending.Status != ToolCallPending || pending.Result != nil {
		t.Error("original tool call should be untouched")
	}
	if done.ID != pending.ID || !done.Timestamp.Equal(pending.Timestamp) {
		t.Error("identity fields should carry over on transition")
	}

	failed := pending.Fail("connection refused")
	if failed.Status != ToolCallError || failed.Error != "connection refused" || failed.Result != nil {
		t.Fatalf("unexpected failure transition: %+v", failed)
	}

	// error detail cleared when a retry later succeeds
	recovered := failed.Succeed("ok")
	if recovered.Error != "" || recovered.Status != ToolCallSuccess {
		t.Fatalf("success should clear error detail: %+v", recovered)
	}
}

func TestToolCall_TransitionDoesNotAliasArguments(t *testing.T) {
	pending := NewToolCall("lookup", map[string]any{"q": "go"})
	done := pending.Succeed("ok")
	done.Arguments["q"] = "changed"
	if pending.Arguments["q"] != "go" {
		t.Error("transition should copy the arguments map")
	}
}
