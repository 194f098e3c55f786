package core

import "time"

// ToolCallStatus tracks the lifecycle of an invoked tool.
type ToolCallStatus string

// Tool call lifecycle states.
const (
	ToolCallPending ToolCallStatus = "pending"
	ToolCallSuccess ToolCallStatus = "success"
	ToolCallError   ToolCallStatus = "error"
)

// Valid reports whether the status is one of the recognized values.
func (s ToolCallStatus) Valid() bool {
	switch s {
	case ToolCallPending, ToolCallSuccess, ToolCallError:
		return true
	}
	return false
}

// ToolCall records one invocation of an external tool and its outcome. Values
// are immutable; outcome transitions produce a new ToolCall.
//
// Contract:
//   - Status ToolCallError   => Error holds the failure text
//   - Status ToolCallSuccess => Result holds the produced payload
//
// Arguments and Result must hold JSON-native values (string, bool, float64,
// nil, []any, map[string]any) so the canonical record form round-trips
// losslessly.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Status    ToolCallStatus `json:"status"`
	Result    any            `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewToolCall creates a pending tool call with a generated ID stamped at the
// current UTC instant.
func NewToolCall(name string, args map[string]any) ToolCall {
	return ToolCall{
		ID:        NewID(),
		Name:      name,
		Arguments: args,
		Status:    ToolCallPending,
		Timestamp: time.Now().UTC(),
	}
}

// Succeed returns a copy of the tool call marked successful and carrying the
// produced result. Any previous error detail is cleared.
func (tc ToolCall) Succeed(result any) ToolCall {
	out := tc.clone()
	out.Status = ToolCallSuccess
	out.Result = result
	out.Error = ""
	return out
}

// Fail returns a copy of the tool call marked failed with the given detail.
// Any previous result is cleared.
func (tc ToolCall) Fail(detail string) ToolCall {
	out := tc.clone()
	out.Status = ToolCallError
	out.Error = detail
	out.Result = nil
	return out
}

// clone returns a copy whose Arguments map has its own top-level backing;
// nested values are shared, matching the clone depth used across the module.
func (tc ToolCall) clone() ToolCall {
	out := tc
	if tc.Arguments != nil {
		out.Arguments = make(map[string]any, len(tc.Arguments))
		for k, v := range tc.Arguments {
			out.Arguments[k] = v
		}
	}
	return out
}
