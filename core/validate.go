package core

import (
	"fmt"

	"github.com/samuelfernandof/context-agent-llm/result"
)

// ValidationReport is the structured output of ValidateIntegrity. Errors are
// blocking; warnings flag tolerated oddities such as out-of-order timestamps.
// Both lists are populated regardless of which branch the result takes.
type ValidationReport struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	MessageCount  int      `json:"message_count"`
	ToolCallCount int      `json:"tool_call_count"`
}

// IntegrityError carries the full report when validation fails, so the
// failure branch exposes the same detail as the success branch.
type IntegrityError struct {
	Report ValidationReport
}

// Error implements the error interface for IntegrityError.
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("thread integrity: %d error(s), %d warning(s)",
		len(e.Report.Errors), len(e.Report.Warnings))
}

// ValidateIntegrity checks the cross-field invariants of a thread. Every
// check runs on every call; violations accumulate into a single report so one
// pass surfaces all problems at once. Errors block (the result fails),
// warnings do not.
//
// Checks:
//   - session id non-empty
//   - updated_at not before created_at
//   - per message (1-based in report text): recognized role; content or
//     function call present; function role carries a name
//   - adjacent messages whose timestamps regress (warning)
//   - per tool call: recognized status; error status carries error detail;
//     success status without a result (warning)
//
// On failure the result carries an *IntegrityError wrapping the report.
func ValidateIntegrity(t Thread) result.Result[ValidationReport] {
	report := ValidationReport{
		Errors:        []string{},
		Warnings:      []string{},
		MessageCount:  len(t.Messages),
		ToolCallCount: len(t.ToolCalls),
	}

	if t.SessionID == "" {
		report.Errors = append(report.Errors, "session_id is required")
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		report.Errors = append(report.Errors, "updated_at precedes created_at")
	}

	for i, m := range t.Messages {
		if !m.Role.Valid() {
			report.Errors = append(report.Errors,
				fmt.Sprintf("message %d: invalid role %q", i+1, m.Role))
		}
		if m.Content == "" && m.FunctionCall == nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("message %d: content is empty and no function call is present", i+1))
		}
		if m.Role == RoleFunction && m.Name == "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("message %d: function role requires a name", i+1))
		}
		if i > 0 && m.Timestamp.Before(t.Messages[i-1].Timestamp) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("message %d: timestamp precedes message %d", i+1, i))
		}
	}

	for i, tc := range t.ToolCalls {
		if !tc.Status.Valid() {
			report.Errors = append(report.Errors,
				fmt.Sprintf("tool call %d: invalid status %q", i+1, tc.Status))
		}
		if tc.Status == ToolCallError && tc.Error == "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("tool call %d: error status without error detail", i+1))
		}
		if tc.Status == ToolCallSuccess && tc.Result == nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("tool call %d: success status without a result", i+1))
		}
	}

	report.Valid = len(report.Errors) == 0
	if !report.Valid {
		return result.Err[ValidationReport](&IntegrityError{Report: report})
	}
	return result.Ok(report)
}
