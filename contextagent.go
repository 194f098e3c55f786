// Package contextagent provides a high-level façade over the conversational
// thread model and its services (thread store, event journal & logging),
// enabling rapid construction of LLM-backed conversation hosts. Most
// applications interact with this package by:
//  1. Creating a Manager via New() (optionally overriding default in-memory services)
//  2. Appending messages and tool calls to session threads
//  3. Validating, exporting or replaying threads as needed
//
// The façade delegates persistence to the configured stores while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply durable
// store implementations and a structured logger.
package contextagent

import (
	"encoding/json"
	"errors"

	"github.com/samuelfernandof/context-agent-llm/core"
	"github.com/samuelfernandof/context-agent-llm/logging"
	"github.com/samuelfernandof/context-agent-llm/store"
)

// Options configures the Manager instance.
type Options struct {
	// Stores (defaults to in-memory implementations if not provided)
	ThreadStore  core.ThreadStore
	EventJournal core.EventJournal

	// ValidateOnAppend runs an integrity check after every append and logs
	// the findings. Appends never fail on validation: records are kept and
	// the report is advisory, so hosts can surface problems without losing
	// history.
	ValidateOnAppend bool

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Manager is the high-level façade aggregating the thread store and the
// event journal behind session-scoped operations.
type Manager struct {
	opts Options
}

// New creates a new Manager instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Manager {
	opts := Options{
		ThreadStore:  store.NewInMemoryStore(),
		EventJournal: store.NewInMemoryJournal(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Manager{opts: opts}
}

// Open returns the thread for the given session.
func (m *Manager) Open(sessionID string) (core.Thread, error) {
	return m.opts.ThreadStore.Get(sessionID)
}

// Save stores the given thread, replacing any prior state for its session.
func (m *Manager) Save(t core.Thread) error {
	return m.opts.ThreadStore.Save(t)
}

// Append adds a message to the session's thread, journals a matching event
// and returns the updated thread.
func (m *Manager) Append(sessionID string, msg core.Message) (core.Thread, error) {
	thread, err := m.opts.ThreadStore.AppendMessage(sessionID, msg)
	if err != nil {
		return core.Thread{}, err
	}
	m.journal(sessionID, messageEvent(msg))
	if m.opts.ValidateOnAppend {
		m.checkIntegrity(thread)
	}
	return thread, nil
}

// AppendToolCall adds a tool call record to the session's thread, journals a
// matching event and returns the updated thread.
func (m *Manager) AppendToolCall(sessionID string, tc core.ToolCall) (core.Thread, error) {
	thread, err := m.opts.ThreadStore.AppendToolCall(sessionID, tc)
	if err != nil {
		return core.Thread{}, err
	}
	m.journal(sessionID, toolCallEvent(tc))
	if m.opts.ValidateOnAppend {
		m.checkIntegrity(thread)
	}
	return thread, nil
}

// Validate runs the integrity check against the session's thread. The report
// is returned alongside the check's error so callers can inspect findings on
// both outcomes.
func (m *Manager) Validate(sessionID string) (core.ValidationReport, error) {
	thread, err := m.opts.ThreadStore.Get(sessionID)
	if err != nil {
		return core.ValidationReport{}, err
	}
	report, err := core.ValidateIntegrity(thread).Unwrap()
	if err != nil {
		var integrity *core.IntegrityError
		if errors.As(err, &integrity) {
			report = integrity.Report
		}
	}
	return report, err
}

// Export returns the session thread's canonical record form.
func (m *Manager) Export(sessionID string) (map[string]any, error) {
	thread, err := m.opts.ThreadStore.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return thread.ToMap(), nil
}

// WireFormat returns the session thread's chat-completion projection.
func (m *Manager) WireFormat(sessionID string) ([]core.WireMessage, error) {
	thread, err := m.opts.ThreadStore.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return thread.ToWireFormat(), nil
}

// Events returns the journaled event history of the session.
func (m *Manager) Events(sessionID string) ([]core.Event, error) {
	return m.opts.EventJournal.Events(sessionID)
}

// journal records the event best-effort. The journal is advisory history,
// so failures are logged rather than surfaced to the appending caller.
func (m *Manager) journal(sessionID string, ev core.Event) {
	if err := m.opts.EventJournal.Record(sessionID, ev); err != nil {
		m.opts.Logger.Warn("event journal record failed session_id=%s: %v", sessionID, err)
	}
}

func (m *Manager) checkIntegrity(t core.Thread) {
	res := core.ValidateIntegrity(t)
	if res.IsOk() {
		return
	}
	var integrity *core.IntegrityError
	if errors.As(res.Err, &integrity) {
		m.opts.Logger.Warn("thread integrity check failed session_id=%s errors=%d warnings=%d",
			t.SessionID, len(integrity.Report.Errors), len(integrity.Report.Warnings))
	}
}

// messageEvent derives the journal event matching an appended message.
func messageEvent(msg core.Message) core.Event {
	switch {
	case msg.Role == core.RoleUser:
		return core.NewUserMessageEvent(msg.Content)
	case msg.Role == core.RoleAssistant && msg.FunctionCall != nil:
		return core.NewFunctionCallEvent(msg.FunctionCall.Name, msg.FunctionCall.Arguments)
	case msg.Role == core.RoleAssistant:
		return core.NewAssistantResponseEvent(msg.Content)
	case msg.Role == core.RoleFunction:
		return core.NewFunctionResultEvent("", msg.Name, msg.Content, nil)
	default:
		return core.NewSystemEvent(msg.Content)
	}
}

// toolCallEvent derives the journal event matching an appended tool call.
// Pending records journal the request; settled records journal the outcome.
func toolCallEvent(tc core.ToolCall) core.Event {
	if tc.Status == core.ToolCallPending {
		arguments := ""
		if len(tc.Arguments) > 0 {
			if raw, err := json.Marshal(tc.Arguments); err == nil {
				arguments = string(raw)
			}
		}
		return core.NewFunctionCallEvent(tc.Name, arguments)
	}
	var callErr error
	if tc.Error != "" {
		callErr = errors.New(tc.Error)
	}
	return core.NewFunctionResultEvent(tc.ID, tc.Name, tc.Result, callErr)
}
