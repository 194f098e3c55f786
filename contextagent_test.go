package contextagent

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/samuelfernandof/context-agent-llm/core"
	"github.com/samuelfernandof/context-agent-llm/internal/testutil"
)

// mockThreadStore lets tests script store behavior and observe calls.
type mockThreadStore struct {
	mock.Mock
}

var _ core.ThreadStore = (*mockThreadStore)(nil)

func (m *mockThreadStore) Save(t core.Thread) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *mockThreadStore) Get(sessionID string) (core.Thread, error) {
	args := m.Called(sessionID)
	return args.Get(0).(core.Thread), args.Error(1)
}

func (m *mockThreadStore) AppendMessage(sessionID string, msg core.Message) (core.Thread, error) {
	args := m.Called(sessionID, msg)
	return args.Get(0).(core.Thread), args.Error(1)
}

func (m *mockThreadStore) AppendToolCall(sessionID string, tc core.ToolCall) (core.Thread, error) {
	args := m.Called(sessionID, tc)
	return args.Get(0).(core.Thread), args.Error(1)
}

// captureLogger records warning messages for assertions.
type captureLogger struct {
	warnings []string
}

func (l *captureLogger) Debug(msg string, args ...any) {}
func (l *captureLogger) Info(msg string, args ...any)  {}
func (l *captureLogger) Warn(msg string, args ...any)  { l.warnings = append(l.warnings, msg) }
func (l *captureLogger) Error(msg string, args ...any) {}

func TestManagerAppendFlow(t *testing.T) {
	m := New()

	_, err := m.Append("sess-1", core.NewUserMessage("What is the weather in Paris?"))
	require.NoError(t, err)

	_, err = m.Append("sess-1", core.NewFunctionCallMessage(core.FunctionCall{
		Name:      "get_weather",
		Arguments: `{"city":"Paris"}`,
	}))
	require.NoError(t, err)

	call := core.NewToolCall("get_weather", map[string]any{"city": "Paris"}).Succeed(map[string]any{"temp_c": 21.0})
	thread, err := m.AppendToolCall("sess-1", call)
	require.NoError(t, err)
	assert.Equal(t, 2, thread.MessageCount())
	assert.Equal(t, 1, thread.ToolCallCount())

	events, err := m.Events("sess-1")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, core.EventUserMessage, events[0].Type)
	assert.Equal(t, core.EventFunctionCall, events[1].Type)
	assert.Equal(t, core.EventFunctionResult, events[2].Type)
}

func TestManagerPendingToolCallJournalsRequest(t *testing.T) {
	m := New()

	_, err := m.AppendToolCall("sess-1", core.NewToolCall("lookup", map[string]any{"q": "go"}))
	require.NoError(t, err)

	events, err := m.Events("sess-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, core.EventFunctionCall, events[0].Type)
	assert.Equal(t, "lookup", events[0].Data["name"])
}

func TestManagerExportAndWireFormat(t *testing.T) {
	m := New()
	seed := core.NewThread("sess-1",
		core.NewSystemMessage("You are helpful."),
		core.NewUserMessage("Hi"),
	)
	require.NoError(t, m.Save(seed))

	record, err := m.Export("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", record["session_id"])

	wire, err := m.WireFormat("sess-1")
	require.NoError(t, err)
	require.Len(t, wire, 2)
	assert.Equal(t, core.RoleSystem, wire[0].Role)
}

func TestManagerValidateReturnsReportOnFailure(t *testing.T) {
	m := New()
	seed := core.NewThread("sess-1", core.NewMessage(core.RoleUser, ""))
	require.NoError(t, m.Save(seed))

	report, err := m.Validate("sess-1")

	require.Error(t, err)
	var integrity *core.IntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.Errors)
}

func TestManagerValidateOK(t *testing.T) {
	m := New()
	require.NoError(t, m.Save(core.NewThread("sess-1", core.NewUserMessage("Hi"))))

	report, err := m.Validate("sess-1")

	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, 1, report.MessageCount)
}

func TestManagerValidateOnAppendLogsFindings(t *testing.T) {
	logger := &captureLogger{}
	m := New(func(o *Options) {
		o.ValidateOnAppend = true
		o.Logger = logger
	})

	_, err := m.Append("sess-1", core.NewMessage(core.RoleUser, ""))
	require.NoError(t, err)

	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "thread integrity check failed")
}

func TestManagerToolConversation(t *testing.T) {
	seed := testutil.NewThreadBuilder("sess-9").
		System("You are helpful.").
		User("What is the weather in Paris?").
		FunctionCall("get_weather", `{"city":"Paris"}`).
		FunctionResult("get_weather", `{"temp_c":21}`).
		Assistant("It is 21C in Paris.").
		CompletedCall("get_weather", map[string]any{"city": "Paris"}, map[string]any{"temp_c": 21.0}).
		Build()

	m := New()
	require.NoError(t, m.Save(seed))

	report, err := m.Validate("sess-9")
	require.NoError(t, err)
	assert.True(t, report.Valid)
	assert.Equal(t, 5, report.MessageCount)
	assert.Equal(t, 1, report.ToolCallCount)

	wire, err := m.WireFormat("sess-9")
	require.NoError(t, err)
	require.Len(t, wire, 5)
	require.NotNil(t, wire[2].FunctionCall)
	assert.Equal(t, "get_weather", wire[2].FunctionCall.Name)
}

func TestManagerPropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("backend unavailable")
	ms := &mockThreadStore{}
	ms.On("Get", "sess-1").Return(core.Thread{}, storeErr)
	ms.On("AppendMessage", "sess-1", mock.Anything).Return(core.Thread{}, storeErr)

	m := New(func(o *Options) { o.ThreadStore = ms })

	_, err := m.Open("sess-1")
	assert.ErrorIs(t, err, storeErr)

	_, err = m.Export("sess-1")
	assert.ErrorIs(t, err, storeErr)

	_, err = m.Validate("sess-1")
	assert.ErrorIs(t, err, storeErr)

	_, err = m.Append("sess-1", core.NewUserMessage("Hi"))
	assert.ErrorIs(t, err, storeErr)

	// Nothing reached the journal for the failed append.
	events, jerr := m.Events("sess-1")
	require.NoError(t, jerr)
	assert.Empty(t, events)

	ms.AssertExpectations(t)
}
