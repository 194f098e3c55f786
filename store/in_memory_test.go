package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/samuelfernandof/context-agent-llm/core"
)

// Interface compliance (compile-time assertions)
var _ core.ThreadStore = (*InMemoryStore)(nil)

func TestInMemoryStore_SaveGetIsolation(t *testing.T) {
	s := NewInMemoryStore()
	th := core.NewThread("s1", core.NewUserMessage("hi"))
	if err := s.Save(th); err != nil {
		t.Fatalf("save: %v", err)
	}

	// mutate the caller's thread after saving
	th.Messages[0].Content = "changed"

	out, err := s.Get("s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Messages[0].Content != "hi" {
		t.Fatalf("expected isolation from caller mutation, got %q", out.Messages[0].Content)
	}

	// mutate the returned thread
	out.Messages[0].Content = "x"
	out2, _ := s.Get("s1")
	if out2.Messages[0].Content != "hi" {
		t.Fatalf("expected isolation from reader mutation, got %q", out2.Messages[0].Content)
	}
}

func TestInMemoryStore_RejectsEmptySessionID(t *testing.T) {
	s := NewInMemoryStore()
	err := s.Save(core.NewThread(""))
	if !errors.Is(err, ErrEmptySessionID) {
		t.Fatalf("expected ErrEmptySessionID, got %v", err)
	}
}

func TestInMemoryStore_GetCreatesLazily(t *testing.T) {
	s := NewInMemoryStore()
	th, err := s.Get("fresh")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if th.SessionID != "fresh" || !th.Empty() {
		t.Fatalf("expected empty lazily created thread, got %+v", th)
	}
}

func TestInMemoryStore_AppendBecomesCanonical(t *testing.T) {
	s := NewInMemoryStore()

	first, err := s.AppendMessage("s1", core.NewUserMessage("hi"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first.MessageCount() != 1 {
		t.Fatalf("expected 1 message, got %d", first.MessageCount())
	}

	second, err := s.AppendMessage("s1", core.NewAssistantMessage("hello"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if second.MessageCount() != 2 {
		t.Fatalf("appends should accumulate, got %d messages", second.MessageCount())
	}

	withCall, err := s.AppendToolCall("s1", core.NewToolCall("get_weather", nil))
	if err != nil {
		t.Fatalf("append tool call: %v", err)
	}
	if withCall.ToolCallCount() != 1 {
		t.Fatalf("expected 1 tool call, got %d", withCall.ToolCallCount())
	}

	canonical, _ := s.Get("s1")
	if canonical.MessageCount() != 2 || canonical.ToolCallCount() != 1 {
		t.Fatalf("canonical state out of sync: %+v", canonical)
	}
}

func TestInMemoryStore_SaveIsLastWriterWins(t *testing.T) {
	s := NewInMemoryStore()
	base, _ := s.AppendMessage("s1", core.NewUserMessage("hi"))

	// two derived threads from the same base; the second save wins
	a := base.AddMessage(core.NewAssistantMessage("from a"))
	b := base.AddMessage(core.NewAssistantMessage("from b"))
	if err := s.Save(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(b); err != nil {
		t.Fatal(err)
	}

	canonical, _ := s.Get("s1")
	last, ok := canonical.LastMessage()
	if !ok || last.Content != "from b" {
		t.Fatalf("expected last writer to win, got %+v", last)
	}
}

func TestInMemoryStore_Concurrency(t *testing.T) {
	s := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			sessionID := fmt.Sprintf("s%d", i%10)
			if _, err := s.AppendMessage(sessionID, core.NewUserMessage("m")); err != nil {
				t.Errorf("append err: %v", err)
			}
			_, _ = s.Get(sessionID)
		}()
	}
	wg.Wait()

	total := 0
	for i := 0; i < 10; i++ {
		th, err := s.Get(fmt.Sprintf("s%d", i))
		if err != nil {
			t.Fatal(err)
		}
		total += th.MessageCount()
	}
	if total != 100 {
		t.Fatalf("expected 100 messages across sessions, got %d", total)
	}
}
