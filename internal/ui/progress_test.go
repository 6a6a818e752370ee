package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	files := []string{"a.zn", "b.zn", "c.zn"}
	m := NewProgressModel("checking", files, nil).(*progressModel)

	m.Update(eventMsg{File: "a.zn", Status: StatusWorking})
	if got := m.percent(); got != 0.5/3 {
		t.Fatalf("percent = %v", got)
	}
	m.Update(eventMsg{File: "a.zn", Status: StatusDone})
	m.Update(eventMsg{File: "b.zn", Status: StatusFailed, Detail: "1:5"})
	m.Update(eventMsg{File: "b.zn", Status: StatusWorking}) // ignored once finished
	m.Update(eventMsg{File: "zzz.zn", Status: StatusDone})  // unknown file

	if m.items[1].status != StatusFailed {
		t.Fatalf("finished status overwritten: %v", m.items[1].status)
	}
	if m.failed != 1 || m.finished() != 2 {
		t.Fatalf("failed=%d finished=%d", m.failed, m.finished())
	}

	view := m.View()
	for _, want := range []string{"checking 2/3, 1 failed", "b.zn:1:5", "error", "queued"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModelQuitsWhenEventsClose(t *testing.T) {
	events := make(chan Event)
	close(events)
	m := NewProgressModel("checking", []string{"a.zn"}, events).(*progressModel)

	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if !m.done || cmd == nil {
		t.Fatal("expected quit after events close")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "done: checking 0/1") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 8); got != "abcde..." {
		t.Fatalf("got %q", got)
	}
	if got := truncate("short", 8); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("got %q", got)
	}
}
