package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paceread/cadence/internal/preset"
	"github.com/paceread/cadence/internal/tokenizer"
)

func testModel() *Model {
	tokens := tokenizer.Tokenize("One two three four five.")
	return New(tokens, preset.DefaultConfig())
}

func TestModelInitStartsPlaybackAndTicks(t *testing.T) {
	m := testModel()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned a nil command, expected a tick")
	}
}

func TestModelViewRendersCurrentToken(t *testing.T) {
	m := testModel()
	m.Init()
	view := m.View()
	if view == "" {
		t.Error("View() returned empty string")
	}
}

func TestModelQuitOnQ(t *testing.T) {
	m := testModel()
	m.Init()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command for 'q'")
	}
}

func TestModelSpaceTogglesPlayPause(t *testing.T) {
	m := testModel()
	m.Init()

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.scheduler.GetState().IsRunning {
		t.Error("expected space to pause a running scheduler")
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !m.scheduler.GetState().IsRunning {
		t.Error("expected a second space to resume playback")
	}
}

func TestModelArrowKeysJump(t *testing.T) {
	m := testModel()
	m.Init()
	m.scheduler.Pause()

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.scheduler.GetState().CurrentIndex != 1 {
		t.Errorf("CurrentIndex after right arrow = %d, want 1", m.scheduler.GetState().CurrentIndex)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.scheduler.GetState().CurrentIndex != 0 {
		t.Errorf("CurrentIndex after left arrow = %d, want 0", m.scheduler.GetState().CurrentIndex)
	}
}

func TestPivotPadCentersOnRecognitionPoint(t *testing.T) {
	padded := pivotPad("hello", 5)
	if len(padded) != viewportWidth {
		t.Errorf("pivotPad() length = %d, want %d", len(padded), viewportWidth)
	}
	if !strings.Contains(padded, "hello") {
		t.Errorf("pivotPad() = %q, missing original text", padded)
	}
}

func TestPivotPadFallsBackToMeasuredWidth(t *testing.T) {
	padded := pivotPad("hello", 0)
	if !strings.Contains(padded, "hello") {
		t.Errorf("pivotPad() = %q, missing original text", padded)
	}
}

func TestModelDoneViewAfterComplete(t *testing.T) {
	m := testModel()
	m.Init()
	m.onComplete()

	if !strings.Contains(m.View(), "Done") {
		t.Errorf("expected completed view to mention Done, got %q", m.View())
	}
}
