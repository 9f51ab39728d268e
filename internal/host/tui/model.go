// Package tui is the terminal demo host: a bubbletea.Model that drives a
// scheduler.Scheduler against a real clock and renders the current token
// centered on screen. It is the external collaborator the core packages
// never import — spec.md places display and input handling out of scope
// for the engine itself.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"github.com/paceread/cadence/internal/cadence"
	"github.com/paceread/cadence/internal/scheduler"
	"github.com/paceread/cadence/internal/tokenizer"
)

// ErrTerminalInit reports that the terminal program could not be started.
var ErrTerminalInit = errors.New("tui: terminal initialization failed")

const tickInterval = 16 * time.Millisecond

// viewportWidth is the fixed column budget the current token is padded to,
// so the rendered block doesn't jitter in width from token to token.
const viewportWidth = 40

// orpFraction locates the optimal recognition point inside a word — the
// letter the eye should land on without needing to saccade — as a fraction
// of the word's display width.
const orpFraction = 0.35

var log = logrus.StandardLogger()

var (
	tokenStyle    = lipgloss.NewStyle().Bold(true).Padding(1, 2)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea program state for the reading session.
type Model struct {
	scheduler *scheduler.Scheduler
	tokens    []tokenizer.Token
	config    cadence.Config

	currentIndex int
	currentToken tokenizer.Token
	done         bool
}

// New constructs a Model ready to run against tokens with config.
func New(tokens []tokenizer.Token, config cadence.Config) *Model {
	m := &Model{tokens: tokens, config: config}
	m.scheduler = scheduler.New(tokens, config, m.onTick, m.onComplete)
	return m
}

func (m *Model) onTick(index int, token tokenizer.Token) {
	m.currentIndex = index
	m.currentToken = token
}

func (m *Model) onComplete() {
	m.done = true
	log.WithField("tokens", len(m.tokens)).Debug("playback complete")
}

// Init starts playback and schedules the first frame tick.
func (m *Model) Init() tea.Cmd {
	m.scheduler.Start()
	return tickCmd()
}

// Update handles key bindings and frame ticks. Space toggles play/pause,
// left/right jump by one token, q quits.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.scheduler.Destroy()
			return m, tea.Quit
		case " ":
			state := m.scheduler.GetState()
			if state.IsRunning {
				m.scheduler.Pause()
			} else {
				m.scheduler.Start()
			}
		case "left":
			state := m.scheduler.GetState()
			m.scheduler.JumpTo(state.CurrentIndex - 1)
		case "right":
			state := m.scheduler.GetState()
			m.scheduler.JumpTo(state.CurrentIndex + 1)
		}
		return m, nil
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tickCmd()
	}
	return m, nil
}

// pivotPad left-pads text so its optimal recognition point lands at the
// viewport's center column, then right-pads the result out to
// viewportWidth so the rendered block holds a stable width across tokens.
// displayWidth is the tokenizer's precomputed go-runewidth measurement;
// ansi.StringWidth re-measures after padding to size the trailing fill,
// since it reports the same rune-aware width without re-walking the string
// by hand.
func pivotPad(text string, displayWidth int) string {
	if displayWidth <= 0 {
		displayWidth = ansi.StringWidth(text)
	}

	orp := int(float64(displayWidth) * orpFraction)
	if orp >= displayWidth {
		orp = displayWidth - 1
	}
	if orp < 0 {
		orp = 0
	}

	leftPad := viewportWidth/2 - orp
	if leftPad < 0 {
		leftPad = 0
	}
	padded := strings.Repeat(" ", leftPad) + text

	if remaining := viewportWidth - ansi.StringWidth(padded); remaining > 0 {
		padded += strings.Repeat(" ", remaining)
	}
	return padded
}

// View renders the current token centered, with a play/pause and WPM
// readout beneath it.
func (m *Model) View() string {
	if m.done {
		return completeStyle.Render("Done.") + "\n"
	}

	text := pivotPad(m.currentToken.Text, m.currentToken.DisplayWidth)

	state := m.scheduler.GetState()
	status := "playing"
	if !state.IsRunning {
		status = "paused"
	}

	readout := fmt.Sprintf("%s — %d wpm — %d/%d", status, m.scheduler.GetEffectiveWpm(), m.currentIndex+1, len(m.tokens))

	return lipgloss.JoinVertical(lipgloss.Center,
		tokenStyle.Render(text),
		statusStyle.Render(readout),
	) + "\n"
}

// Run starts the bubbletea program for the given tokens and config,
// blocking until the user quits. It registers no visibility hook —
// terminals have no backgrounding signal — which per spec.md §4.3 and §9
// simply disables auto-pause; every other scheduler semantic holds.
func Run(tokens []tokenizer.Token, config cadence.Config) error {
	m := New(tokens, config)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrTerminalInit, err)
	}
	return nil
}
