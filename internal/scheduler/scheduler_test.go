package scheduler

import (
	"testing"
	"time"

	"github.com/paceread/cadence/internal/cadence"
	"github.com/paceread/cadence/internal/tokenizer"
)

func testConfig() cadence.Config {
	return cadence.Config{
		Wpm:                   300,
		CommaMultiplier:       1.2,
		SemicolonMultiplier:   1.5,
		ColonMultiplier:       1.0,
		PeriodMultiplier:      2.2,
		QuestionMultiplier:    2.5,
		ExclamationMultiplier: 2.0,
		ParagraphMultiplier:   2.5,
		WpmRampDuration:       500,
		EnableSmoothWpmRamp:   true,
		MinDurationFloor:      0.4,
		MaxDurationCap:        4.0,
		DomainMode:            cadence.DomainProse,
		AverageWindowSize:     25,
	}
}

func testTokens() []tokenizer.Token {
	return tokenizer.Tokenize("One two three four five.")
}

func TestSchedulerStartFiresOnTick(t *testing.T) {
	clock := newFakeClock()
	tokens := testTokens()
	ticks := 0
	s := NewWithClock(tokens, testConfig(), func(i int, tok tokenizer.Token) { ticks++ }, nil, clock)

	s.Start()
	clock.advance(300 * time.Millisecond)

	if ticks == 0 {
		t.Errorf("expected at least one onTick after advancing time, got 0")
	}
}

func TestSchedulerZeroTokensStaysIdle(t *testing.T) {
	clock := newFakeClock()
	ticks := 0
	s := NewWithClock(nil, testConfig(), func(i int, tok tokenizer.Token) { ticks++ }, nil, clock)

	s.Start()
	clock.advance(time.Second)

	if ticks != 0 {
		t.Errorf("expected no onTick for empty stream, got %d", ticks)
	}
	if s.GetState().IsRunning {
		t.Errorf("expected scheduler to remain idle for empty stream")
	}
}

func TestSchedulerPauseStopsAdvancing(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock(testTokens(), testConfig(), nil, nil, clock)

	s.Start()
	clock.advance(100 * time.Millisecond)
	s.Pause()
	idxAtPause := s.GetState().CurrentIndex

	clock.advance(2 * time.Second)
	if s.GetState().CurrentIndex != idxAtPause {
		t.Errorf("index advanced while paused: %d -> %d", idxAtPause, s.GetState().CurrentIndex)
	}
}

func TestSchedulerStopResetsToZero(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock(testTokens(), testConfig(), nil, nil, clock)

	s.Start()
	clock.advance(500 * time.Millisecond)
	s.Stop()

	state := s.GetState()
	if state.CurrentIndex != 0 || state.IsRunning {
		t.Errorf("Stop did not reset: %+v", state)
	}
}

func TestSchedulerJumpToClampsOutOfRange(t *testing.T) {
	clock := newFakeClock()
	tokens := testTokens()
	s := NewWithClock(tokens, testConfig(), nil, nil, clock)

	s.JumpTo(-5)
	if s.GetState().CurrentIndex != 0 {
		t.Errorf("JumpTo(-5) = %d, want 0", s.GetState().CurrentIndex)
	}

	s.JumpTo(10_000)
	if s.GetState().CurrentIndex != len(tokens)-1 {
		t.Errorf("JumpTo(huge) = %d, want %d", s.GetState().CurrentIndex, len(tokens)-1)
	}
}

func TestSchedulerJumpToFiresOnTickImmediately(t *testing.T) {
	clock := newFakeClock()
	tokens := testTokens()
	var lastIndex int = -1
	s := NewWithClock(tokens, testConfig(), func(i int, tok tokenizer.Token) { lastIndex = i }, nil, clock)

	s.JumpTo(2)
	if lastIndex != 2 {
		t.Errorf("JumpTo(2) onTick index = %d, want 2", lastIndex)
	}
}

func TestSchedulerCompletesAndFiresOnComplete(t *testing.T) {
	clock := newFakeClock()
	completed := false
	s := NewWithClock(testTokens(), testConfig(), nil, func() { completed = true }, clock)

	s.Start()
	clock.advance(30 * time.Second)

	if !completed {
		t.Errorf("expected onComplete to fire after advancing past the whole stream")
	}
	if s.GetState().IsRunning {
		t.Errorf("expected scheduler to stop running after completion")
	}
}

func TestSchedulerVisibilityPausesAndResumes(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock(testTokens(), testConfig(), nil, nil, clock)

	s.Start()
	clock.advance(50 * time.Millisecond)
	s.NotifyVisibility(true)

	if s.GetState().IsRunning {
		t.Errorf("expected scheduler to pause when hidden")
	}
	if !s.GetState().PausedByVisibility {
		t.Errorf("expected PausedByVisibility to be set")
	}

	s.Start() // refused while hidden
	if s.GetState().IsRunning {
		t.Errorf("Start should refuse while hidden")
	}

	s.NotifyVisibility(false)
	if !s.GetState().IsRunning {
		t.Errorf("expected scheduler to resume after becoming visible again")
	}
}

func TestSchedulerUpdateConfigWpmOnlyRamps(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock(testTokens(), testConfig(), nil, nil, clock)

	s.Start()
	clock.advance(10 * time.Millisecond)

	newConfig := testConfig()
	newConfig.Wpm = 450
	s.UpdateConfig(newConfig)

	if !s.IsRamping() {
		t.Errorf("expected a WPM-only config change to start a ramp while running")
	}

	clock.advance(600 * time.Millisecond)
	if s.IsRamping() {
		t.Errorf("expected ramp to retire after WpmRampDuration elapses")
	}
	if got := s.GetEffectiveWpm(); got != 450 {
		t.Errorf("GetEffectiveWpm after ramp = %d, want 450", got)
	}
}

func TestSchedulerUpdateConfigFullChangeDoesNotRamp(t *testing.T) {
	clock := newFakeClock()
	s := NewWithClock(testTokens(), testConfig(), nil, nil, clock)

	s.Start()
	newConfig := testConfig()
	newConfig.Wpm = 450
	newConfig.CommaMultiplier = 2.0 // more than just wpm changed
	s.UpdateConfig(newConfig)

	if s.IsRamping() {
		t.Errorf("a multi-field config change should not start a ramp")
	}
	if got := s.GetEffectiveWpm(); got != 450 {
		t.Errorf("GetEffectiveWpm = %d, want 450 applied immediately", got)
	}
}

func TestSchedulerDestroyStopsPendingFrame(t *testing.T) {
	clock := newFakeClock()
	ticks := 0
	s := NewWithClock(testTokens(), testConfig(), func(i int, tok tokenizer.Token) { ticks++ }, nil, clock)

	s.Start()
	s.Destroy()
	before := ticks

	clock.advance(5 * time.Second)
	if ticks != before {
		t.Errorf("expected no further onTick after Destroy, got %d more", ticks-before)
	}
}
