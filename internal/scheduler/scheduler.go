// Package scheduler drives a tokenized stream against real time, reporting
// the current token via a callback on each frame. It owns the mutable
// playback position and flow state; internal/cadence stays pure.
package scheduler

import (
	"math"
	"sync"
	"time"

	"github.com/paceread/cadence/internal/cadence"
	"github.com/paceread/cadence/internal/flow"
	"github.com/paceread/cadence/internal/tokenizer"
)

// MaxCatchupTokens bounds how many tokens a single frame tick may advance
// through, guaranteeing forward progress without stalling the host.
const MaxCatchupTokens = 10

// OnTick is invoked with the current position on every frame tick, whether
// or not the index advanced, and once immediately after JumpTo.
type OnTick func(index int, token tokenizer.Token)

// OnComplete is invoked once, when the last token's duration has elapsed.
type OnComplete func()

type wpmRamp struct {
	startWpm     float64
	targetWpm    float64
	rampStart    time.Time
	rampDuration time.Duration
}

// Scheduler drives tokens against a Clock, firing onTick/onComplete.
// All exported methods are safe for concurrent use and never panic: an
// out-of-range JumpTo clamps, and a zero-token stream simply stays idle.
type Scheduler struct {
	mu sync.Mutex

	tokens     []tokenizer.Token
	config     cadence.Config
	onTick     OnTick
	onComplete OnComplete
	clock      Clock

	currentIndex       int
	isRunning          bool
	hidden             bool
	pausedByVisibility bool

	startTime       time.Time
	accumulatedTime float64 // ms, position within the stream while paused
	cumulativeTime  float64 // ms, expected time to reach currentIndex

	flowState    *flow.State
	ramp         *wpmRamp
	pendingTimer Timer
}

// New constructs a Scheduler against the real system clock.
func New(tokens []tokenizer.Token, config cadence.Config, onTick OnTick, onComplete OnComplete) *Scheduler {
	return NewWithClock(tokens, config, onTick, onComplete, RealClock())
}

// NewWithClock constructs a Scheduler against a caller-supplied Clock, for
// deterministic tests.
func NewWithClock(tokens []tokenizer.Token, config cadence.Config, onTick OnTick, onComplete OnComplete, clock Clock) *Scheduler {
	windowSize := config.AverageWindowSize
	if windowSize <= 0 {
		windowSize = 1
	}
	return &Scheduler{
		tokens:     tokens,
		config:     config,
		onTick:     onTick,
		onComplete: onComplete,
		clock:      clock,
		flowState:  flow.NewState(windowSize),
	}
}

// Start begins or resumes playback. Idempotent; a no-op on an empty stream
// or while the host has marked the environment hidden.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

func (s *Scheduler) startLocked() {
	if s.hidden || len(s.tokens) == 0 || s.isRunning {
		return
	}
	now := s.clock.Now()
	if s.currentIndex >= len(s.tokens) {
		s.currentIndex = 0
		s.accumulatedTime = 0
		s.cumulativeTime = 0
		s.flowState.Reset()
	}
	s.startTime = now.Add(-msToDuration(s.accumulatedTime))
	s.isRunning = true
	s.scheduleFrameLocked()
}

// Pause halts playback, recording the stream position. Idempotent.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

func (s *Scheduler) pauseLocked() {
	if !s.isRunning {
		return
	}
	now := s.clock.Now()
	s.accumulatedTime = float64(now.Sub(s.startTime).Milliseconds())
	s.isRunning = false
	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
		s.pendingTimer = nil
	}
}

// Stop pauses and resets the stream to its first token.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
	s.currentIndex = 0
	s.accumulatedTime = 0
	s.cumulativeTime = 0
	s.flowState.Reset()
}

// JumpTo clamps index into range, repositions the stream there, and fires
// onTick immediately. Playback resumes afterward if it was running.
func (s *Scheduler) JumpTo(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tokens) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.tokens)-1 {
		index = len(s.tokens) - 1
	}

	wasRunning := s.isRunning
	if wasRunning {
		s.pauseLocked()
	}

	cumulative, fs := s.recomputeCumulativeLocked(index)
	s.currentIndex = index
	s.cumulativeTime = cumulative
	s.accumulatedTime = cumulative
	s.flowState = fs

	if s.onTick != nil {
		s.onTick(index, s.tokens[index])
	}
	if wasRunning {
		s.startLocked()
	}
}

// UpdateConfig applies a new cadence.Config. If only Wpm changed, smooth
// ramping is enabled, and playback is running, the change eases in over
// config.WpmRampDuration instead of jumping instantly. Otherwise the full
// config is merged and the stream's expected-time bookkeeping is
// recomputed from the new per-token durations.
func (s *Scheduler) UpdateConfig(newConfig cadence.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	onlyWpmChanged := sameExceptWpm(s.config, newConfig) && newConfig.Wpm != s.config.Wpm
	if onlyWpmChanged && s.config.EnableSmoothWpmRamp && s.isRunning {
		now := s.clock.Now()
		startWpm := s.effectiveWpmLocked(now)
		s.config.Wpm = newConfig.Wpm
		s.ramp = &wpmRamp{
			startWpm:     startWpm,
			targetWpm:    float64(newConfig.Wpm),
			rampStart:    now,
			rampDuration: time.Duration(s.config.WpmRampDuration) * time.Millisecond,
		}
		return
	}

	s.config = newConfig
	s.ramp = nil
	cumulative, fs := s.recomputeCumulativeLocked(s.currentIndex)
	s.cumulativeTime = cumulative
	s.accumulatedTime = cumulative
	s.flowState = fs
	if s.isRunning {
		s.startTime = s.clock.Now().Add(-msToDuration(s.accumulatedTime))
	}
}

// GetEffectiveWpm returns the current ramp-interpolated (or static) WPM.
func (s *Scheduler) GetEffectiveWpm() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(math.Round(s.effectiveWpmLocked(s.clock.Now())))
}

// IsRamping reports whether a WPM ramp is still in progress.
func (s *Scheduler) IsRamping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effectiveWpmLocked(s.clock.Now()) // retires an expired ramp as a side effect
	return s.ramp != nil
}

// GetState returns a snapshot of the scheduler's current position.
func (s *Scheduler) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		CurrentIndex:       s.currentIndex,
		IsRunning:          s.isRunning,
		PausedByVisibility: s.pausedByVisibility,
	}
}

// Destroy halts playback and releases any pending frame timer.
func (s *Scheduler) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pauseLocked()
}

// NotifyVisibility tells the scheduler the host environment became hidden
// or visible. Going hidden pauses a running stream and remembers to
// resume it; becoming visible resumes only if that flag was set. Start
// refuses outright while hidden.
func (s *Scheduler) NotifyVisibility(hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hidden {
		s.hidden = true
		if s.isRunning {
			s.pausedByVisibility = true
			s.pauseLocked()
		}
		return
	}
	s.hidden = false
	if s.pausedByVisibility {
		s.pausedByVisibility = false
		s.startLocked()
	}
}

func (s *Scheduler) scheduleFrameLocked() {
	if s.pendingTimer != nil {
		s.pendingTimer.Stop()
	}
	s.pendingTimer = s.clock.AfterFunc(FrameInterval, s.onFrame)
}

func (s *Scheduler) onFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	now := s.clock.Now()
	elapsed := float64(now.Sub(s.startTime).Milliseconds())
	effectiveConfig := s.effectiveConfigLocked(now)
	baseInterval := cadence.BaseInterval(effectiveConfig.Wpm)

	catchupCount := 0
	for catchupCount < MaxCatchupTokens && s.currentIndex < len(s.tokens)-1 {
		d := s.tokenDurationLocked(s.tokens[s.currentIndex], effectiveConfig, s.currentIndex, baseInterval)
		if elapsed < s.cumulativeTime+d {
			break
		}
		s.cumulativeTime += d
		s.currentIndex++
		catchupCount++
	}

	if s.onTick != nil {
		s.onTick(s.currentIndex, s.tokens[s.currentIndex])
	}

	if s.currentIndex == len(s.tokens)-1 {
		finalDuration := s.tokenDurationLocked(s.tokens[s.currentIndex], effectiveConfig, s.currentIndex, baseInterval)
		if elapsed >= s.cumulativeTime+finalDuration {
			s.isRunning = false
			s.pendingTimer = nil
			if s.onComplete != nil {
				s.onComplete()
			}
			return
		}
	}

	s.scheduleFrameLocked()
}

// tokenDurationLocked returns the flow-adjusted duration for a token,
// advancing the live flow state as a side effect (matching spec's "update
// flow momentum" step so bookkeeping reflects tokens as they're consumed,
// not replayed).
func (s *Scheduler) tokenDurationLocked(t tokenizer.Token, config cadence.Config, index int, baseInterval float64) float64 {
	base := cadence.GetTokenDurationAt(t, config, index)
	if !config.EnableAdaptivePacing {
		return base
	}
	s.flowState.UpdateMomentum(t, config.EnableMomentum, config.MomentumBuildThreshold, config.MomentumMaxBoost, config.MomentumDecayRate)
	d := s.flowState.AdjustedDuration(base, baseInterval, config.TargetWpmVariance)
	s.flowState.PushRollingSample(d, base)
	return d
}

// recomputeCumulativeLocked replays tokens [0, index) through a fresh flow
// state to rebuild the expected-time and momentum bookkeeping consistent
// with config at a new position, used by JumpTo and UpdateConfig.
func (s *Scheduler) recomputeCumulativeLocked(index int) (float64, *flow.State) {
	windowSize := s.config.AverageWindowSize
	if windowSize <= 0 {
		windowSize = 1
	}
	fs := flow.NewState(windowSize)
	baseInterval := cadence.BaseInterval(s.config.Wpm)

	cumulative := 0.0
	for i := 0; i < index && i < len(s.tokens); i++ {
		t := s.tokens[i]
		base := cadence.GetTokenDurationAt(t, s.config, i)
		if s.config.EnableAdaptivePacing {
			fs.UpdateMomentum(t, s.config.EnableMomentum, s.config.MomentumBuildThreshold, s.config.MomentumMaxBoost, s.config.MomentumDecayRate)
			d := fs.AdjustedDuration(base, baseInterval, s.config.TargetWpmVariance)
			fs.PushRollingSample(d, base)
			cumulative += d
		} else {
			cumulative += base
		}
	}
	return cumulative, fs
}

func (s *Scheduler) effectiveConfigLocked(now time.Time) cadence.Config {
	cfg := s.config
	wpm := int(math.Round(s.effectiveWpmLocked(now)))
	if wpm < 1 {
		wpm = 1
	}
	cfg.Wpm = wpm
	return cfg
}

// effectiveWpmLocked returns the ramp-interpolated WPM using ease-out-cubic
// easing, retiring the ramp once it completes.
func (s *Scheduler) effectiveWpmLocked(now time.Time) float64 {
	if s.ramp == nil {
		return float64(s.config.Wpm)
	}
	if s.ramp.rampDuration <= 0 {
		s.ramp = nil
		return float64(s.config.Wpm)
	}

	t := float64(now.Sub(s.ramp.rampStart)) / float64(s.ramp.rampDuration)
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		target := s.ramp.targetWpm
		s.ramp = nil
		return target
	}

	eased := 1 - math.Pow(1-t, 3)
	return s.ramp.startWpm + (s.ramp.targetWpm-s.ramp.startWpm)*eased
}

func sameExceptWpm(a, b cadence.Config) bool {
	a.Wpm = 0
	b.Wpm = 0
	return a == b
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
