// Package flow tracks the adaptive pacing state the scheduler layers on
// top of internal/cadence's pure per-token durations: momentum built from
// runs of easy words, and a rolling-average correction that pulls actual
// playback speed back toward the configured target over time.
//
// Nothing here reads a clock or blocks; the scheduler decides when a token
// advances and feeds that moment into these functions.
package flow

import "github.com/paceread/cadence/internal/tokenizer"

// State is the adaptive-pacing state carried between tokens. Build one
// with NewState: the zero value has CurrentMomentum 0 and a zero-size
// rolling window, so it keeps no samples.
type State struct {
	ConsecutiveEasyWords int
	CurrentMomentum      float64

	durationWindow []float64
	targetWindow   []float64
	windowSize     int
}

// NewState returns a State ready for a stream, with momentum at baseline
// and a rolling window sized for windowSize samples.
func NewState(windowSize int) *State {
	if windowSize <= 0 {
		windowSize = 1
	}
	return &State{
		CurrentMomentum: 1.0,
		windowSize:      windowSize,
	}
}

// Reset returns a state to its freshly-started baseline, clearing the
// rolling windows too. The scheduler calls it on Stop and when Start
// restarts a finished stream from index 0; paragraph breaks are handled
// inside UpdateMomentum, which resets only the easy-word run and momentum.
func (s *State) Reset() {
	s.ConsecutiveEasyWords = 0
	s.CurrentMomentum = 1.0
	s.durationWindow = s.durationWindow[:0]
	s.targetWindow = s.targetWindow[:0]
}

// MomentumMultiplier is the duration discount earned by a run of easy
// words, 1.0 until consecutiveEasyWords passes threshold.
func MomentumMultiplier(enabled bool, consecutiveEasyWords, threshold int, maxBoost float64) float64 {
	if !enabled || consecutiveEasyWords < threshold {
		return 1.0
	}
	ratio := float64(consecutiveEasyWords-threshold) / 5.0
	if ratio > 1 {
		ratio = 1
	}
	return 1 - ratio*maxBoost
}

// UpdateMomentum advances momentum bookkeeping for one token, in the exact
// order spec.md prescribes: paragraph-break reset takes priority, then the
// easy/hard-word branch, then a trailing boundary reset.
func (s *State) UpdateMomentum(t tokenizer.Token, enableMomentum bool, threshold int, maxBoost, decayRate float64) {
	if t.IsParagraphBreak {
		s.ConsecutiveEasyWords = 0
		s.CurrentMomentum = 1.0
		return
	}

	if t.IsEasyWord {
		s.ConsecutiveEasyWords++
		s.CurrentMomentum = MomentumMultiplier(enableMomentum, s.ConsecutiveEasyWords, threshold, maxBoost)
	} else {
		s.ConsecutiveEasyWords = int(float64(s.ConsecutiveEasyWords) * (1 - decayRate))
		s.CurrentMomentum = MomentumMultiplier(enableMomentum, s.ConsecutiveEasyWords, threshold, maxBoost)
	}

	if t.IsPhraseBoundary || t.IsSentenceEnd {
		s.ConsecutiveEasyWords = 0
		s.CurrentMomentum = 1.0
	}
}

// PushRollingSample records one token's actual flow-adjusted duration
// against its unadjusted target, trimming the window to windowSize.
func (s *State) PushRollingSample(actualDuration, targetBaseDuration float64) {
	s.durationWindow = append(s.durationWindow, actualDuration)
	s.targetWindow = append(s.targetWindow, targetBaseDuration)
	if len(s.durationWindow) > s.windowSize {
		s.durationWindow = s.durationWindow[len(s.durationWindow)-s.windowSize:]
		s.targetWindow = s.targetWindow[len(s.targetWindow)-s.windowSize:]
	}
}

// CorrectionFactor is 1.0 until 5 samples have accumulated, after which it
// nudges toward the target pace based on observed drift, clamped to
// [0.95, 1.05].
func (s *State) CorrectionFactor() float64 {
	n := len(s.durationWindow)
	if n < 5 {
		return 1.0
	}

	var sumActual, sumTarget float64
	for i := 0; i < n; i++ {
		sumActual += s.durationWindow[i]
		sumTarget += s.targetWindow[i]
	}
	avgActual := sumActual / float64(n)
	avgTarget := sumTarget / float64(n)
	if avgTarget == 0 {
		return 1.0
	}

	deviation := (avgActual - avgTarget) / avgTarget
	correction := 1 - deviation*0.1
	if correction < 0.95 {
		return 0.95
	}
	if correction > 1.05 {
		return 1.05
	}
	return correction
}

// AdjustedDuration applies momentum and rolling correction to a base
// duration, clamped to [baseInterval*(1-targetWpmVariance),
// baseInterval*(1+targetWpmVariance)*3].
func (s *State) AdjustedDuration(baseDuration, baseInterval, targetWpmVariance float64) float64 {
	adjusted := baseDuration * s.CurrentMomentum * s.CorrectionFactor()

	lo := baseInterval * (1 - targetWpmVariance)
	hi := baseInterval * (1 + targetWpmVariance) * 3
	if adjusted < lo {
		return lo
	}
	if adjusted > hi {
		return hi
	}
	return adjusted
}
