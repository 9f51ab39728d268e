// Package preset holds the named cadence.Config overlays (factory, casual,
// speed, technical, comprehension) and the utilities for applying and
// detecting them.
package preset

import "github.com/paceread/cadence/internal/cadence"

// Name identifies one of the built-in configurations, or "custom" when a
// config doesn't match any of them.
type Name string

const (
	Factory       Name = "factory"
	Casual        Name = "casual"
	Speed         Name = "speed"
	Technical     Name = "technical"
	Comprehension Name = "comprehension"
	Custom        Name = "custom"
)

// DefaultConfig is the factory cadence.Config, built from the defaults
// enumerated in the data model: every other named preset is this config
// with a small set of fields overlaid.
func DefaultConfig() cadence.Config {
	return cadence.Config{
		Wpm: 300,

		CommaMultiplier:       1.2,
		SemicolonMultiplier:   1.5,
		ColonMultiplier:       1.0,
		PeriodMultiplier:      2.2,
		QuestionMultiplier:    2.5,
		ExclamationMultiplier: 2.0,
		ParagraphMultiplier:   2.5,

		EnableShortWordBoost:   true,
		ShortWordMultiplier:    0.15,
		EnableWordLengthTiming: true,

		EnableEaseIn:           true,
		EnableParagraphEaseIn:  true,
		ParagraphEaseInWpmDrop: 75,
		ParagraphEaseInWords:   5,

		PhraseBoundaryMultiplier: 0.3,
		EnableLongRunRelief:      true,
		MaxWordsWithoutPause:     7,

		WpmRampDuration:     500,
		EnableSmoothWpmRamp: true,

		EnableSyllableWeight:   true,
		EnableProsodyFactor:    true,
		EnableComplexityFactor: false,
		DomainMode:             cadence.DomainProse,
		BreathGroupThreshold:   8,
		MinDurationFloor:       0.4,
		MaxDurationCap:         4.0,

		EnableAdaptivePacing:   true,
		TargetWpmVariance:      0.20,
		AverageWindowSize:      25,
		EnableMomentum:         true,
		MomentumBuildThreshold: 3,
		MomentumMaxBoost:       0.15,
		MomentumDecayRate:      0.5,
	}
}

// overlay applies fn atop a fresh DefaultConfig, so each preset only needs
// to state what it overrides.
func overlay(fn func(*cadence.Config)) cadence.Config {
	c := DefaultConfig()
	fn(&c)
	return c
}

// Config returns the named preset's config, overlaid on factory defaults.
// An unrecognized name returns the factory config unchanged.
func Config(name Name) cadence.Config {
	switch name {
	case Casual:
		return overlay(func(c *cadence.Config) {
			c.Wpm = 250
			c.CommaMultiplier = 1.8
			c.PeriodMultiplier = 3.3
			c.QuestionMultiplier = 3.75
			c.ExclamationMultiplier = 3.0
			c.ParagraphMultiplier = 3.75
			c.PhraseBoundaryMultiplier = 0.45
			c.EnableMomentum = false
		})
	case Speed:
		return overlay(func(c *cadence.Config) {
			c.Wpm = 450
			c.CommaMultiplier = 0.6
			c.PeriodMultiplier = 1.1
			c.QuestionMultiplier = 1.25
			c.ExclamationMultiplier = 1.0
			c.ParagraphMultiplier = 1.25
			c.PhraseBoundaryMultiplier = 0.15
			c.EnableMomentum = true
			c.MomentumMaxBoost = 0.25
			c.MomentumBuildThreshold = 2
			c.ParagraphEaseInWpmDrop = 50
			c.ParagraphEaseInWords = 3
		})
	case Technical:
		return overlay(func(c *cadence.Config) {
			c.Wpm = 275
			c.CommaMultiplier = 1.5
			c.PeriodMultiplier = 2.75
			c.QuestionMultiplier = 3.125
			c.ExclamationMultiplier = 2.5
			c.ParagraphMultiplier = 3.125
			c.DomainMode = cadence.DomainTechnical
			c.EnableComplexityFactor = true
			c.EnableMomentum = false
			c.ParagraphEaseInWpmDrop = 100
			c.ParagraphEaseInWords = 6
		})
	case Comprehension:
		return overlay(func(c *cadence.Config) {
			c.Wpm = 225
			c.CommaMultiplier = 2.1
			c.PeriodMultiplier = 3.85
			c.QuestionMultiplier = 4.375
			c.ExclamationMultiplier = 3.5
			c.ParagraphMultiplier = 4.375
			c.PhraseBoundaryMultiplier = 0.52
			c.MaxWordsWithoutPause = 5
			c.EnableMomentum = false
			c.ParagraphEaseInWpmDrop = 100
			c.ParagraphEaseInWords = 7
		})
	default:
		return DefaultConfig()
	}
}

// All lists every named preset, in the order spec.md enumerates them.
var All = []Name{Factory, Casual, Speed, Technical, Comprehension}

// Apply returns the named preset's config. If preserveWpm is true, the
// caller's currentWpm is kept instead of the preset's own wpm — for
// switching presets mid-session without resetting reading speed.
func Apply(name Name, preserveWpm bool, currentWpm int) cadence.Config {
	c := Config(name)
	if preserveWpm && currentWpm > 0 {
		c.Wpm = currentWpm
	}
	return c
}

// detectFields are the subset of cadence.Config fields that must match for
// a config to be recognized as a given non-factory preset.
type detectFields struct {
	wpm                   int
	commaMultiplier       float64
	semicolonMultiplier   float64
	colonMultiplier       float64
	periodMultiplier      float64
	questionMultiplier    float64
	exclamationMultiplier float64
	paragraphMultiplier   float64
	enableMomentum        bool
	domainMode            cadence.DomainMode
}

func fullFields(c cadence.Config) detectFields {
	return detectFields{
		wpm:                   c.Wpm,
		commaMultiplier:       c.CommaMultiplier,
		semicolonMultiplier:   c.SemicolonMultiplier,
		colonMultiplier:       c.ColonMultiplier,
		periodMultiplier:      c.PeriodMultiplier,
		questionMultiplier:    c.QuestionMultiplier,
		exclamationMultiplier: c.ExclamationMultiplier,
		paragraphMultiplier:   c.ParagraphMultiplier,
		enableMomentum:        c.EnableMomentum,
		domainMode:            c.DomainMode,
	}
}

// reducedFields is the factory preset's looser match set: detectFields
// without domainMode, so a config that differs from factory only in its
// domain mode is still detected as factory.
type reducedFields struct {
	wpm                   int
	commaMultiplier       float64
	semicolonMultiplier   float64
	colonMultiplier       float64
	periodMultiplier      float64
	questionMultiplier    float64
	exclamationMultiplier float64
	paragraphMultiplier   float64
	enableMomentum        bool
}

func reduced(f detectFields) reducedFields {
	return reducedFields{
		wpm:                   f.wpm,
		commaMultiplier:       f.commaMultiplier,
		semicolonMultiplier:   f.semicolonMultiplier,
		colonMultiplier:       f.colonMultiplier,
		periodMultiplier:      f.periodMultiplier,
		questionMultiplier:    f.questionMultiplier,
		exclamationMultiplier: f.exclamationMultiplier,
		paragraphMultiplier:   f.paragraphMultiplier,
		enableMomentum:        f.enableMomentum,
	}
}

// DetectCurrentPreset walks the named presets and returns the one whose
// detection fields all match config, preferring the order All lists them
// in; returns Custom if none match. Factory is checked last and matches on
// a reduced field set (the same fields minus domainMode) since it's the
// base every other preset overlays.
func DetectCurrentPreset(config cadence.Config) Name {
	given := fullFields(config)
	for _, name := range []Name{Casual, Speed, Technical, Comprehension} {
		if fullFields(Config(name)) == given {
			return name
		}
	}
	if reduced(fullFields(Config(Factory))) == reduced(given) {
		return Factory
	}
	return Custom
}
