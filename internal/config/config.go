// Package config loads and validates the demo host's CLI-facing settings:
// reading speed, preset name, domain mode, and input source. It has no
// bearing on the core cadence/scheduler packages, which take a
// cadence.Config built from these settings by internal/preset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/paceread/cadence/internal/cadence"
)

const (
	AppName    = "pacedread"
	ConfigType = "yaml"

	DefaultConfig = `# pacedread configuration

wpm: 300                 # reading speed, 100-1000
preset: factory          # factory, casual, speed, technical, comprehension, custom
domain_mode: prose       # prose, technical, math, code

comma_multiplier: 1.2
period_multiplier: 2.2
question_multiplier: 2.5
exclamation_multiplier: 2.0
paragraph_multiplier: 2.5

input_path: ""           # file to read; empty means stdin
`
)

// Settings holds the demo host's configuration.
type Settings struct {
	Wpm        int    `mapstructure:"wpm"`
	Preset     string `mapstructure:"preset"`
	DomainMode string `mapstructure:"domain_mode"`

	CommaMultiplier       float64 `mapstructure:"comma_multiplier"`
	PeriodMultiplier      float64 `mapstructure:"period_multiplier"`
	QuestionMultiplier    float64 `mapstructure:"question_multiplier"`
	ExclamationMultiplier float64 `mapstructure:"exclamation_multiplier"`
	ParagraphMultiplier   float64 `mapstructure:"paragraph_multiplier"`

	InputPath string `mapstructure:"input_path"`
}

var validPresets = map[string]bool{
	"factory": true, "casual": true, "speed": true,
	"technical": true, "comprehension": true, "custom": true,
}

var validDomainModes = map[string]bool{
	string(cadence.DomainProse):     true,
	string(cadence.DomainTechnical): true,
	string(cadence.DomainMath):      true,
	string(cadence.DomainCode):      true,
}

// Init initializes Viper with defaults and reads a config file, creating
// one in $XDG_CONFIG_HOME/pacedread/ if none is found. Config file search
// order: current directory, then the XDG config directory.
func Init() error {
	viper.SetDefault("wpm", 300)
	viper.SetDefault("preset", "factory")
	viper.SetDefault("domain_mode", "prose")
	viper.SetDefault("comma_multiplier", 1.2)
	viper.SetDefault("period_multiplier", 2.2)
	viper.SetDefault("question_multiplier", 2.5)
	viper.SetDefault("exclamation_multiplier", 2.0)
	viper.SetDefault("paragraph_multiplier", 2.5)
	viper.SetDefault("input_path", "")

	viper.SetConfigType(ConfigType)
	viper.AddConfigPath(".")

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	xdgConfigPath := filepath.Join(configDir, AppName)
	viper.AddConfigPath(xdgConfigPath)

	viper.SetConfigName(".config")
	if err = viper.ReadInConfig(); err != nil {
		viper.SetConfigName("config")
		err = viper.ReadInConfig()
	}

	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if err = ensureConfigExists(xdgConfigPath); err != nil {
				return err
			}
			if err = viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		} else {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func ensureConfigExists(configPath string) error {
	configFile := filepath.Join(configPath, "config.yaml")

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err = os.MkdirAll(configPath, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err = os.WriteFile(configFile, []byte(DefaultConfig), 0644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}
	return nil
}

// Get returns the currently loaded settings.
func Get() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Validate checks every setting is within its documented range, collecting
// all violations instead of stopping at the first.
func (s *Settings) Validate() error {
	var errs []error

	if s.Wpm < 100 || s.Wpm > 1000 {
		errs = append(errs, fmt.Errorf("wpm must be between 100 and 1000, got %d", s.Wpm))
	}
	if !validPresets[s.Preset] {
		errs = append(errs, fmt.Errorf("preset must be one of factory, casual, speed, technical, comprehension, custom, got %q", s.Preset))
	}
	if !validDomainModes[s.DomainMode] {
		errs = append(errs, fmt.Errorf("domain_mode must be one of prose, technical, math, code, got %q", s.DomainMode))
	}

	for name, v := range map[string]float64{
		"comma_multiplier":       s.CommaMultiplier,
		"period_multiplier":      s.PeriodMultiplier,
		"question_multiplier":    s.QuestionMultiplier,
		"exclamation_multiplier": s.ExclamationMultiplier,
		"paragraph_multiplier":   s.ParagraphMultiplier,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be non-negative, got %v", name, v))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
