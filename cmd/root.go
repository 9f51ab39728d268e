// cmd/root.go
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paceread/cadence/internal/cadence"
	"github.com/paceread/cadence/internal/config"
	"github.com/paceread/cadence/internal/host/tui"
	"github.com/paceread/cadence/internal/preset"
	"github.com/paceread/cadence/internal/tokenizer"
)

var log = logrus.StandardLogger()

var rootCmd = &cobra.Command{
	Use:   "pacedread [file]",
	Short: "RSVP speed-reading player",
	Long:  `Tokenizes prose and plays it back one word at a time at a configurable cadence.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPacedRead,
}

// runPacedRead is the main entry point wiring config, tokenizer, and the
// scheduler-backed TUI together.
func runPacedRead(_ *cobra.Command, args []string) error {
	settings, err := config.Get()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.WithFields(logrus.Fields{
		"wpm":         settings.Wpm,
		"preset":      settings.Preset,
		"domain_mode": settings.DomainMode,
	}).Debug("settings loaded")

	cfg := preset.Apply(preset.Name(settings.Preset), settings.Wpm != 0, settings.Wpm)
	cfg.CommaMultiplier = settings.CommaMultiplier
	cfg.PeriodMultiplier = settings.PeriodMultiplier
	cfg.QuestionMultiplier = settings.QuestionMultiplier
	cfg.ExclamationMultiplier = settings.ExclamationMultiplier
	cfg.ParagraphMultiplier = settings.ParagraphMultiplier
	cfg.DomainMode = cadence.DomainMode(settings.DomainMode)

	text, err := readInput(settings, args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tokens := tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return fmt.Errorf("no readable text found in input")
	}

	return tui.Run(tokens, cfg)
}

func readInput(settings *config.Settings, args []string) (string, error) {
	path := settings.InputPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "execution error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().IntP("wpm", "w", 300, "reading speed in words per minute")
	rootCmd.PersistentFlags().StringP("preset", "p", "factory", "named preset (factory, casual, speed, technical, comprehension)")
	rootCmd.PersistentFlags().StringP("domain", "m", "prose", "domain mode (prose, technical, math, code)")

	cobra.CheckErr(viper.BindPFlag("wpm", rootCmd.PersistentFlags().Lookup("wpm")))
	cobra.CheckErr(viper.BindPFlag("preset", rootCmd.PersistentFlags().Lookup("preset")))
	cobra.CheckErr(viper.BindPFlag("domain_mode", rootCmd.PersistentFlags().Lookup("domain")))
}

func initConfig() {
	if err := config.Init(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
}
