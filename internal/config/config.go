// Package config loads the settings of the epicycle command and server.
//
// Settings are read from an optional TOML file and then overridden by
// EPICYCLE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/epicycle"
	"honnef.co/go/epicycle/fourier"
)

type Config struct {
	ListenAddr string `toml:"listen_addr"`
	LogLevel   string `toml:"log_level"`
	// Arc length accuracy of the path measurer.
	Accuracy float64 `toml:"accuracy"`
	// Number of segments used when drawing reconstructed curves.
	Segments int `toml:"segments"`

	Analysis Analysis `toml:"analysis"`
	Schedule Schedule `toml:"schedule"`
}

type Analysis struct {
	SampleCount int     `toml:"sample_count"`
	PruneRatio  float64 `toml:"prune_ratio"`
}

type Schedule struct {
	PauseMS   int `toml:"pause_ms"`
	AddMS     int `toml:"add_ms"`
	MaxGroups int `toml:"max_groups"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ListenAddr: ":3000",
		LogLevel:   "info",
		Accuracy:   epicycle.DefaultAccuracy,
		Segments:   512,
		Analysis: Analysis{
			SampleCount: fourier.DefaultSampleCount,
			PruneRatio:  fourier.DefaultPruneRatio,
		},
		Schedule: Schedule{
			PauseMS:   1000,
			AddMS:     500,
			MaxGroups: 8,
		},
	}
}

// Load reads the TOML file at path on top of [Default], applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	cfg.ListenAddr = getEnv("EPICYCLE_LISTEN_ADDR", cfg.ListenAddr)
	cfg.LogLevel = getEnv("EPICYCLE_LOG_LEVEL", cfg.LogLevel)
	cfg.Accuracy = getEnvAsFloat("EPICYCLE_ACCURACY", cfg.Accuracy)
	cfg.Segments = getEnvAsInt("EPICYCLE_SEGMENTS", cfg.Segments)
	cfg.Analysis.SampleCount = getEnvAsInt("EPICYCLE_SAMPLE_COUNT", cfg.Analysis.SampleCount)
	cfg.Analysis.PruneRatio = getEnvAsFloat("EPICYCLE_PRUNE_RATIO", cfg.Analysis.PruneRatio)
	cfg.Schedule.PauseMS = getEnvAsInt("EPICYCLE_PAUSE_MS", cfg.Schedule.PauseMS)
	cfg.Schedule.AddMS = getEnvAsInt("EPICYCLE_ADD_MS", cfg.Schedule.AddMS)
	cfg.Schedule.MaxGroups = getEnvAsInt("EPICYCLE_MAX_GROUPS", cfg.Schedule.MaxGroups)
}

// Validate checks the settings for values the engine would reject.
func (cfg *Config) Validate() error {
	var errs []error
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if cfg.Accuracy <= 0 {
		errs = append(errs, fmt.Errorf("accuracy must be positive, got %g", cfg.Accuracy))
	}
	if cfg.Segments < 1 {
		errs = append(errs, fmt.Errorf("segments must be at least 1, got %d", cfg.Segments))
	}
	if n := cfg.Analysis.SampleCount; n <= 0 || n&(n-1) != 0 {
		errs = append(errs, fmt.Errorf("analysis.sample_count: %w, got %d", fourier.ErrNotPowerOfTwo, n))
	}
	// The analyzer reads a zero ratio as DefaultPruneRatio.
	if r := cfg.Analysis.PruneRatio; !(r > 0 && r < 1) {
		errs = append(errs, fmt.Errorf("analysis.prune_ratio must be in (0, 1), got %g", r))
	}
	if cfg.Schedule.PauseMS <= 0 || cfg.Schedule.AddMS <= 0 {
		errs = append(errs, errors.New("schedule.pause_ms and schedule.add_ms must be positive"))
	}
	if cfg.Schedule.MaxGroups < 1 {
		errs = append(errs, fmt.Errorf("schedule.max_groups must be at least 1, got %d", cfg.Schedule.MaxGroups))
	}
	return errors.Join(errs...)
}

// Level returns the configured log level.
func (cfg *Config) Level() slog.Level {
	l, _ := parseLevel(cfg.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

func (cfg *Config) Measurer() epicycle.Measurer {
	return epicycle.NumericMeasurer{Accuracy: cfg.Accuracy}
}

func (cfg *Config) FourierOptions() fourier.Options {
	return fourier.Options{
		SampleCount: cfg.Analysis.SampleCount,
		PruneRatio:  cfg.Analysis.PruneRatio,
	}
}

// ScheduleOptions returns the schedule settings applied to terms.
func (cfg *Config) ScheduleOptions(terms []fourier.Term) fourier.ScheduleOptions {
	return fourier.ScheduleOptions{
		PauseTime:          time.Duration(cfg.Schedule.PauseMS) * time.Millisecond,
		AddTime:            time.Duration(cfg.Schedule.AddMS) * time.Millisecond,
		MaxGroupsToDisplay: cfg.Schedule.MaxGroups,
		Terms:              terms,
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
