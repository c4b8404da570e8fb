package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Meeting     MeetingConfig     `yaml:"meeting"`
}

// PipelineConfig tunes the transcript transforms. All durations are in
// seconds.
type PipelineConfig struct {
	WindowSeconds   float64 `yaml:"window_seconds"`
	OverlapSeconds  float64 `yaml:"overlap_seconds"`
	MergeGapSeconds float64 `yaml:"merge_gap_seconds"`
}

// SummarizerConfig selects and tunes the LLM backend. API keys are never
// read from the file; they come from GROQ_API_KEY / GEMINI_API_KEY
// (comma-separated for rotation).
type SummarizerConfig struct {
	Backend        string   `yaml:"backend"`
	Model          string   `yaml:"model"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	APIKeys        []string `yaml:"-"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// MeetingConfig carries presentation options for the artifacts. Title
// defaults to the input file name when empty.
type MeetingConfig struct {
	Title string `yaml:"title"`
}

// Load reads and validates a YAML config file, then applies environment
// overrides for secrets and the meeting title.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Pipeline.WindowSeconds == 0 {
		c.Pipeline.WindowSeconds = 360
	}
	if c.Pipeline.OverlapSeconds == 0 {
		c.Pipeline.OverlapSeconds = 20
	}
	if c.Pipeline.MergeGapSeconds == 0 {
		c.Pipeline.MergeGapSeconds = 3
	}
	if c.Pipeline.WindowSeconds < 0 || c.Pipeline.OverlapSeconds < 0 || c.Pipeline.MergeGapSeconds < 0 {
		return fmt.Errorf("pipeline durations must not be negative")
	}
	if c.Pipeline.OverlapSeconds >= c.Pipeline.WindowSeconds {
		return fmt.Errorf("pipeline.overlap_seconds (%v) must be shorter than pipeline.window_seconds (%v)",
			c.Pipeline.OverlapSeconds, c.Pipeline.WindowSeconds)
	}

	if c.Summarizer.Backend == "" {
		c.Summarizer.Backend = "groq"
	}
	switch c.Summarizer.Backend {
	case "groq":
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "llama-3.1-8b-instant"
		}
	case "gemini":
		if c.Summarizer.Model == "" {
			c.Summarizer.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("summarizer.backend must be groq or gemini, got %q", c.Summarizer.Backend)
	}
	if c.Summarizer.TimeoutSeconds == 0 {
		c.Summarizer.TimeoutSeconds = 120
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}

	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 4
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	var envKey string
	switch cfg.Summarizer.Backend {
	case "gemini":
		envKey = "GEMINI_API_KEY"
	default:
		envKey = "GROQ_API_KEY"
	}
	if v := os.Getenv(envKey); v != "" {
		cfg.Summarizer.APIKeys = splitKeys(v)
	}
	if v := os.Getenv("MINUTES_MEETING_TITLE"); v != "" {
		cfg.Meeting.Title = v
	}
}

// splitKeys parses a comma-separated key list, trimming whitespace and
// dropping empty entries.
func splitKeys(v string) []string {
	var keys []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
