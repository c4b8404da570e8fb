package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "overlap equal to window",
			config: Config{
				Pipeline: PipelineConfig{WindowSeconds: 60, OverlapSeconds: 60},
			},
			wantErr: true,
		},
		{
			name: "overlap beyond window",
			config: Config{
				Pipeline: PipelineConfig{WindowSeconds: 60, OverlapSeconds: 90},
			},
			wantErr: true,
		},
		{
			name: "negative merge gap",
			config: Config{
				Pipeline: PipelineConfig{MergeGapSeconds: -1},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Summarizer: SummarizerConfig{Backend: "claude"},
			},
			wantErr: true,
		},
		{
			name: "gemini backend",
			config: Config{
				Summarizer: SummarizerConfig{Backend: "gemini"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Pipeline.WindowSeconds != 360 {
		t.Errorf("WindowSeconds = %v, want 360", cfg.Pipeline.WindowSeconds)
	}
	if cfg.Pipeline.OverlapSeconds != 20 {
		t.Errorf("OverlapSeconds = %v, want 20", cfg.Pipeline.OverlapSeconds)
	}
	if cfg.Pipeline.MergeGapSeconds != 3 {
		t.Errorf("MergeGapSeconds = %v, want 3", cfg.Pipeline.MergeGapSeconds)
	}
	if cfg.Summarizer.Backend != "groq" {
		t.Errorf("Backend = %v, want groq", cfg.Summarizer.Backend)
	}
	if cfg.Summarizer.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model = %v, want llama-3.1-8b-instant", cfg.Summarizer.Model)
	}
	if cfg.Summarizer.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %v, want 120", cfg.Summarizer.TimeoutSeconds)
	}
	if cfg.Performance.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent = %v, want 4", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
pipeline:
  window_seconds: 300
  overlap_seconds: 30
  merge_gap_seconds: 2

summarizer:
  backend: "groq"
  model: "llama-3.1-70b-versatile"
  timeout_seconds: 60

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"

performance:
  max_concurrent: 8
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GROQ_API_KEY", "key-a, key-b")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pipeline.WindowSeconds != 300 {
		t.Errorf("WindowSeconds = %v, want 300", cfg.Pipeline.WindowSeconds)
	}
	if cfg.Summarizer.Model != "llama-3.1-70b-versatile" {
		t.Errorf("Model = %v, want llama-3.1-70b-versatile", cfg.Summarizer.Model)
	}
	if cfg.Performance.MaxConcurrent != 8 {
		t.Errorf("MaxConcurrent = %v, want 8", cfg.Performance.MaxConcurrent)
	}
	if len(cfg.Summarizer.APIKeys) != 2 || cfg.Summarizer.APIKeys[0] != "key-a" || cfg.Summarizer.APIKeys[1] != "key-b" {
		t.Errorf("APIKeys = %v, want [key-a key-b]", cfg.Summarizer.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
