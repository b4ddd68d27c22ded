// Package config provides configuration management for the blog writer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"blogwriter/internal/models"
)

// Configuration validation errors.
var (
	ErrMissingDataPath      = errors.New("paths.data is required")
	ErrMissingResearchPath  = errors.New("paths.research is required")
	ErrMissingOutputPath    = errors.New("paths.output is required")
	ErrMissingLogsPath      = errors.New("paths.logs is required")
	ErrMissingPairsFile     = errors.New("paths.pairs_file is required")
	ErrMissingModel         = errors.New("generation.model is required")
	ErrInvalidTemperature   = errors.New("generation.temperature must be between 0 and 2")
	ErrInvalidMaxTokens     = errors.New("generation.max_output_tokens must be at least 1")
	ErrInvalidSchemaVersion = errors.New("schema.version must be 'v1' or 'v2'")
	ErrInvalidWPM           = errors.New("schema.words_per_minute must be non-negative")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete blog writer configuration.
type Config struct {
	Writer WriterConfig `yaml:"writer"`
}

// WriterConfig contains writer-specific settings.
type WriterConfig struct {
	Paths      PathsConfig      `yaml:"paths"`
	Generation GenerationConfig `yaml:"generation"`
	Schema     SchemaConfig     `yaml:"schema"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PathsConfig locates the input and output directories.
type PathsConfig struct {
	Data      string `yaml:"data"`
	Research  string `yaml:"research"`
	Output    string `yaml:"output"`
	Logs      string `yaml:"logs"`
	PairsFile string `yaml:"pairs_file"`
}

// GenerationConfig controls the generation collaborator request.
type GenerationConfig struct {
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

// SchemaConfig selects the canonical target shape.
type SchemaConfig struct {
	Version string `yaml:"version"`
	// WordsPerMinute overrides the schema version's default reading speed
	// when non-zero.
	WordsPerMinute int `yaml:"words_per_minute"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Writer: WriterConfig{
			Paths: PathsConfig{
				Data:      "data",
				Research:  filepath.Join("research", "assets"),
				Output:    filepath.Join("output", "blogs"),
				Logs:      "logs",
				PairsFile: "comparison_pairs.csv",
			},
			Generation: GenerationConfig{
				Model:           "gemini-2.5-flash",
				Temperature:     0.7,
				MaxOutputTokens: 4000,
			},
			Schema: SchemaConfig{
				Version: string(models.SchemaV1),
			},
			Logging: LoggingConfig{
				Level: "info",
			},
		},
	}
}

// Load reads configuration from a YAML file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	paths := []struct {
		value string
		err   error
	}{
		{c.Writer.Paths.Data, ErrMissingDataPath},
		{c.Writer.Paths.Research, ErrMissingResearchPath},
		{c.Writer.Paths.Output, ErrMissingOutputPath},
		{c.Writer.Paths.Logs, ErrMissingLogsPath},
		{c.Writer.Paths.PairsFile, ErrMissingPairsFile},
	}

	for _, p := range paths {
		if p.value == "" {
			return p.err
		}
	}

	if c.Writer.Generation.Model == "" {
		return ErrMissingModel
	}

	if c.Writer.Generation.Temperature < 0 || c.Writer.Generation.Temperature > 2 {
		return ErrInvalidTemperature
	}

	if c.Writer.Generation.MaxOutputTokens < 1 {
		return ErrInvalidMaxTokens
	}

	if !models.SchemaVersion(c.Writer.Schema.Version).Valid() {
		return ErrInvalidSchemaVersion
	}

	if c.Writer.Schema.WordsPerMinute < 0 {
		return ErrInvalidWPM
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Writer.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Profile returns the schema profile selected by the configuration, with
// the words-per-minute override applied when set.
func (c *Config) Profile() models.SchemaProfile {
	profile := models.ProfileFor(models.SchemaVersion(c.Writer.Schema.Version))

	if c.Writer.Schema.WordsPerMinute > 0 {
		profile.WordsPerMinute = c.Writer.Schema.WordsPerMinute
	}

	return profile
}

// PairsPath returns the full path to the subject-pair table.
func (c *Config) PairsPath() string {
	return filepath.Join(c.Writer.Paths.Data, c.Writer.Paths.PairsFile)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Schema: %s, Model: %s, Output: %s}",
		c.Writer.Schema.Version,
		c.Writer.Generation.Model,
		c.Writer.Paths.Output,
	)
}
