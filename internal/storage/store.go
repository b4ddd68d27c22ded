// Package storage persists generated documents and per-attempt activity
// logs as JSON artifacts on disk.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"blogwriter/internal/models"
)

// Store writes output artifacts under the configured directories.
type Store struct {
	outputDir string
	logsDir   string
	now       func() time.Time
}

// NewStore creates a store writing documents to outputDir and activity
// logs to logsDir.
func NewStore(outputDir, logsDir string) *Store {
	return &Store{
		outputDir: outputDir,
		logsDir:   logsDir,
		now:       time.Now,
	}
}

// SaveDocument writes a canonical document to {outputDir}/{slug}.json and
// returns the file path. The filename is derived from the slug, so
// re-running the same pair overwrites the prior file; there is no
// versioning or merging.
func (s *Store) SaveDocument(doc *models.ComparisonDocument, slug string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	path := filepath.Join(s.outputDir, slug+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return path, nil
}

// ActivityRecord captures one generation attempt for offline debugging.
// Content holds the raw collaborator response on success or the error
// text on failure; nothing reads these records back.
type ActivityRecord struct {
	Timestamp string `json:"timestamp"`
	TermA     string `json:"term_a"`
	TermB     string `json:"term_b"`
	Success   bool   `json:"success"`
	Content   string `json:"content"`
}

// LogActivity writes one activity artifact per generation attempt and
// returns its path.
func (s *Store) LogActivity(termA, termB string, success bool, content string) (string, error) {
	if err := os.MkdirAll(s.logsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := s.now().Format("20060102_150405")

	record := ActivityRecord{
		Timestamp: timestamp,
		TermA:     termA,
		TermB:     termB,
		Success:   success,
		Content:   content,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal activity record: %w", err)
	}

	path := filepath.Join(s.logsDir, fmt.Sprintf("blog_%s_vs_%s_%s.json", termA, termB, timestamp))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write activity record: %w", err)
	}

	return path, nil
}
