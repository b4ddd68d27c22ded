package research

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"blogwriter/internal/logger"
)

// researchDocument is the on-disk shape of a per-subject research file.
type researchDocument struct {
	ResearchContent string `json:"research_content"`
}

// Store loads per-subject research documents from a directory of JSON
// files keyed by lowercased subject name.
type Store struct {
	dir string
	log *logger.Logger
}

// NewStore creates a research store rooted at dir.
func NewStore(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// LoadResearch returns the research content for a subject, or the empty
// string when the file is missing or undecodable. Missing research
// degrades the generation, it never fails it.
func (s *Store) LoadResearch(term string) string {
	path := filepath.Join(s.dir, strings.ToLower(term)+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("research data not found", "term", term, "path", path)

		return ""
	}

	var doc researchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Error("failed to decode research data", "term", term, "error", err)

		return ""
	}

	s.log.Info("loaded research", "term", term)

	return doc.ResearchContent
}

// CombineResearch builds the single context string handed to the
// generation collaborator, with each subject's research under a labeled
// heading. Empty research is replaced with a placeholder sentence.
func CombineResearch(termA, termB, researchA, researchB string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Research for %s:\n\n", termA)
	b.WriteString(orPlaceholder(researchA, termA))
	fmt.Fprintf(&b, "\n\n## Research for %s:\n\n", termB)
	b.WriteString(orPlaceholder(researchB, termB))

	return b.String()
}

func orPlaceholder(research, term string) string {
	if research == "" {
		return fmt.Sprintf("No detailed research available for %s.", term)
	}

	return research
}
