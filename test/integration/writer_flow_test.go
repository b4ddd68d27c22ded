package integration

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blogwriter/internal/config"
	"blogwriter/internal/logger"
	"blogwriter/internal/models"
	"blogwriter/internal/writer"
)

// legacyResponse is a fence-wrapped draft using every deprecated field
// layout at once: split backgrounds, a bare difference list, a rows-based
// table, and top-level summary paragraphs.
const legacyResponse = "```json\n" + `{
  "title": "Bitcoin vs Ethereum",
  "published_date": "2024-03-01",
  "introduction_paragraphs": [
    {"text": "Two networks, two philosophies."},
    {"text": "This post walks through how they differ."}
  ],
  "background_a": [{"text": "Bitcoin launched in 2009 as digital cash."}],
  "background_b": [{"text": "Ethereum added programmability in 2015."}],
  "key_differences": [
    {"title": "Speed", "description": [{"text": "A is fast. A is cheap. B is slow. B is costly."}]}
  ],
  "comparison_table": {
    "rows": [
      {"category": "Consensus", "Bitcoin": "Proof of work", "Ethereum": "Proof of stake"}
    ]
  },
  "summary_paragraphs": [
    {"text": "Bitcoin rewards patience."},
    {"text": "Ethereum rewards experimentation."}
  ]
}` + "\n```"

type cannedGenerator struct {
	response string
}

func (g *cannedGenerator) GenerateComparison(context.Context, string) (string, error) {
	return g.response, nil
}

func TestLegacyResponseFlow(t *testing.T) {
	base := t.TempDir()

	cfg := config.Default()
	cfg.Writer.Paths.Data = filepath.Join(base, "data")
	cfg.Writer.Paths.Research = filepath.Join(base, "research")
	cfg.Writer.Paths.Output = filepath.Join(base, "output")
	cfg.Writer.Paths.Logs = filepath.Join(base, "logs")
	cfg.Writer.Schema.Version = string(models.SchemaV2)

	w := writer.New(cfg, &cannedGenerator{response: legacyResponse}, logger.NewWithOutput("error", io.Discard))

	doc, err := w.Generate(context.Background(), "Bitcoin", "Ethereum")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Split backgrounds merged into one content string with a subheading.
	if !strings.Contains(doc.Background.Content, "digital cash") ||
		!strings.Contains(doc.Background.Content, "## Ethereum") {
		t.Errorf("background content = %q", doc.Background.Content)
	}

	// Bare difference list migrated with token bisection.
	if len(doc.KeyDifferences.Items) != 1 {
		t.Fatalf("expected 1 difference item, got %d", len(doc.KeyDifferences.Items))
	}

	item := doc.KeyDifferences.Items[0]
	if item.ADescription != "A is fast. A is cheap." || item.BDescription != "B is slow. B is costly." {
		t.Errorf("bisected item = %+v", item)
	}

	// Rows-based table migrated to features.
	if len(doc.ComparisonTable.Features) != 1 {
		t.Fatalf("expected 1 table feature, got %d", len(doc.ComparisonTable.Features))
	}

	feat := doc.ComparisonTable.Features[0]
	if feat.Label != "Consensus" || feat.AValue != "Proof of work" || feat.BValue != "Proof of stake" {
		t.Errorf("migrated feature = %+v", feat)
	}

	// Bare date upgraded to a midnight timestamp under v2.
	if doc.PublishedDate != "2024-03-01T00:00:00Z" {
		t.Errorf("published_date = %q", doc.PublishedDate)
	}

	// Top-level summary paragraphs moved under conclusion and padded to
	// the v2 count.
	if len(doc.Conclusion.SummaryParagraphs) != 3 {
		t.Fatalf("expected 3 conclusion paragraphs, got %d", len(doc.Conclusion.SummaryParagraphs))
	}

	if doc.Conclusion.SummaryParagraphs[0].Text != "Bitcoin rewards patience." {
		t.Errorf("first conclusion paragraph = %q", doc.Conclusion.SummaryParagraphs[0].Text)
	}

	// Flat subject keys under v2.
	if doc.Terms != nil || doc.TermA != "Bitcoin" || doc.TermB != "Ethereum" {
		t.Errorf("terms placement: nested=%v flat=%q/%q", doc.Terms, doc.TermA, doc.TermB)
	}

	// The persisted file round-trips to the same canonical document.
	data, err := os.ReadFile(filepath.Join(cfg.Writer.Paths.Output, "bitcoin-vs-ethereum.json"))
	if err != nil {
		t.Fatalf("saved document missing: %v", err)
	}

	var saved models.ComparisonDocument
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("saved document is not valid JSON: %v", err)
	}

	if saved.Title != doc.Title || saved.ReadTime != doc.ReadTime {
		t.Errorf("saved document diverges: %+v", saved)
	}

	// Activity record for the attempt.
	entries, err := os.ReadDir(cfg.Writer.Paths.Logs)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected 1 activity record, got %d (err %v)", len(entries), err)
	}
}
