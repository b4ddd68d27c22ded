package research

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blogwriter/internal/logger"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()

	return NewStore(dir, logger.NewWithOutput("error", io.Discard)), dir
}

func TestLoadResearch(t *testing.T) {
	store, dir := newTestStore(t)

	content := `{"research_content": "Bitcoin is a peer-to-peer currency."}`
	if err := os.WriteFile(filepath.Join(dir, "bitcoin.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write research file: %v", err)
	}

	got := store.LoadResearch("Bitcoin")
	if got != "Bitcoin is a peer-to-peer currency." {
		t.Errorf("LoadResearch = %q", got)
	}
}

func TestLoadResearch_LowercasedFilename(t *testing.T) {
	store, dir := newTestStore(t)

	content := `{"research_content": "Shiba research."}`
	if err := os.WriteFile(filepath.Join(dir, "shiba inu.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write research file: %v", err)
	}

	if got := store.LoadResearch("Shiba Inu"); got != "Shiba research." {
		t.Errorf("LoadResearch = %q", got)
	}
}

func TestLoadResearch_Missing(t *testing.T) {
	store, _ := newTestStore(t)

	if got := store.LoadResearch("Nothing"); got != "" {
		t.Errorf("expected empty string for missing research, got %q", got)
	}
}

func TestLoadResearch_Undecodable(t *testing.T) {
	store, dir := newTestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write research file: %v", err)
	}

	if got := store.LoadResearch("Broken"); got != "" {
		t.Errorf("expected empty string for undecodable research, got %q", got)
	}
}

func TestCombineResearch(t *testing.T) {
	got := CombineResearch("Bitcoin", "Ethereum", "BTC facts.", "ETH facts.")

	wantA := "## Research for Bitcoin:\n\nBTC facts."
	wantB := "## Research for Ethereum:\n\nETH facts."

	if !strings.Contains(got, wantA) || !strings.Contains(got, wantB) {
		t.Errorf("combined research = %q", got)
	}

	if strings.Index(got, wantA) > strings.Index(got, wantB) {
		t.Error("subject A's section should come first")
	}
}

func TestCombineResearch_Placeholders(t *testing.T) {
	got := CombineResearch("Bitcoin", "Ethereum", "", "")

	for _, want := range []string{
		"No detailed research available for Bitcoin.",
		"No detailed research available for Ethereum.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("combined research missing %q: %q", want, got)
		}
	}
}
