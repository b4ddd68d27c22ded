package text

import (
	"strings"
	"testing"

	"blogwriter/internal/models"
)

func sampleDoc() *models.ComparisonDocument {
	return &models.ComparisonDocument{
		Title:        "Bitcoin vs Ethereum",
		JumpLinkText: "Jump to Comparison",
		IntroductionParagraphs: []models.Paragraph{
			{Text: "Intro paragraph."},
		},
		Background: models.Background{
			Heading: "Understanding Both",
			Paragraphs: []models.Paragraph{
				{Text: "Background one."},
				{Text: "Background two."},
			},
		},
		KeyDifferences: models.KeyDifferences{
			Items: []models.DifferenceItem{
				{FeatureTitle: "Speed", ADescription: "A is fast.", BDescription: "B is slow."},
			},
		},
		ComparisonTable: models.ComparisonTable{
			Features: []models.TableFeature{
				{Label: "Fees", AValue: "Low", BValue: "High"},
			},
			IdealFor: models.IdealFor{A: "Savers.", B: "Builders."},
		},
		Conclusion: models.Conclusion{
			SummaryParagraphs: []models.Paragraph{
				{Text: "Closing thoughts."},
			},
		},
	}
}

func TestExtract_SectionOrder(t *testing.T) {
	got := Extract(sampleDoc())

	sections := []string{
		"Bitcoin vs Ethereum",
		"Jump to Comparison",
		"Intro paragraph.",
		"Background one.",
		"Background two.",
		"Speed",
		"A is fast.",
		"B is slow.",
		"Fees",
		"Low",
		"High",
		"Savers.",
		"Builders.",
		"Closing thoughts.",
	}

	last := -1

	for _, section := range sections {
		idx := strings.Index(got, section)
		if idx < 0 {
			t.Fatalf("missing section %q in extracted text", section)
		}

		if idx < last {
			t.Errorf("section %q out of order", section)
		}

		last = idx
	}
}

func TestExtract_BackgroundContentShape(t *testing.T) {
	doc := sampleDoc()
	doc.Background = models.Background{
		Heading: "Understanding Both",
		Content: "Merged background content.",
	}

	got := Extract(doc)

	if !strings.Contains(got, "Merged background content.") {
		t.Error("content-shaped background not extracted")
	}
}

func TestExtract_MissingSectionsSkipped(t *testing.T) {
	got := Extract(&models.ComparisonDocument{Title: "Only Title"})

	if got != "Only Title " {
		t.Errorf("expected just the title with trailing space, got %q", got)
	}
}

func TestExtract_Nil(t *testing.T) {
	if got := Extract(nil); got != "" {
		t.Errorf("expected empty string for nil doc, got %q", got)
	}
}
