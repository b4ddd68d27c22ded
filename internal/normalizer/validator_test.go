package normalizer

import (
	"strings"
	"testing"

	"blogwriter/internal/models"
)

func completeDoc(version models.SchemaVersion) *models.ComparisonDocument {
	paras := func(n int) []models.Paragraph {
		out := make([]models.Paragraph, n)
		for i := range out {
			out[i] = models.Paragraph{Text: "Paragraph."}
		}

		return out
	}

	profile := models.ProfileFor(version)

	doc := &models.ComparisonDocument{
		Title:                  "Bitcoin vs Ethereum",
		Slug:                   "bitcoin-vs-ethereum",
		PublishedDate:          "2025-06-15T10:30:00Z",
		ReadTime:               "5 min read",
		Author:                 models.Author{Name: "Moso Panda", Role: "Crypto Connoisseur"},
		Media:                  models.Media{TermA: "bitcoin-comparison-blog", TermB: "ethereum-comparison-blog"},
		JumpLinkText:           "Jump to Comparison",
		IntroductionParagraphs: paras(2),
		Background:             models.Background{Heading: "Background", Paragraphs: paras(4)},
		Conclusion:             models.Conclusion{Heading: "Conclusion", SummaryParagraphs: paras(profile.ConclusionParagraphs)},
	}

	if profile.SingleIntro {
		doc.IntroductionParagraphs = paras(1)
	}

	if profile.NestedTerms {
		doc.Terms = &models.Terms{TermA: "Bitcoin", TermB: "Ethereum"}
	} else {
		doc.TermA = "Bitcoin"
		doc.TermB = "Ethereum"
	}

	for i := 0; i < minKeyDifferences; i++ {
		doc.KeyDifferences.Items = append(doc.KeyDifferences.Items, models.DifferenceItem{
			FeatureTitle: "Feature", ADescription: "a", BDescription: "b",
		})
	}

	for i := 0; i < minTableFeatures; i++ {
		doc.ComparisonTable.Features = append(doc.ComparisonTable.Features, models.TableFeature{
			Label: "Row", AValue: "a", BValue: "b",
		})
	}

	return doc
}

func TestValidate_CompleteDocument(t *testing.T) {
	for _, version := range []models.SchemaVersion{models.SchemaV1, models.SchemaV2} {
		t.Run(string(version), func(t *testing.T) {
			v := NewValidator(models.ProfileFor(version))

			if warnings := v.Validate(completeDoc(version)); len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
		})
	}
}

func TestValidate_MissingFields(t *testing.T) {
	doc := completeDoc(models.SchemaV1)
	doc.Title = ""
	doc.JumpLinkText = ""

	warnings := NewValidator(models.ProfileFor(models.SchemaV1)).Validate(doc)

	joined := strings.Join(warnings, "; ")
	for _, want := range []string{"missing required field: title", "missing required field: jump_link_text"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected warning %q in %v", want, warnings)
		}
	}
}

func TestValidate_TermsPlacement(t *testing.T) {
	v1doc := completeDoc(models.SchemaV1)
	v1doc.Terms = nil

	warnings := NewValidator(models.ProfileFor(models.SchemaV1)).Validate(v1doc)
	if !containsWarning(warnings, "missing terms object") {
		t.Errorf("expected nested-terms warning, got %v", warnings)
	}

	v2doc := completeDoc(models.SchemaV2)
	v2doc.TermA = ""

	warnings = NewValidator(models.ProfileFor(models.SchemaV2)).Validate(v2doc)
	if !containsWarning(warnings, "missing term_a/term_b fields") {
		t.Errorf("expected flat-terms warning, got %v", warnings)
	}
}

func TestValidate_IntroductionRules(t *testing.T) {
	v1doc := completeDoc(models.SchemaV1)
	v1doc.IntroductionParagraphs = append(v1doc.IntroductionParagraphs, models.Paragraph{Text: "Extra."})

	warnings := NewValidator(models.ProfileFor(models.SchemaV1)).Validate(v1doc)
	if !containsWarning(warnings, "exactly 1 paragraph") {
		t.Errorf("expected single-intro warning, got %v", warnings)
	}

	v2doc := completeDoc(models.SchemaV2)
	v2doc.IntroductionParagraphs = v2doc.IntroductionParagraphs[:1]

	warnings = NewValidator(models.ProfileFor(models.SchemaV2)).Validate(v2doc)
	if !containsWarning(warnings, "at least 2 paragraphs") {
		t.Errorf("expected min-intro warning, got %v", warnings)
	}
}

func TestValidate_BackgroundContentShapeSkipsParagraphRule(t *testing.T) {
	doc := completeDoc(models.SchemaV2)
	doc.Background = models.Background{Heading: "Background", Content: "One merged blob."}

	warnings := NewValidator(models.ProfileFor(models.SchemaV2)).Validate(doc)
	if containsWarning(warnings, "background") {
		t.Errorf("content-shaped background should not trigger the paragraph rule: %v", warnings)
	}
}

func TestValidate_SectionMinimums(t *testing.T) {
	doc := completeDoc(models.SchemaV1)
	doc.KeyDifferences.Items = doc.KeyDifferences.Items[:2]
	doc.ComparisonTable.Features = nil
	doc.Background.Paragraphs = doc.Background.Paragraphs[:1]

	warnings := NewValidator(models.ProfileFor(models.SchemaV1)).Validate(doc)

	for _, want := range []string{"fewer than 5 key differences", "fewer than 5 comparison table features", "fewer than 4 paragraphs"} {
		if !containsWarning(warnings, want) {
			t.Errorf("expected warning %q, got %v", want, warnings)
		}
	}
}

func TestValidate_ConclusionCount(t *testing.T) {
	doc := completeDoc(models.SchemaV1)
	doc.Conclusion.SummaryParagraphs = doc.Conclusion.SummaryParagraphs[:1]

	warnings := NewValidator(models.ProfileFor(models.SchemaV1)).Validate(doc)
	if !containsWarning(warnings, "conclusion should have exactly 2 paragraphs") {
		t.Errorf("expected conclusion count warning, got %v", warnings)
	}
}

func TestValidate_NilDocument(t *testing.T) {
	warnings := NewValidator(models.ProfileFor(models.SchemaV1)).Validate(nil)
	if len(warnings) != 1 || warnings[0] != "document is nil" {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestValidate_NormalizedEmptyInputPassesRequiredFields(t *testing.T) {
	n := newTestNormalizer(models.SchemaV1)
	doc := n.Normalize(map[string]any{}, "Bitcoin", "Ethereum")

	warnings := NewValidator(models.ProfileFor(models.SchemaV1)).Validate(doc)
	for _, w := range warnings {
		if strings.HasPrefix(w, "missing required field") {
			t.Errorf("normalized document should satisfy required fields: %v", warnings)
		}
	}
}

func containsWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}

	return false
}
