package normalizer

import (
	"fmt"

	"blogwriter/internal/models"
)

// Recommended minimum section sizes.
const (
	minBackgroundParagraphs = 4
	minKeyDifferences       = 5
	minTableFeatures        = 5
)

// Validator performs advisory structural checks on canonical documents.
type Validator struct {
	profile models.SchemaProfile
}

// NewValidator creates a validator for the given schema profile.
func NewValidator(profile models.SchemaProfile) *Validator {
	return &Validator{profile: profile}
}

// Validate checks a document against the minimum structural expectations
// of the active schema and returns human-readable warnings. It never
// fails and never mutates the document; callers log the warnings and
// continue.
func (v *Validator) Validate(doc *models.ComparisonDocument) []string {
	var warnings []string

	if doc == nil {
		return []string{"document is nil"}
	}

	for _, check := range []struct {
		value string
		field string
	}{
		{doc.Title, "title"},
		{doc.Slug, "slug"},
		{doc.PublishedDate, "published_date"},
		{doc.ReadTime, "read_time"},
		{doc.Author.Name, "author.name"},
		{doc.Media.TermA, "media.term_a"},
		{doc.Media.TermB, "media.term_b"},
		{doc.JumpLinkText, "jump_link_text"},
	} {
		if check.value == "" {
			warnings = append(warnings, fmt.Sprintf("missing required field: %s", check.field))
		}
	}

	if v.profile.NestedTerms {
		if doc.Terms == nil || doc.Terms.TermA == "" || doc.Terms.TermB == "" {
			warnings = append(warnings, "missing terms object")
		}
	} else if doc.TermA == "" || doc.TermB == "" {
		warnings = append(warnings, "missing term_a/term_b fields")
	}

	intro := len(doc.IntroductionParagraphs)

	if v.profile.SingleIntro {
		if intro != 1 {
			warnings = append(warnings, fmt.Sprintf("introduction should have exactly 1 paragraph, found %d", intro))
		}
	} else if intro < v.profile.MinIntroParagraphs {
		warnings = append(warnings, fmt.Sprintf("introduction should have at least %d paragraphs, found %d", v.profile.MinIntroParagraphs, intro))
	}

	// The paragraph-count rule only applies to the paragraph-sequence
	// background shape.
	if doc.Background.Content == "" && len(doc.Background.Paragraphs) < minBackgroundParagraphs {
		warnings = append(warnings, fmt.Sprintf("background has fewer than %d paragraphs", minBackgroundParagraphs))
	}

	if len(doc.KeyDifferences.Items) < minKeyDifferences {
		warnings = append(warnings, fmt.Sprintf("fewer than %d key differences", minKeyDifferences))
	}

	if len(doc.ComparisonTable.Features) < minTableFeatures {
		warnings = append(warnings, fmt.Sprintf("fewer than %d comparison table features", minTableFeatures))
	}

	if got := len(doc.Conclusion.SummaryParagraphs); got != v.profile.ConclusionParagraphs {
		warnings = append(warnings, fmt.Sprintf("conclusion should have exactly %d paragraphs, found %d", v.profile.ConclusionParagraphs, got))
	}

	return warnings
}
