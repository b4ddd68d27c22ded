// Package text extracts readable content from comparison documents and
// computes word-count and read-time metrics.
package text

import (
	"strings"

	"blogwriter/internal/models"
)

// Extract concatenates every text-bearing field of a document into one
// string, in a fixed section order, each field followed by a single space.
// Missing or empty sections are skipped silently. A background shaped as
// either a paragraph sequence or a single content string is handled
// uniformly.
func Extract(doc *models.ComparisonDocument) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder

	appendText(&b, doc.Title)
	appendText(&b, doc.JumpLinkText)

	for _, p := range doc.IntroductionParagraphs {
		appendText(&b, p.Text)
	}

	if doc.Background.Content != "" {
		appendText(&b, doc.Background.Content)
	} else {
		for _, p := range doc.Background.Paragraphs {
			appendText(&b, p.Text)
		}
	}

	for _, item := range doc.KeyDifferences.Items {
		appendText(&b, item.FeatureTitle)
		appendText(&b, item.ADescription)
		appendText(&b, item.BDescription)
	}

	for _, f := range doc.ComparisonTable.Features {
		appendText(&b, f.Label)
		appendText(&b, f.AValue)
		appendText(&b, f.BValue)
	}

	appendText(&b, doc.ComparisonTable.IdealFor.A)
	appendText(&b, doc.ComparisonTable.IdealFor.B)

	for _, p := range doc.Conclusion.SummaryParagraphs {
		appendText(&b, p.Text)
	}

	return b.String()
}

func appendText(b *strings.Builder, s string) {
	if s == "" {
		return
	}

	b.WriteString(s)
	b.WriteString(" ")
}
