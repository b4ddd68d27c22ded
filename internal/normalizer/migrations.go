package normalizer

import (
	"strings"

	"blogwriter/internal/models"
)

// Legacy-shape migrations. Each rule is a pure function from a deprecated
// field layout to its canonical replacement, applied when presence of the
// old key is detected during normalization.

// MergeSplitBackground merges the deprecated paired background_a and
// background_b paragraph sequences into a single content string. The
// second subject's section is introduced by a markdown subheading naming
// it, so both original texts remain identifiable in the merged result.
func MergeSplitBackground(bgA, bgB any, termB string) string {
	a := joinParagraphs(paragraphList(bgA), "\n\n")
	b := joinParagraphs(paragraphList(bgB), "\n\n")

	if b == "" {
		return a
	}

	merged := a + "\n\n## " + termB + "\n\n" + b

	return strings.TrimSpace(merged)
}

// MigrateDifferenceList converts the deprecated bare list of
// {title, description} entries into canonical difference items. Each
// description's paragraph text is flattened into one string and its
// whitespace tokens bisected: the first half (rounded down) becomes the
// description for subject A, the remainder for subject B. The bisection is
// a known-lossy heuristic with no semantic grounding and can split
// mid-sentence.
func MigrateDifferenceList(entries []any) []models.DifferenceItem {
	items := []models.DifferenceItem{}

	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}

		title := stringField(entry, "title", stringField(entry, "feature_title", ""))
		desc := flattenText(entry["description"])

		tokens := strings.Fields(desc)
		half := len(tokens) / 2

		items = append(items, models.DifferenceItem{
			FeatureTitle: title,
			ADescription: strings.Join(tokens[:half], " "),
			BDescription: strings.Join(tokens[half:], " "),
		})
	}

	return items
}

// MigrateTableRows converts a deprecated rows-based comparison table into
// canonical features. Each row's category becomes the label and its two
// subject-keyed values map to a_value and b_value.
func MigrateTableRows(rows []any, termA, termB string) []models.TableFeature {
	features := []models.TableFeature{}

	for _, r := range rows {
		row, ok := r.(map[string]any)
		if !ok {
			continue
		}

		features = append(features, models.TableFeature{
			Label:  stringField(row, "category", stringField(row, "label", "")),
			AValue: subjectValue(row, termA, "a", "a_value"),
			BValue: subjectValue(row, termB, "b", "b_value"),
		})
	}

	return features
}

// subjectValue finds a row's value for one subject, trying the subject
// name itself (as given and lowercased) before the generic fallbacks.
func subjectValue(row map[string]any, term string, fallbacks ...string) string {
	keys := append([]string{term, strings.ToLower(term)}, fallbacks...)

	for _, key := range keys {
		if s := flattenText(row[key]); s != "" {
			return s
		}
	}

	return ""
}
