// Package normalizer reshapes raw, possibly malformed or legacy-shaped
// model output into the canonical comparison document schema.
package normalizer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"blogwriter/internal/models"
	"blogwriter/pkg/utils"
)

const (
	isoLayout       = "2006-01-02T15:04:05Z"
	defaultReadTime = "5 min read"

	defaultAuthorName = "Moso Panda"
	defaultAuthorRole = "Crypto Connoisseur"

	mediaSuffix = "-comparison-blog"
)

var bareDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalizer converts raw documents into the canonical shape selected by
// its schema profile.
type Normalizer struct {
	profile models.SchemaProfile
	now     func() time.Time
}

// New creates a normalizer targeting the given schema profile.
func New(profile models.SchemaProfile) *Normalizer {
	return &Normalizer{
		profile: profile,
		now:     time.Now,
	}
}

// Normalize produces a canonical document from raw model output and the
// two subject identifiers. It is a total function: any malformed or
// missing field is defaulted rather than reported, so even an empty input
// yields a document with every required field. Deprecated field layouts
// (bare key_differences lists, rows-based tables, flat summary_paragraphs,
// split background_a/background_b) are migrated, never left in place, and
// scratch fields such as word_count or read_time_minutes have no slot in
// the canonical struct and are dropped.
func (n *Normalizer) Normalize(raw map[string]any, termA, termB string) *models.ComparisonDocument {
	if raw == nil {
		raw = map[string]any{}
	}

	doc := &models.ComparisonDocument{
		Title:         stringField(raw, "title", fmt.Sprintf("%s vs %s", termA, termB)),
		Slug:          stringField(raw, "slug", utils.Slugify(termA+"-vs-"+termB)),
		PublishedDate: n.publishedDate(raw["published_date"]),
		ReadTime:      stringField(raw, "read_time", defaultReadTime),
		Author:        authorField(raw),
		Media:         mediaField(raw, termA, termB),
		JumpLinkText:  stringField(raw, "jump_link_text", fmt.Sprintf("Jump to %s vs %s Comparison", termA, termB)),
	}

	doc.Background = n.background(raw, termA, termB)
	doc.KeyDifferences = n.keyDifferences(raw["key_differences"], termA, termB)
	doc.ComparisonTable = n.comparisonTable(raw["comparison_table"], termA, termB)
	doc.Conclusion = n.conclusion(raw, termA, termB)
	doc.IntroductionParagraphs = n.introduction(raw["introduction_paragraphs"], termA, termB)

	if n.profile.NestedTerms {
		doc.Terms = &models.Terms{TermA: termA, TermB: termB}
	} else {
		doc.TermA = termA
		doc.TermB = termB
	}

	return doc
}

// publishedDate applies the profile's date policy. V1 discards any
// supplied value and uses the current time. V2 upgrades bare YYYY-MM-DD
// values to midnight UTC, keeps valid full timestamps, and falls back to
// the current time on parse failure.
func (n *Normalizer) publishedDate(v any) string {
	nowStr := n.now().UTC().Format(isoLayout)

	if !n.profile.UpgradeBareDates {
		return nowStr
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return nowStr
	}

	if bareDatePattern.MatchString(s) {
		if _, err := time.Parse("2006-01-02", s); err == nil {
			return s + "T00:00:00Z"
		}

		return nowStr
	}

	if _, err := time.Parse(isoLayout, s); err == nil {
		return s
	}

	return nowStr
}

func (n *Normalizer) introduction(v any, termA, termB string) []models.Paragraph {
	paras := paragraphList(v)

	if !n.profile.SingleIntro {
		return paras
	}

	switch len(paras) {
	case 0:
		return []models.Paragraph{{
			Text: fmt.Sprintf("A side-by-side look at how %s and %s compare across background, key differences, and ideal use cases.", termA, termB),
		}}
	case 1:
		return paras
	default:
		texts := make([]string, 0, len(paras))
		for _, p := range paras {
			texts = append(texts, p.Text)
		}

		return []models.Paragraph{{Text: strings.Join(texts, " ")}}
	}
}

func (n *Normalizer) background(raw map[string]any, termA, termB string) models.Background {
	heading := fmt.Sprintf("Understanding %s and %s", termA, termB)

	// Split background_a/background_b is the oldest layout; merge it into
	// a single content string and drop the pair.
	bgA, hasA := raw["background_a"]
	bgB, hasB := raw["background_b"]

	if hasA || hasB {
		return models.Background{
			Heading: heading,
			Content: MergeSplitBackground(bgA, bgB, termB),
		}
	}

	bg, ok := raw["background"].(map[string]any)
	if !ok {
		return n.defaultBackground(heading, termA, termB)
	}

	heading = stringField(bg, "heading", heading)
	content, _ := bg["content"].(string)
	paras := paragraphList(bg["paragraphs"])

	if n.profile.BackgroundContent {
		if content == "" {
			content = joinParagraphs(paras, "\n\n")
		}

		if content == "" {
			return n.defaultBackground(heading, termA, termB)
		}

		return models.Background{Heading: heading, Content: content}
	}

	if len(paras) == 0 {
		if content == "" {
			return n.defaultBackground(heading, termA, termB)
		}

		paras = []models.Paragraph{{Text: content}}
	}

	return models.Background{Heading: heading, Paragraphs: paras}
}

func (n *Normalizer) defaultBackground(heading, termA, termB string) models.Background {
	placeholder := fmt.Sprintf("Background information about %s and %s was not available for this comparison.", termA, termB)

	if n.profile.BackgroundContent {
		return models.Background{Heading: heading, Content: placeholder}
	}

	return models.Background{
		Heading:    heading,
		Paragraphs: []models.Paragraph{{Text: placeholder}},
	}
}

func (n *Normalizer) keyDifferences(v any, termA, termB string) models.KeyDifferences {
	heading := fmt.Sprintf("Key Differences Between %s and %s", termA, termB)

	switch val := v.(type) {
	case []any:
		// Deprecated bare-list layout.
		return models.KeyDifferences{
			Heading: heading,
			Items:   MigrateDifferenceList(val),
		}
	case map[string]any:
		items := []models.DifferenceItem{}

		rawItems, _ := val["items"].([]any)
		for _, ri := range rawItems {
			entry, ok := ri.(map[string]any)
			if !ok {
				continue
			}

			items = append(items, models.DifferenceItem{
				FeatureTitle: stringField(entry, "feature_title", stringField(entry, "title", "")),
				ADescription: flattenText(entry["a_description"]),
				BDescription: flattenText(entry["b_description"]),
			})
		}

		return models.KeyDifferences{
			Heading: stringField(val, "heading", heading),
			Items:   items,
		}
	default:
		return models.KeyDifferences{Heading: heading, Items: []models.DifferenceItem{}}
	}
}

func (n *Normalizer) comparisonTable(v any, termA, termB string) models.ComparisonTable {
	table := models.ComparisonTable{
		Heading:  fmt.Sprintf("%s vs %s Comparison", termA, termB),
		Features: []models.TableFeature{},
		IdealFor: models.IdealFor{
			A: fmt.Sprintf("Users whose priorities line up with %s's strengths.", termA),
			B: fmt.Sprintf("Users whose priorities line up with %s's strengths.", termB),
		},
	}

	val, ok := v.(map[string]any)
	if !ok {
		return table
	}

	table.Heading = stringField(val, "heading", table.Heading)

	if rows, isRows := val["rows"].([]any); isRows {
		table.Features = MigrateTableRows(rows, termA, termB)
	} else if features, isFeatures := val["features"].([]any); isFeatures {
		for _, rf := range features {
			entry, isMap := rf.(map[string]any)
			if !isMap {
				continue
			}

			table.Features = append(table.Features, models.TableFeature{
				Label:  stringField(entry, "label", ""),
				AValue: flattenText(entry["a_value"]),
				BValue: flattenText(entry["b_value"]),
			})
		}
	}

	if ideal, isMap := val["ideal_for"].(map[string]any); isMap {
		table.IdealFor.A = stringField(ideal, "a", table.IdealFor.A)
		table.IdealFor.B = stringField(ideal, "b", table.IdealFor.B)
	}

	return table
}

func (n *Normalizer) conclusion(raw map[string]any, termA, termB string) models.Conclusion {
	heading := fmt.Sprintf("Conclusion: %s vs %s", termA, termB)

	var paras []models.Paragraph

	if c, ok := raw["conclusion"].(map[string]any); ok {
		heading = stringField(c, "heading", heading)
		paras = paragraphList(c["summary_paragraphs"])
	}

	// A flat top-level summary_paragraphs is the deprecated placement;
	// move it under the conclusion.
	if len(paras) == 0 {
		if sp, ok := raw["summary_paragraphs"]; ok {
			paras = paragraphList(sp)
		}
	}

	want := n.profile.ConclusionParagraphs
	if want < 1 {
		want = 2
	}

	if len(paras) > want {
		paras = paras[:want]
	}

	if len(paras) < want {
		defaults := defaultConclusionParagraphs(termA, termB)
		for len(paras) < want {
			if len(defaults) > 0 {
				paras = append(paras, defaults[0])
				defaults = defaults[1:]

				continue
			}

			paras = append(paras, models.Paragraph{
				Text: fmt.Sprintf("Choosing between %s and %s ultimately depends on individual goals and preferences.", termA, termB),
			})
		}
	}

	return models.Conclusion{Heading: heading, SummaryParagraphs: paras}
}

func defaultConclusionParagraphs(termA, termB string) []models.Paragraph {
	return []models.Paragraph{
		{Text: fmt.Sprintf("In conclusion, both %s and %s offer unique value propositions. While %s excels in specific use cases, %s has its own strengths that appeal to different user needs and preferences.", termA, termB, termA, termB)},
		{Text: fmt.Sprintf("Users should carefully consider their specific requirements and risk tolerance when choosing between %s and %s. The decision ultimately depends on individual goals, preferences, and the specific functionality needed.", termA, termB)},
		{Text: fmt.Sprintf("Whichever direction you lean, keeping an eye on how both %s and %s evolve will serve you well, as the gap between them continues to shift over time.", termA, termB)},
	}
}

func authorField(raw map[string]any) models.Author {
	author := models.Author{Name: defaultAuthorName, Role: defaultAuthorRole}

	if a, ok := raw["author"].(map[string]any); ok {
		author.Name = stringField(a, "name", author.Name)
		author.Role = stringField(a, "role", author.Role)
	}

	return author
}

func mediaField(raw map[string]any, termA, termB string) models.Media {
	media := models.Media{
		TermA: strings.ToLower(termA) + mediaSuffix,
		TermB: strings.ToLower(termB) + mediaSuffix,
	}

	if m, ok := raw["media"].(map[string]any); ok {
		media.TermA = stringField(m, "term_a", media.TermA)
		media.TermB = stringField(m, "term_b", media.TermB)
	}

	return media
}
