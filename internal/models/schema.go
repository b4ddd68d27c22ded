package models

// SchemaVersion selects one of the two canonical target shapes for a
// generated post. The two versions disagree on paragraph counts, the
// background shape, the placement of the subject identifiers, the
// published_date policy, and the reading speed used for read-time
// estimates, so the choice is a single explicit configuration value
// threaded through the normalizer, validator, and metrics rather than
// ad-hoc branching.
type SchemaVersion string

// Supported schema versions.
const (
	// SchemaV1 is the singular layout: one introduction paragraph, a
	// two-paragraph conclusion, paragraph-sequence background, nested
	// terms object, 200 words per minute.
	SchemaV1 SchemaVersion = "v1"
	// SchemaV2 is the plural layout: two or more introduction
	// paragraphs, a three-paragraph conclusion, single-string
	// background content, flat term keys, 238 words per minute.
	SchemaV2 SchemaVersion = "v2"
)

// Valid reports whether v names a known schema version.
func (v SchemaVersion) Valid() bool {
	return v == SchemaV1 || v == SchemaV2
}

// SchemaProfile is the concrete rule set derived from a SchemaVersion.
type SchemaProfile struct {
	Version SchemaVersion

	// SingleIntro collapses introduction_paragraphs to exactly one entry.
	SingleIntro bool
	// MinIntroParagraphs is the advisory minimum when SingleIntro is false.
	MinIntroParagraphs int
	// ConclusionParagraphs is the exact count enforced on the conclusion.
	ConclusionParagraphs int
	// BackgroundContent renders the background as a single content string
	// instead of a paragraph sequence.
	BackgroundContent bool
	// NestedTerms places the subject identifiers in a terms object between
	// author and media; otherwise they are flat term_a/term_b keys.
	NestedTerms bool
	// UpgradeBareDates keeps a supplied published_date when it is a valid
	// timestamp, upgrading bare YYYY-MM-DD values to midnight UTC. When
	// false any supplied value is discarded and replaced with now.
	UpgradeBareDates bool
	// WordsPerMinute is the reading speed for read-time estimates.
	WordsPerMinute int
}

// ProfileFor returns the rule set for a schema version. Unknown versions
// fall back to SchemaV1.
func ProfileFor(v SchemaVersion) SchemaProfile {
	if v == SchemaV2 {
		return SchemaProfile{
			Version:              SchemaV2,
			SingleIntro:          false,
			MinIntroParagraphs:   2,
			ConclusionParagraphs: 3,
			BackgroundContent:    true,
			NestedTerms:          false,
			UpgradeBareDates:     true,
			WordsPerMinute:       238,
		}
	}

	return SchemaProfile{
		Version:              SchemaV1,
		SingleIntro:          true,
		MinIntroParagraphs:   1,
		ConclusionParagraphs: 2,
		BackgroundContent:    false,
		NestedTerms:          true,
		UpgradeBareDates:     false,
		WordsPerMinute:       200,
	}
}
