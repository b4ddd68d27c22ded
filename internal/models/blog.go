// Package models defines data structures for the comparison blog writer.
package models

// Paragraph is a single paragraph of body text.
type Paragraph struct {
	Text string `json:"text"`
}

// Author identifies the byline on a generated post.
type Author struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Terms names the two subjects being compared. Nested placement between
// author and media is the v1 layout; v2 uses the flat term_a/term_b keys
// on ComparisonDocument instead.
type Terms struct {
	TermA string `json:"term_a"`
	TermB string `json:"term_b"`
}

// Media holds the image identifiers for each subject.
type Media struct {
	TermA string `json:"term_a"`
	TermB string `json:"term_b"`
}

// Background is the section introducing both subjects. Exactly one of
// Paragraphs or Content is populated, depending on the target schema.
type Background struct {
	Heading    string      `json:"heading"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
	Content    string      `json:"content,omitempty"`
}

// DifferenceItem describes one feature where the subjects diverge.
type DifferenceItem struct {
	FeatureTitle string `json:"feature_title"`
	ADescription string `json:"a_description"`
	BDescription string `json:"b_description"`
}

// KeyDifferences is the heading plus the list of difference items.
type KeyDifferences struct {
	Heading string           `json:"heading"`
	Items   []DifferenceItem `json:"items"`
}

// TableFeature is a single row of the comparison table.
type TableFeature struct {
	Label  string `json:"label"`
	AValue string `json:"a_value"`
	BValue string `json:"b_value"`
}

// IdealFor summarizes who each subject suits best.
type IdealFor struct {
	A string `json:"a"`
	B string `json:"b"`
}

// ComparisonTable is the tabular section of the post.
type ComparisonTable struct {
	Heading  string         `json:"heading"`
	Features []TableFeature `json:"features"`
	IdealFor IdealFor       `json:"ideal_for"`
}

// Conclusion closes the post with a fixed number of summary paragraphs.
type Conclusion struct {
	Heading           string      `json:"heading"`
	SummaryParagraphs []Paragraph `json:"summary_paragraphs"`
}

// ComparisonDocument is the canonical, fully normalized blog post.
// Field order controls the JSON key order in the persisted artifact.
type ComparisonDocument struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	PublishedDate string `json:"published_date"`
	ReadTime      string `json:"read_time"`
	Author        Author `json:"author"`
	Terms         *Terms `json:"terms,omitempty"`
	Media         Media  `json:"media"`
	TermA         string `json:"term_a,omitempty"`
	TermB         string `json:"term_b,omitempty"`

	IntroductionParagraphs []Paragraph     `json:"introduction_paragraphs"`
	JumpLinkText           string          `json:"jump_link_text"`
	Background             Background      `json:"background"`
	KeyDifferences         KeyDifferences  `json:"key_differences"`
	ComparisonTable        ComparisonTable `json:"comparison_table"`
	Conclusion             Conclusion      `json:"conclusion"`
}
