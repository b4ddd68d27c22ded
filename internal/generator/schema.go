package generator

import "google.golang.org/genai"

// comparisonSchema describes the target JSON shape for generated posts.
// Structured output keeps most responses directly parseable; the
// normalizer still defends against omissions and legacy layouts.
func comparisonSchema() *genai.Schema {
	paragraph := func(desc string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeObject,
			Description: desc,
			Properties: map[string]*genai.Schema{
				"text": {Type: genai.TypeString},
			},
			Required: []string{"text"},
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "The title of the comparison blog.",
			},
			"slug": {
				Type:        genai.TypeString,
				Description: "The unique identifier for the blog post.",
			},
			"published_date": {
				Type:        genai.TypeString,
				Description: "Publication timestamp in ISO 8601 format.",
			},
			"read_time": {
				Type:        genai.TypeString,
				Description: "Estimated time required to read the blog.",
			},
			"author": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {Type: genai.TypeString},
					"role": {Type: genai.TypeString},
				},
				Required: []string{"name", "role"},
			},
			"media": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"term_a": {Type: genai.TypeString},
					"term_b": {Type: genai.TypeString},
				},
				Required: []string{"term_a", "term_b"},
			},
			"introduction_paragraphs": {
				Type:  genai.TypeArray,
				Items: paragraph("Introduction paragraph."),
			},
			"jump_link_text": {
				Type:        genai.TypeString,
				Description: "Text for the jump link to the comparison section.",
			},
			"background": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"heading": {Type: genai.TypeString},
					"paragraphs": {
						Type:  genai.TypeArray,
						Items: paragraph("Background paragraph covering both subjects."),
					},
				},
				Required: []string{"heading", "paragraphs"},
			},
			"key_differences": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"heading": {Type: genai.TypeString},
					"items": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"feature_title": {Type: genai.TypeString},
								"a_description": {Type: genai.TypeString},
								"b_description": {Type: genai.TypeString},
							},
							Required: []string{"feature_title", "a_description", "b_description"},
						},
					},
				},
				Required: []string{"heading", "items"},
			},
			"comparison_table": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"heading": {Type: genai.TypeString},
					"features": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"label":   {Type: genai.TypeString},
								"a_value": {Type: genai.TypeString},
								"b_value": {Type: genai.TypeString},
							},
							Required: []string{"label", "a_value", "b_value"},
						},
					},
					"ideal_for": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"a": {Type: genai.TypeString},
							"b": {Type: genai.TypeString},
						},
						Required: []string{"a", "b"},
					},
				},
				Required: []string{"heading", "features", "ideal_for"},
			},
			"conclusion": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"heading": {Type: genai.TypeString},
					"summary_paragraphs": {
						Type:  genai.TypeArray,
						Items: paragraph("Concluding summary paragraph."),
					},
				},
				Required: []string{"heading", "summary_paragraphs"},
			},
		},
		Required: []string{
			"title", "slug", "published_date", "read_time", "author", "media",
			"introduction_paragraphs", "jump_link_text", "background",
			"key_differences", "comparison_table", "conclusion",
		},
	}
}
