package generator

import "strings"

// promptTemplate is the structural instruction set sent with every
// generation request. Placeholders are filled by BuildPrompt.
const promptTemplate = `You are an expert content creator specializing in educational comparison blog posts.

Task: Create a detailed comparison blog post between {term_a} and {term_b}.

Audience: Enthusiasts and investors seeking in-depth, technical comparisons.

Output Style:
- Objective and educational
- Get creative with the introduction paragraph and don't be generic
- Follows SEO best practices
- Structured exactly to the JSON format described below
- Total content should be roughly 1,300-1,500 words
- Don't be generic with the conclusion paragraphs either

Content Length Guidelines:
| Section         | # of Paragraphs | Sentences per Paragraph |
|-----------------|-----------------|-------------------------|
| Introduction    | 1               | 5-7                     |
| Background      | 4-5             | 4-6                     |
| Key Differences | 5 items         | 4-5 per description     |
| Comparison Table| 5-6 features    | Short bullet-style      |
| Ideal For       | 2 lines         | 1-2                     |
| Conclusion      | 2               | 4-6                     |

Return the blog as a JSON object with these fields:
- title, slug, published_date (ISO 8601), read_time ("X min read")
- author: {"name": "Moso Panda", "role": "Crypto Connoisseur"}
- media: {"term_a": "{term_a_lower}-comparison-blog", "term_b": "{term_b_lower}-comparison-blog"}
- introduction_paragraphs: [{"text": "..."}]
- jump_link_text: "Jump to {term_a} vs {term_b} Comparison"
- background: {"heading": "Understanding {term_a} and {term_b}", "paragraphs": [{"text": "..."}]}
- key_differences: {"heading": "Key Differences Between {term_a} and {term_b}", "items": [{"feature_title": "...", "a_description": "...", "b_description": "..."}]}
- comparison_table: {"heading": "{term_a} vs {term_b} Comparison", "features": [{"label": "...", "a_value": "...", "b_value": "..."}], "ideal_for": {"a": "...", "b": "..."}}
- conclusion: {"heading": "Conclusion: {term_a} vs {term_b}", "summary_paragraphs": [{"text": "..."}]}

Use the following research to inform your comparison:

{research_context}
`

// BuildPrompt fills the prompt template with the two subjects and the
// combined research context.
func BuildPrompt(termA, termB, researchContext string) string {
	r := strings.NewReplacer(
		"{term_a_lower}", strings.ToLower(termA),
		"{term_b_lower}", strings.ToLower(termB),
		"{term_a}", termA,
		"{term_b}", termB,
		"{research_context}", researchContext,
	)

	return r.Replace(promptTemplate)
}
