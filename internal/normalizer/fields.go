package normalizer

import (
	"strings"

	"blogwriter/internal/models"
)

// Loosely-typed field accessors used while reshaping raw documents.

func stringField(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}

	return def
}

// paragraphList coerces a value into a paragraph sequence. Sequences may
// mix {text: ...} objects and bare strings; a single bare string is
// wrapped as one paragraph. Entries with no usable text are dropped.
func paragraphList(v any) []models.Paragraph {
	switch val := v.(type) {
	case []any:
		paras := []models.Paragraph{}

		for _, item := range val {
			switch p := item.(type) {
			case map[string]any:
				if text, ok := p["text"].(string); ok && text != "" {
					paras = append(paras, models.Paragraph{Text: text})
				}
			case string:
				if p != "" {
					paras = append(paras, models.Paragraph{Text: p})
				}
			}
		}

		return paras
	case string:
		if val == "" {
			return []models.Paragraph{}
		}

		return []models.Paragraph{{Text: val}}
	default:
		return []models.Paragraph{}
	}
}

// flattenText reduces a string, paragraph object, or paragraph sequence to
// one string, joining multiple paragraphs with a single space.
func flattenText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		s, _ := val["text"].(string)

		return s
	case []any:
		return joinParagraphs(paragraphList(val), " ")
	default:
		return ""
	}
}

func joinParagraphs(paras []models.Paragraph, sep string) string {
	texts := make([]string, 0, len(paras))

	for _, p := range paras {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}

	return strings.Join(texts, sep)
}
