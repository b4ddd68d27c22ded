package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	bareKeyPattern       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)
)

// ParseResponse parses raw model output as a JSON object. On parse failure
// it applies one best-effort repair pass and retries once; a response that
// still fails to parse surfaces as an error for the caller to treat as a
// per-item failure.
func ParseResponse(raw string) (map[string]any, error) {
	var doc map[string]any

	firstErr := json.Unmarshal([]byte(raw), &doc)
	if firstErr == nil {
		return doc, nil
	}

	repaired := Repair(raw)
	if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse model response (after repair: %v): %w", err, firstErr)
	}

	return doc, nil
}

// Repair applies the best-effort cleanup pass for near-JSON model output:
// strip Markdown code-fence wrappers, normalize curly quote characters,
// quote bare object keys, and drop trailing commas.
func Repair(raw string) string {
	s := stripCodeFence(raw)

	s = strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	).Replace(s)

	s = bareKeyPattern.ReplaceAllString(s, `$1"$2":`)
	s = trailingCommaPattern.ReplaceAllString(s, `$1`)

	return s
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
