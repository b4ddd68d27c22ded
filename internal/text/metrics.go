package text

import (
	"fmt"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"blogwriter/internal/models"
)

// DefaultReadTime is the read_time value used before metrics run.
const DefaultReadTime = "5 min read"

// CountWords counts the word-like tokens in s using Unicode word
// segmentation. Tokens with no letter or digit (bare punctuation,
// whitespace) are not counted, so ordinary prose counts match whitespace
// tokenization.
func CountWords(s string) int {
	count := 0

	tokens := words.FromString(s)
	for tokens.Next() {
		if wordlike(tokens.Value()) {
			count++
		}
	}

	return count
}

func wordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

// WordCount returns the total word count of a document's readable text.
func WordCount(doc *models.ComparisonDocument) int {
	return CountWords(Extract(doc))
}

// ReadTimeMinutes estimates reading time in whole minutes at the given
// reading speed, with a floor of one minute. Monotonic in the word count.
func ReadTimeMinutes(wordCount, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}

	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}

// FormatReadTime renders a minute count in the canonical "<N> min read"
// form.
func FormatReadTime(minutes int) string {
	return fmt.Sprintf("%d min read", minutes)
}
