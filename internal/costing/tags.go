package costing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DeriveTags merges explicit comma-separated tags with words extracted from
// the recette name into one flat, lower-cased, deduplicated set. Explicit
// entries of one character or less and name words of two characters or less
// are dropped. Order is deterministic: explicit tags first, then name words,
// each in input order.
func DeriveTags(explicitCsv, nom string) []string {
	seen := make(map[string]bool)
	var tags []string

	add := func(label string) {
		if !seen[label] {
			seen[label] = true
			tags = append(tags, label)
		}
	}

	for _, entry := range strings.Split(explicitCsv, ",") {
		label := strings.ToLower(strings.TrimSpace(entry))
		if utf8.RuneCountInString(label) > 1 {
			add(label)
		}
	}

	words := strings.FieldsFunc(strings.ToLower(nom), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		if utf8.RuneCountInString(word) > 2 {
			add(word)
		}
	}

	return tags
}
