package insights

import (
	"strings"
	"unicode/utf8"
)

// ExtractSubjectFeatures derives simple boolean/numeric signals from a
// subject line. An empty subject yields the zero value.
func ExtractSubjectFeatures(subject string) SubjectFeatures {
	if subject == "" {
		return SubjectFeatures{}
	}

	lower := strings.ToLower(subject)
	return SubjectFeatures{
		Length:             utf8.RuneCountInString(subject),
		HasQuestion:        strings.Contains(subject, "?"),
		HasPersonalization: hasPersonalization(lower),
		HasNumbers:         strings.ContainsAny(subject, "0123456789"),
		HasEmoji:           hasEmoji(subject),
	}
}

// hasPersonalization detects merge-tag syntax ({, [) or first-name tokens.
func hasPersonalization(lower string) bool {
	return strings.Contains(lower, "{") ||
		strings.Contains(lower, "[") ||
		strings.Contains(lower, "first") ||
		strings.Contains(lower, "name")
}

// hasEmoji reports whether the subject contains a code point in the
// emoticon block (U+1F600–U+1F64F).
func hasEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F600 && r <= 0x1F64F {
			return true
		}
	}
	return false
}
