package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds a record key for fuzzy comparison: lower case, with
// '_', '-', '.' and whitespace removed.
// Examples:
//   - "Caption" -> "caption"
//   - "image_src" -> "imagesrc"
//   - "imageSrc" -> "imagesrc"
func NormalizeKey(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
