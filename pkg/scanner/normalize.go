package scanner

import "strings"

// noise is stripped from source text, in this order, before the accessor.
var noise = []string{",", "(", ")"}

// Normalize replaces commas, parentheses and the accessor token with a space,
// so that `Text(KEY.localized)`, `(KEY)` and `KEY,` all expose KEY.
func Normalize(source, accessor string) string {
	for _, token := range noise {
		source = strings.ReplaceAll(source, token, " ")
	}
	if accessor != "" {
		source = strings.ReplaceAll(source, accessor, " ")
	}
	return source
}
