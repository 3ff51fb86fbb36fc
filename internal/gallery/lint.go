package gallery

import (
	"fmt"
	"slices"
	"sort"

	"gallery-compiler/internal/diagnostic"
	"gallery-compiler/internal/match"
)

// styleKeys are presentation keys a gallery record may not carry.
var styleKeys = map[string]struct{}{
	"border":    {},
	"style":     {},
	"class":     {},
	"classname": {},
	"css":       {},
	"margin":    {},
	"padding":   {},
}

// Lint reports record keys that Validate silently ignores. It never returns
// errors, only warnings and infos, and does not repeat what Validate checks.
func Lint(raw []Record) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for i, rec := range raw {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			lintKey(&diags, i, k)
		}

		if c, ok := rec[KeyCaption].(string); ok && c == "" {
			diags.AddInfo("empty_caption",
				"caption is empty; an empty caption node will be rendered", i, KeyCaption)
		}
	}

	return diags
}

func lintKey(diags *diagnostic.Diagnostics, index int, key string) {
	if slices.Contains(KnownKeys, key) {
		return
	}

	if _, ok := styleKeys[match.NormalizeKey(key)]; ok {
		diags.AddWarning("unsupported_style",
			fmt.Sprintf("styling key %q is not part of the gallery model and is ignored", key),
			index, key)

		return
	}

	diags.AddWarning("unknown_field",
		fmt.Sprintf("unknown key %q is ignored", key),
		index, key, match.Suggest(key, KnownKeys)...)
}
