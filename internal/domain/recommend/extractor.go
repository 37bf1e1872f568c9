package recommend

import "strings"

// ExtractSkills scans free text for vocabulary and alias hits. Matching is a
// case-insensitive substring test, so multi-word names must appear verbatim.
// The result is deduplicated and ordered by vocabulary scan order (alias-only
// hits follow, in alias table order). Unrecognized text yields an empty
// slice, never an error.
func ExtractSkills(text string) []string {
	out := make([]string, 0, 8)
	if strings.TrimSpace(text) == "" {
		return out
	}
	lower := strings.ToLower(text)

	seen := make(map[string]struct{}, 8)
	add := func(canonical string) {
		if _, ok := seen[canonical]; ok {
			return
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}

	for _, e := range Vocabulary {
		if strings.Contains(lower, strings.ToLower(e.Name)) {
			add(e.Name)
		}
	}
	for _, a := range Aliases {
		if strings.Contains(lower, strings.ToLower(a.Alias)) {
			add(a.Canonical)
		}
	}
	return out
}
