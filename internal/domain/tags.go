package domain

import "strings"

// SplitTags parses a comma-separated tag string into trimmed, non-empty tags.
func SplitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTags renders tags back to the stored comma-separated form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// MergeTags combines a stored tag string with extra tags, preserving order
// and dropping duplicates.
func MergeTags(tags string, extra []string) string {
	seen := make(map[string]bool)
	var merged []string
	for _, t := range append(SplitTags(tags), extra...) {
		if !seen[t] {
			seen[t] = true
			merged = append(merged, t)
		}
	}
	return JoinTags(merged)
}
