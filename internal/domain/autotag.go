package domain

import (
	"os"
	"strings"
)

// AutoTags derives tags from what the path points at: "folder" for a
// directory, "file" plus the lower-cased extension for a file. Returns nil
// when the path does not exist, so stale drops never gain bogus tags.
func AutoTags(path string) []string {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if info.IsDir() {
		return []string{"folder"}
	}
	tags := []string{"file"}
	base := BaseName(path)
	if i := strings.LastIndexByte(base, '.'); i > 0 && i < len(base)-1 {
		tags = append(tags, strings.ToLower(base[i+1:]))
	}
	return tags
}
