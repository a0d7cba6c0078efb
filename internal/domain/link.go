package domain

import "time"

// Link is a stored pointer to a filesystem path with display metadata
// and a dense order position.
type Link struct {
	ID       int64
	Name     string // display name, user-editable, non-unique
	Path     string // file or directory; may go stale if the target moves
	Tags     string // comma-separated labels, see SplitTags
	Position int    // zero-based rank, contiguous across all rows
	AddedAt  time.Time
}

// DisplayName returns the name shown in lists: the user-set name,
// falling back to the path's base name, falling back to the raw path.
func (l Link) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	if base := BaseName(l.Path); base != "" {
		return base
	}
	return l.Path
}

// TagList returns the link's tags as a slice.
func (l Link) TagList() []string {
	return SplitTags(l.Tags)
}

// BaseName returns the last element of a path, accepting both slash and
// backslash separators so that paths dropped from a Windows file browser
// resolve correctly on any host.
func BaseName(path string) string {
	end := len(path)
	for end > 0 && (path[end-1] == '/' || path[end-1] == '\\') {
		end--
	}
	start := end
	for start > 0 && path[start-1] != '/' && path[start-1] != '\\' {
		start--
	}
	return path[start:end]
}
