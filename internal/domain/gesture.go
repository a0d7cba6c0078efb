package domain

import (
	"net/url"
	"strings"
)

// DropPayload is the toolkit-independent content of a completed drag
// gesture. The UI layer fills it in from whatever events its toolkit
// delivers; classification itself never touches the toolkit.
type DropPayload struct {
	HasInternal bool   // drag started on an existing row of the list
	InternalID  int64  // id of that row
	TargetIndex int    // insertion index under the pointer at drop time
	Text        string // external payload: newline-separated paths, possibly quoted or file:// URIs
	Cancelled   bool   // released outside the list or explicitly aborted
}

// GestureKind is the outcome of classifying a drop payload.
type GestureKind int

const (
	GestureCancel GestureKind = iota
	GestureReorder
	GestureAddPaths
)

// Gesture is a classified drop, ready to be translated into store calls:
// one Reorder for GestureReorder, one Add per path for GestureAddPaths,
// nothing for GestureCancel.
type Gesture struct {
	Kind  GestureKind
	ID    int64    // set for GestureReorder
	Index int      // set for GestureReorder
	Paths []string // set for GestureAddPaths, in payload order
}

// ClassifyDrop maps a drop payload to exactly one gesture.
//
// A payload carrying both internal row data and external path data is
// classified as an internal move and the external half is ignored;
// honoring both would insert a duplicate of the dragged row.
func ClassifyDrop(p DropPayload) Gesture {
	if p.Cancelled {
		return Gesture{Kind: GestureCancel}
	}
	if p.HasInternal {
		return Gesture{Kind: GestureReorder, ID: p.InternalID, Index: p.TargetIndex}
	}
	paths := ParseDroppedText(p.Text)
	if len(paths) == 0 {
		return Gesture{Kind: GestureCancel}
	}
	return Gesture{Kind: GestureAddPaths, Paths: paths}
}

// ParseDroppedText extracts filesystem paths from an external drop payload.
// File browsers and terminals deliver dragged files as lines of text, often
// quoted and sometimes as file:// URIs; order is preserved.
func ParseDroppedText(text string) []string {
	var paths []string
	for _, line := range strings.Split(text, "\n") {
		p := strings.TrimSpace(line)
		p = strings.Trim(p, `"'`)
		if strings.HasPrefix(p, "file://") {
			p = strings.TrimPrefix(p, "file://")
			if unescaped, err := url.PathUnescape(p); err == nil {
				p = unescaped
			}
		}
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
