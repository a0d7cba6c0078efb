package domain

import (
	"reflect"
	"testing"
)

func TestClassifyDrop(t *testing.T) {
	tests := []struct {
		name    string
		payload DropPayload
		want    Gesture
	}{
		{
			name:    "cancelled drop",
			payload: DropPayload{Cancelled: true, HasInternal: true, InternalID: 3},
			want:    Gesture{Kind: GestureCancel},
		},
		{
			name:    "internal drag",
			payload: DropPayload{HasInternal: true, InternalID: 7, TargetIndex: 2},
			want:    Gesture{Kind: GestureReorder, ID: 7, Index: 2},
		},
		{
			name:    "external paths",
			payload: DropPayload{Text: "X:\\a.txt\nX:\\b"},
			want:    Gesture{Kind: GestureAddPaths, Paths: []string{`X:\a.txt`, `X:\b`}},
		},
		{
			name: "internal wins over external",
			payload: DropPayload{
				HasInternal: true,
				InternalID:  4,
				TargetIndex: 0,
				Text:        "/tmp/dup.txt",
			},
			want: Gesture{Kind: GestureReorder, ID: 4, Index: 0},
		},
		{
			name:    "empty payload",
			payload: DropPayload{},
			want:    Gesture{Kind: GestureCancel},
		},
		{
			name:    "whitespace-only text",
			payload: DropPayload{Text: "  \n\t\n"},
			want:    Gesture{Kind: GestureCancel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDrop(tt.payload)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyDrop() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDroppedText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain lines preserve order",
			text: "/tmp/a\n/tmp/b\n/tmp/c",
			want: []string{"/tmp/a", "/tmp/b", "/tmp/c"},
		},
		{
			name: "quoted windows paths",
			text: "\"X:\\My Documents\\report.pdf\"\r\n\"X:\\b\"",
			want: []string{`X:\My Documents\report.pdf`, `X:\b`},
		},
		{
			name: "file uri",
			text: "file:///home/user/some%20file.txt",
			want: []string{"/home/user/some file.txt"},
		},
		{
			name: "blank lines skipped",
			text: "\n/tmp/a\n\n",
			want: []string{"/tmp/a"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDroppedText(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDroppedText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
