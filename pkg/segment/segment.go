// Package segment partitions text into alternating word and separator runs.
//
// A word is a maximal run of word runes (letters, combining marks, and
// word-internal punctuation per [latin.IsWordRune]); a separator is a
// maximal run of anything else. Segmentation is lossless and total:
// concatenating the segments of any input, in order, reproduces the input
// byte-for-byte, and no input can make it fail.
package segment

import (
	"strings"

	"github.com/matzehuels/porcus/pkg/latin"
)

// Kind distinguishes word segments from separator segments.
type Kind int

const (
	// KindWord is a run of word runes.
	KindWord Kind = iota
	// KindSeparator is a run of non-word runes, copied through unchanged
	// by any downstream transform.
	KindSeparator
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Segment is a maximal run of same-kind runes.
type Segment struct {
	Text string
	Kind Kind
}

// Split scans s left to right and returns its segments in order.
// Empty input yields nil. A single character is its own segment.
func Split(s string) []Segment {
	if s == "" {
		return nil
	}

	var segs []Segment
	var run strings.Builder
	var kind Kind
	first := true

	for _, r := range s {
		k := KindSeparator
		if latin.IsWordRune(r) {
			k = KindWord
		}
		if first {
			kind = k
			first = false
		} else if k != kind {
			segs = append(segs, Segment{Text: run.String(), Kind: kind})
			run.Reset()
			kind = k
		}
		run.WriteRune(r)
	}
	return append(segs, Segment{Text: run.String(), Kind: kind})
}
