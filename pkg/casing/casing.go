// Package casing implements the three-way word case policy used by the
// pig latin transform: a word is uppercase, sentence-case, or lowercase,
// and the transformed word is rendered back in the detected case.
//
// This is a deliberate simplification, not a per-character case mirror:
// mixed-case words like "iPhone" detect as lowercase and render lowercase.
package casing

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Case is the detected case of a word.
type Case int

const (
	// CaseLower renders the word in lowercase. It is also the fallback for
	// mixed and uncased words.
	CaseLower Case = iota
	// CaseUpper renders the word entirely in uppercase.
	CaseUpper
	// CaseSentence renders the first grapheme uppercase and the rest
	// lowercase.
	CaseSentence
)

// String returns the case name.
func (c Case) String() string {
	switch c {
	case CaseLower:
		return "lowercase"
	case CaseUpper:
		return "UPPERCASE"
	case CaseSentence:
		return "Sentencecase"
	default:
		return "unknown"
	}
}

// Detect returns the case of a word.
//
// A word is sentence-case when its first rune is uppercase and no later
// rune is uppercase, which makes single capitals like "I" sentence-case
// rather than uppercase. It is uppercase when its first rune is uppercase
// and no later rune is lowercase. Everything else, including the empty
// string, uncased words, and mixed-case words, is lowercase.
func Detect(s string) Case {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return CaseLower
	}
	restNoUpper := true
	restNoLower := true
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			restNoUpper = false
		}
		if unicode.IsLower(r) {
			restNoLower = false
		}
	}
	switch {
	case restNoUpper:
		return CaseSentence
	case restNoLower:
		return CaseUpper
	default:
		return CaseLower
	}
}

// Apply renders s in the given case.
func Apply(s string, c Case) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseSentence:
		return toSentence(s)
	default:
		return strings.ToLower(s)
	}
}

// toSentence uppercases the first grapheme cluster and lowercases the rest,
// so a decomposed letter keeps its combining marks through the case change.
func toSentence(s string) string {
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return s
	}
	first := g.Str()
	_, rest := g.Positions()
	return strings.ToUpper(first) + strings.ToLower(s[rest:])
}
