// Package piglatin converts text to pig latin across the whole Latin
// script, including diacritics, ligatures, and IPA symbols.
//
// Words move their leading consonant cluster to the end and gain a suffix
// ("pig" → "igpay"); vowel-led words gain a different suffix unchanged
// ("egg" → "eggway"). Everything between words — spaces, punctuation,
// digits, emoji — passes through untouched, and each word keeps its case
// shape (lowercase, UPPERCASE, or Sentencecase).
//
//	t := piglatin.NewDefault()
//	t.Transform("Pig latin")  // "Igpay atinlay"
//	t.Transform("à l’œuf")    // "àway œufl’ay"
//	t.Transform("Česko")      // "Eskočay"
//
// Custom suffixes are supported:
//
//	t := piglatin.New("eɪ", "weɪ")
//	t.Transform("ə stɹɪŋ")    // "əweɪ ɪŋstɹeɪ"
//
// Words whose first character is outside the Latin script are left alone.
package piglatin

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/matzehuels/porcus/pkg/casing"
	"github.com/matzehuels/porcus/pkg/latin"
	"github.com/matzehuels/porcus/pkg/segment"
)

const (
	// DefaultConsonantSuffix is appended to consonant-led words, e.g.
	// `nix` → `ixn`+`ay`.
	DefaultConsonantSuffix = "ay"

	// DefaultVowelSuffix is appended to vowel-led words, e.g.
	// `egg` → `egg`+`way`.
	DefaultVowelSuffix = "way"
)

// Transformer converts text to pig latin with a fixed pair of suffixes.
//
// A Transformer is immutable after construction and safe for concurrent
// use: Transform only reads the configuration and works on local data.
type Transformer struct {
	consonantSuffix string
	vowelSuffix     string
}

// New creates a Transformer with the given suffixes. The suffixes are
// stored verbatim and never validated; empty suffixes are legal and simply
// leave the rearranged word without a tail.
func New(consonantSuffix, vowelSuffix string) *Transformer {
	return &Transformer{
		consonantSuffix: consonantSuffix,
		vowelSuffix:     vowelSuffix,
	}
}

// NewDefault creates a Transformer with the default "ay"/"way" suffixes.
func NewDefault() *Transformer {
	return New(DefaultConsonantSuffix, DefaultVowelSuffix)
}

// ConsonantSuffix returns the suffix appended to consonant-led words.
func (t *Transformer) ConsonantSuffix() string { return t.consonantSuffix }

// VowelSuffix returns the suffix appended to vowel-led words.
func (t *Transformer) VowelSuffix() string { return t.vowelSuffix }

// Transform returns the pig latin equivalent of s.
//
// The input is segmented into word and separator runs; separators pass
// through unchanged and words are transformed independently, so the
// operation is a pure function of the configuration and the input. It is
// total: every string produces a defined output and nothing can fail.
func (t *Transformer) Transform(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range segment.Split(s) {
		if seg.Kind == segment.KindWord {
			b.WriteString(t.transformWord(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// transformWord converts one word, matching the output to the word's
// detected case. Words led by a non-Latin character are out of scope and
// returned unchanged.
func (t *Transformer) transformWord(word string) string {
	if word == "" || !latin.IsLatinLead(word) {
		return word
	}
	rotated := t.rotate(strings.ToLower(word))
	return casing.Apply(rotated, casing.Detect(word))
}

// rotate performs the uncased pig latin rearrangement on a lowercased word.
// The leading consonant cluster is found by scanning grapheme clusters, so
// decomposed letters move together with their combining marks.
func (t *Transformer) rotate(word string) string {
	var clusters []string
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	lead := 0
	for lead < len(clusters) && latin.Classify(clusters[lead]) == latin.CharTypeConsonant {
		lead++
	}
	if lead == 0 {
		return word + t.vowelSuffix
	}
	// A word with no vowel is all leading cluster and an empty remainder;
	// nothing rotates, the suffix still applies.
	return strings.Join(clusters[lead:], "") + strings.Join(clusters[:lead], "") + t.consonantSuffix
}
