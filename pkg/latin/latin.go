// Package latin classifies Latin-script and IPA characters as vowels or
// consonants for the pig latin transform.
//
// Classification is grapheme-based and normalization-insensitive: a grapheme
// cluster is classified by the first rune of its NFD form, so precomposed
// and decomposed spellings (`ç` vs `c`+U+0327) classify identically. The
// vowel set is a fixed table of decomposed code points covering Basic Latin,
// the Latin supplements and extensions, IPA, and the phonetic extension
// blocks; every other Latin-script character is a consonant. A small set of
// word-internal punctuation (apostrophes and similar joiners) also counts as
// consonants, so contractions like "l'œuf" keep their leading cluster.
package latin

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CharType is the vowel-or-consonant classification of a grapheme cluster.
type CharType int

const (
	// CharTypeVowel is a Latin or IPA vowel, e.g. `a`, `æ`, `ő`, `ɛ`.
	CharTypeVowel CharType = iota
	// CharTypeConsonant is a Latin or IPA consonant, e.g. `b`, `ç`, `ł`, `ʁ`.
	// Word-internal punctuation such as `'` also classifies as a consonant.
	CharTypeConsonant
	// CharTypeNonLatin is anything outside the Latin script, e.g. ` `, `1`, `的`.
	CharTypeNonLatin
	// CharTypeEmpty is the classification of the empty string.
	CharTypeEmpty
)

// String returns the classification name.
func (t CharType) String() string {
	switch t {
	case CharTypeVowel:
		return "vowel"
	case CharTypeConsonant:
		return "consonant"
	case CharTypeNonLatin:
		return "non-latin"
	case CharTypeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Classify returns the classification of a single grapheme cluster.
//
// The cluster is reduced to the first rune of its NFD form, so diacritics
// never affect the result. Characters in the vowel table classify as vowels,
// word-internal punctuation and all remaining Latin-script characters as
// consonants, and everything else as non-Latin. The empty string gets its
// own classification.
//
// Which letters are vowels depends on the orthography of the language; the
// table follows English conventions, so e.g. the Welsh vowel `w` classifies
// as a consonant.
func Classify(grapheme string) CharType {
	var first rune = -1
	for _, r := range norm.NFD.String(grapheme) {
		first = r
		break
	}
	if first < 0 {
		return CharTypeEmpty
	}
	switch {
	case vowels[first]:
		return CharTypeVowel
	case wordPunctuation[first]:
		return CharTypeConsonant
	case unicode.Is(unicode.Latin, first):
		return CharTypeConsonant
	default:
		return CharTypeNonLatin
	}
}

// IsWordRune reports whether r belongs to a word for segmentation purposes:
// any letter by Unicode general category, any combining mark (marks attach
// to the letter they follow), or word-internal punctuation.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || wordPunctuation[r]
}

// IsLatinLead reports whether the first rune of word is in the Latin script.
// Words failing this test are outside the program's scope and pass through
// the transform unchanged. The empty string is not Latin-led.
func IsLatinLead(word string) bool {
	for _, r := range word {
		return unicode.Is(unicode.Latin, r)
	}
	return false
}
