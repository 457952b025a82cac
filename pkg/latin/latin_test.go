package latin

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		graphemes []string
		want      CharType
	}{
		{
			name:      "Vowels",
			graphemes: []string{"a", "e", "i", "o", "u", "A", "å", "ã", "é", "Î", "ö", "ø", "œ", "ə"},
			want:      CharTypeVowel,
		},
		{
			name:      "YFamilyAreVowels",
			graphemes: []string{"y", "Y", "Ÿ", "ȳ", "ỿ", "Ｙ"},
			want:      CharTypeVowel,
		},
		{
			name:      "Consonants",
			graphemes: []string{"b", "B", "ç", "Đ", "þ", "ñ", "ß", "ʔ", "Ⅰ"},
			want:      CharTypeConsonant,
		},
		{
			name:      "WordPunctuationAsConsonants",
			graphemes: []string{"'", "’", "·", "״"},
			want:      CharTypeConsonant,
		},
		{
			name:      "ModifiersAsConsonants",
			graphemes: []string{"ʰ", "ᵃ", "ʸ"},
			want:      CharTypeConsonant,
		},
		{
			name:      "NonLatin",
			graphemes: []string{" ", "\"", ",", ".", "1", "π", "ב", "的"},
			want:      CharTypeNonLatin,
		},
		{
			name:      "Empty",
			graphemes: []string{""},
			want:      CharTypeEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, g := range tt.graphemes {
				if got := Classify(g); got != tt.want {
					t.Errorf("Classify(%q) = %v, want %v", g, got, tt.want)
				}
			}
		})
	}
}

func TestClassifyNormalizationInsensitive(t *testing.T) {
	// NFC and NFD spellings of the same letter must classify identically.
	pairs := []struct {
		nfc, nfd string
		want     CharType
	}{
		{"ç", "ç", CharTypeConsonant},
		{"à", "à", CharTypeVowel},
		{"Č", "Č", CharTypeConsonant},
		{"ö", "ö", CharTypeVowel},
	}
	for _, p := range pairs {
		if got := Classify(p.nfc); got != p.want {
			t.Errorf("Classify(%q) = %v, want %v", p.nfc, got, p.want)
		}
		if got := Classify(p.nfd); got != p.want {
			t.Errorf("Classify(%q) = %v, want %v", p.nfd, got, p.want)
		}
	}
}

func TestIsWordRune(t *testing.T) {
	word := []rune{'a', 'Z', 'ç', 'ə', 'ʰ', 'न', '̧', '\'', '’', '״'}
	for _, r := range word {
		if !IsWordRune(r) {
			t.Errorf("IsWordRune(%q) = false, want true", r)
		}
	}
	separator := []rune{' ', '\n', '.', ',', '!', '-', '1', '🦀'}
	for _, r := range separator {
		if IsWordRune(r) {
			t.Errorf("IsWordRune(%q) = true, want false", r)
		}
	}
}

func TestIsLatinLead(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"pig", true},
		{"Česko", true},
		{"ʁɛv", true},
		{"twerkना", true},
		{"दिखना", false},
		{"αGo", false},
		{"’tis", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsLatinLead(tt.word); got != tt.want {
			t.Errorf("IsLatinLead(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestCharTypeString(t *testing.T) {
	tests := []struct {
		ct   CharType
		want string
	}{
		{CharTypeVowel, "vowel"},
		{CharTypeConsonant, "consonant"},
		{CharTypeNonLatin, "non-latin"},
		{CharTypeEmpty, "empty"},
		{CharType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("CharType(%d).String() = %q, want %q", int(tt.ct), got, tt.want)
		}
	}
}
