package latin

// vowels lists the Latin-script letters which are vowels, keyed by their
// decomposed form: `á` is covered by `a`, modifier characters are not
// listed. The `y` family is included wholesale.
var vowels = map[rune]bool{
	// Basic Latin
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true,
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	// Latin-1 supplement ordinal indicators
	'ª': true, 'º': true,
	// Latin-1 supplement and Extended-A letters
	'Æ': true, 'Ø': true, 'æ': true, 'ø': true, 'ı': true,
	'Ĳ': true, 'ĳ': true, 'Œ': true, 'œ': true,
	// Extended-B: non-European, historic and phonetic
	'Ǝ': true, 'Ə': true, 'Ɛ': true, 'Ɩ': true, 'Ɨ': true, 'Ɵ': true, 'Ʊ': true,
	'ǝ': true,
	'Ⱥ': true,
	'Ȣ': true, 'ȣ': true, 'Ʉ': true, 'Ɇ': true, 'ɇ': true,
	// IPA
	'ɐ': true, 'ɑ': true, 'ɒ': true, // a-like
	'ɘ': true, 'ə': true, 'ɚ': true, 'ɛ': true, 'ɜ': true, 'ɝ': true, 'ɞ': true, // e-like
	'ɨ': true, 'ɩ': true, 'ɪ': true, // i-like
	'ɵ': true, 'ɶ': true, 'ɷ': true, // o-like
	'ʉ': true, 'ʊ': true, // u-like
	// Phonetic extensions
	'ᴀ': true, 'ᴁ': true, 'ᴂ': true,
	'ᴇ': true, 'ᴈ': true,
	'ᴉ': true,
	'ᴏ': true, 'ᴐ': true, 'ᴑ': true, 'ᴒ': true, 'ᴓ': true, 'ᴔ': true,
	'ᴕ': true, 'ᴖ': true, 'ᴗ': true,
	'ᴜ': true, 'ᴝ': true, 'ᴞ': true, 'ᵫ': true,
	'ᵻ': true, 'ᵼ': true, 'ᵾ': true, 'ᵿ': true,
	'ᶏ': true, 'ᶐ': true, 'ᶒ': true, 'ᶓ': true, 'ᶔ': true, 'ᶕ': true,
	'ᶖ': true, 'ᶗ': true, 'ᶙ': true,
	'ẚ': true,
	'ⁱ': true,
	'ₐ': true, 'ₑ': true, 'ₒ': true, 'ₔ': true,
	// Extended-C
	'ⱥ': true,
	'Ɑ': true, 'Ɐ': true, 'Ɒ': true,
	'ⱸ': true, 'ⱺ': true, 'ⱻ': true,
	// Extended-D: medievalist ligatures and abbreviations
	'Ꜳ': true, 'ꜳ': true, 'Ꜵ': true, 'ꜵ': true, 'Ꜷ': true, 'ꜷ': true,
	'Ꜹ': true, 'ꜹ': true, 'Ꜻ': true, 'ꜻ': true, 'Ꜽ': true, 'ꜽ': true,
	'Ꝋ': true, 'ꝋ': true, 'Ꝍ': true, 'ꝍ': true, 'Ꝏ': true, 'ꝏ': true,
	'Ꝫ': true, 'ꝫ': true, 'Ꝭ': true, 'ꝭ': true, 'ꝸ': true,
	// Extended-D: Volapük and regional orthographies
	'Ꞛ': true, 'ꞛ': true, 'Ꞝ': true, 'ꞝ': true, 'Ꞟ': true, 'ꞟ': true,
	'Ɜ': true,
	'Ɪ': true,
	'Ꞷ': true, 'ꞷ': true,
	'Ꞹ': true, 'ꞹ': true,
	'Ꞻ': true, 'ꞻ': true, 'Ꞽ': true, 'ꞽ': true, 'Ꞿ': true, 'ꞿ': true,
	'ꟷ': true,
	'ꟹ': true,
	'ꟾ': true,
	// Extended-E: German dialectology
	'ꬰ': true, 'ꬱ': true,
	'ꬲ': true, 'ꬳ': true, 'ꬴ': true,
	'ꬽ': true, 'ꬾ': true, 'ꬿ': true, 'ꭀ': true, 'ꭁ': true, 'ꭂ': true,
	'ꭃ': true, 'ꭄ': true,
	'ꭎ': true, 'ꭏ': true, 'ꭐ': true, 'ꭑ': true, 'ꭒ': true,
	// Extended-E: Sakha and Americanist
	'ꭠ': true, 'ꭡ': true, 'ꭢ': true, 'ꭣ': true,
	'ꭤ': true,
	// The y family
	'Y': true, 'y': true, 'Ƴ': true, 'ƴ': true, 'Ɏ': true, 'ɏ': true,
	'ʎ': true, 'ʏ': true, 'Ỿ': true, 'ỿ': true, 'ꭚ': true,
	// Fullwidth
	'Ａ': true, 'Ｅ': true, 'Ｉ': true, 'Ｏ': true, 'Ｕ': true, 'Ｙ': true,
	'ａ': true, 'ｅ': true, 'ｉ': true, 'ｏ': true, 'ｕ': true, 'ｙ': true,
}

// wordPunctuation lists punctuation that joins letters into a single word
// and classifies as a consonant, e.g. `M'lady` becomes `Adym'lay`.
var wordPunctuation = map[rune]bool{
	'\'': true, // U+0027 apostrophe
	'’':  true, // U+2019 right single quotation mark
	'＇':  true, // U+FF07 fullwidth apostrophe
	'·':  true, // U+00B7 middle dot
	'՟':  true, // U+055F armenian abbreviation mark
	'״':  true, // U+05F4 hebrew punctuation gershayim
	'‧':  true, // U+2027 hyphenation point
}
