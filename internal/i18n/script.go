package i18n

import "unicode"

// scripts maps each non-English language to the Unicode script its text is
// written in. Hindi and Marathi share Devanagari.
var scripts = map[Language]*unicode.RangeTable{
	Hindi:   unicode.Devanagari,
	Tamil:   unicode.Tamil,
	Telugu:  unicode.Telugu,
	Bengali: unicode.Bengali,
	Marathi: unicode.Devanagari,
}

// ContainsScript reports whether text contains at least one rune in the
// script of lang. For English it reports whether text contains any letter.
// Used to tell already-localized replies apart from English fallbacks.
func ContainsScript(text string, lang Language) bool {
	table, ok := scripts[lang]
	if !ok {
		for _, r := range text {
			if unicode.IsLetter(r) {
				return true
			}
		}
		return false
	}
	for _, r := range text {
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}
