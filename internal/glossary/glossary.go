// Package glossary provides dictionary-based fallback translation for
// academic vocabulary. It replaces known English terms with their localized
// forms while leaving numbers, emojis, and formatting untouched. Used when
// the AI translator fails or is unavailable.
package glossary

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

type entry struct {
	term    string
	pattern *regexp.Regexp
	text    i18n.Text
}

// entries holds glossary terms sorted longest first, so compound terms
// like "C Programming Lab" are replaced before "C Programming".
var entries = buildEntries()

func buildEntries() []entry {
	out := make([]entry, 0, len(terms))
	for term, text := range terms {
		// Whole-word match, case-insensitive. Word boundaries keep
		// "Lab" from matching inside "Syllabus".
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		out = append(out, entry{term: term, pattern: pattern, text: text})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].term) != len(out[j].term) {
			return len(out[i].term) > len(out[j].term)
		}
		return out[i].term < out[j].term
	})
	return out
}

// Translate replaces known English terms in text with their localized
// forms for the target language. English input is returned unchanged.
func Translate(text string, lang i18n.Language) string {
	if lang == i18n.English {
		return text
	}
	if strings.TrimSpace(text) == "" {
		return text
	}

	result := text
	for _, e := range entries {
		localized := e.text.Get(lang)
		if localized == "" || localized == e.term {
			continue
		}
		result = e.pattern.ReplaceAllString(result, localized)
	}
	return result
}

// IsValidTranslation applies cheap heuristics to reject junk output from
// a translator: empty results, untranslated non-English results, and
// results wildly shorter or longer than the original.
func IsValidTranslation(original, translated string, lang i18n.Language) bool {
	if strings.TrimSpace(translated) == "" {
		return false
	}
	if translated == original && lang != i18n.English {
		return false
	}
	// Rune counts, not bytes. Indic scripts encode to 3 bytes per rune
	// and would trip a byte-length ratio.
	origLen := float64(utf8.RuneCountInString(original))
	transLen := float64(utf8.RuneCountInString(translated))
	if transLen < origLen*0.3 {
		return false
	}
	if transLen > origLen*3 {
		return false
	}
	return true
}
