// Package i18n provides language identifiers and localized text handling
// for the six UI languages supported by the chatbot.
package i18n

// Language is a supported UI language code.
type Language string

const (
	// English is the canonical content language; all campus data is stored in it.
	English Language = "en"
	// Hindi (Devanagari script).
	Hindi Language = "hi"
	// Tamil.
	Tamil Language = "ta"
	// Telugu.
	Telugu Language = "te"
	// Bengali.
	Bengali Language = "bn"
	// Marathi (Devanagari script).
	Marathi Language = "mr"
)

// Supported lists all supported languages in display order.
var Supported = []Language{English, Hindi, Tamil, Telugu, Bengali, Marathi}

// names maps language codes to the prompt-friendly description used when
// asking an LLM to translate into that language.
var names = map[Language]string{
	English: "English",
	Hindi:   "Hindi (Devanagari script, Indian academic context)",
	Tamil:   "Tamil (Indian academic context)",
	Telugu:  "Telugu (Indian academic context)",
	Bengali: "Bengali (Indian academic context)",
	Marathi: "Marathi (Devanagari script, Indian academic context)",
}

// IsSupported returns true if l is one of the supported language codes.
func IsSupported(l Language) bool {
	_, ok := names[l]
	return ok
}

// Parse normalizes a language code, falling back to English for anything
// unknown so a bad client value never breaks a turn.
func Parse(code string) Language {
	l := Language(code)
	if IsSupported(l) {
		return l
	}
	return English
}

// PromptName returns the description used in translation prompts.
func (l Language) PromptName() string {
	if name, ok := names[l]; ok {
		return name
	}
	return names[English]
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}
