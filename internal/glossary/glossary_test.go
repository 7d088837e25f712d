package glossary

import (
	"strings"
	"testing"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		lang i18n.Language
		want string
	}{
		{
			name: "english passthrough",
			text: "Class Timetable",
			lang: i18n.English,
			want: "Class Timetable",
		},
		{
			name: "single term to hindi",
			text: "Monday",
			lang: i18n.Hindi,
			want: "सोमवार",
		},
		{
			name: "compound term wins over prefix",
			text: "C Programming Lab",
			lang: i18n.Hindi,
			want: "सी प्रोग्रामिंग प्रयोगशाला",
		},
		{
			name: "case insensitive match",
			text: "monday",
			lang: i18n.Telugu,
			want: "సోమవారం",
		},
		{
			name: "preserves numbers and emojis",
			text: "📅 Monday 9:00",
			lang: i18n.Hindi,
			want: "📅 सोमवार 9:00",
		},
		{
			name: "no partial word match",
			text: "Syllabus",
			lang: i18n.Hindi,
			want: "Syllabus",
		},
		{
			name: "empty text unchanged",
			text: "   ",
			lang: i18n.Tamil,
			want: "   ",
		},
		{
			name: "multiple terms in one line",
			text: "Semester Fees and Latest Circulars",
			lang: i18n.Marathi,
			want: "सेमेस्टर फी and नवीनतम परिपत्रके",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Translate(tt.text, tt.lang); got != tt.want {
				t.Errorf("Translate(%q, %s) = %q, want %q", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}

func TestTranslate_UnknownTermsUntouched(t *testing.T) {
	t.Parallel()

	got := Translate("Quantum Computing on Monday", i18n.Hindi)
	if !strings.Contains(got, "Quantum Computing") {
		t.Errorf("unknown term was altered: %q", got)
	}
	if !strings.Contains(got, "सोमवार") {
		t.Errorf("known term was not translated: %q", got)
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	t.Parallel()

	once := Translate("Exam Timetable for Monday", i18n.Bengali)
	twice := Translate(once, i18n.Bengali)
	if once != twice {
		t.Errorf("second pass changed output: %q -> %q", once, twice)
	}
}

func TestIsValidTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		original   string
		translated string
		lang       i18n.Language
		want       bool
	}{
		{"valid hindi", "Please select your program:", "कृपया अपना कार्यक्रम चुनें:", i18n.Hindi, true},
		{"empty result", "Please select your program:", "  ", i18n.Hindi, false},
		{"unchanged non-english", "Please select your program:", "Please select your program:", i18n.Hindi, false},
		{"unchanged english ok", "Hello", "Hello", i18n.English, true},
		{"too short", "The semester fee for BTECH - CSE is Rs 45,000 per semester.", "x", i18n.Hindi, false},
		{"too long", "Hi", strings.Repeat("अ", 10), i18n.Hindi, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidTranslation(tt.original, tt.translated, tt.lang); got != tt.want {
				t.Errorf("IsValidTranslation(%q, %q, %s) = %v, want %v", tt.original, tt.translated, tt.lang, got, tt.want)
			}
		})
	}
}
