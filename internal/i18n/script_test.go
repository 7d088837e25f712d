package i18n

import "testing"

func TestContainsScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang Language
		want bool
	}{
		{"Hindi text", "फीस कितनी है", Hindi, true},
		{"English text checked as Hindi", "Select your program", Hindi, false},
		{"Mixed text checked as Hindi", "Semester फीस", Hindi, true},
		{"Marathi shares Devanagari", "परिपत्रक", Marathi, true},
		{"Tamil text", "கட்டணம்", Tamil, true},
		{"Tamil text checked as Telugu", "கட்டணம்", Telugu, false},
		{"Telugu text", "ఫీజు", Telugu, true},
		{"Bengali text", "ফি", Bengali, true},
		{"English letters as English", "hello", English, true},
		{"Digits only as English", "123", English, false},
		{"Empty string", "", Hindi, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsScript(tt.text, tt.lang); got != tt.want {
				t.Errorf("ContainsScript(%q, %s) = %v, want %v", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}
