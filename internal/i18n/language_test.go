package i18n

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Language
	}{
		{"en", English},
		{"hi", Hindi},
		{"ta", Tamil},
		{"te", Telugu},
		{"bn", Bengali},
		{"mr", Marathi},
		{"", English},
		{"fr", English},
		{"EN", English}, // codes are case-sensitive, unknown falls back
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tt.input); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextGet(t *testing.T) {
	t.Parallel()

	text := Text{EN: "Computer Science", HI: "कंप्यूटर विज्ञान"}

	if got := text.Get(Hindi); got != "कंप्यूटर विज्ञान" {
		t.Errorf("Get(Hindi) = %q", got)
	}
	if got := text.Get(English); got != "Computer Science" {
		t.Errorf("Get(English) = %q", got)
	}
	// Missing localization falls back to English
	if got := text.Get(Tamil); got != "Computer Science" {
		t.Errorf("Get(Tamil) = %q, want English fallback", got)
	}
}

func TestTextValues(t *testing.T) {
	t.Parallel()

	text := Text{EN: "Mechanical", HI: "मैकेनिकल", TE: "మెకానికల్"}
	values := text.Values()
	if len(values) != 3 {
		t.Fatalf("Values() returned %d entries, want 3", len(values))
	}
	if values[0] != "Mechanical" {
		t.Errorf("Values()[0] = %q, want English first", values[0])
	}
}
