package i18n

// Text holds one string per supported language. Campus records store their
// names and descriptions as Text so every flow can answer in the session
// language without a translation round-trip.
type Text struct {
	EN string `json:"en"`
	HI string `json:"hi"`
	TA string `json:"ta"`
	TE string `json:"te"`
	BN string `json:"bn"`
	MR string `json:"mr"`
}

// Get returns the value for the given language, falling back to English
// when the localized value is empty.
func (t Text) Get(l Language) string {
	var s string
	switch l {
	case Hindi:
		s = t.HI
	case Tamil:
		s = t.TA
	case Telugu:
		s = t.TE
	case Bengali:
		s = t.BN
	case Marathi:
		s = t.MR
	default:
		s = t.EN
	}
	if s == "" {
		return t.EN
	}
	return s
}

// Values returns all non-empty localized values, English first.
// Used for name matching against free-form user input.
func (t Text) Values() []string {
	out := make([]string, 0, 6)
	for _, s := range []string{t.EN, t.HI, t.TA, t.TE, t.BN, t.MR} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
