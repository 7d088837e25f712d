// Package intent detects which guided flow a chat message asks for.
// Detection is keyword-driven and works on the raw message in any supported
// language, so a failed translation never blocks flow routing.
package intent

import (
	"strings"

	"github.com/adityaraj161616/campus-chatbot-go/internal/stringutil"
)

// Intent identifies a guided conversation flow.
type Intent string

const (
	SemesterFees  Intent = "SEMESTER_FEES"
	ExamTimetable Intent = "EXAM_TIMETABLE"
	Scholarships  Intent = "SCHOLARSHIPS"
	Circulars     Intent = "CIRCULARS"
)

// priority orders intents for detection. Fees wins over timetable, which
// wins over circulars, with scholarships checked last.
var priority = []Intent{SemesterFees, ExamTimetable, Circulars, Scholarships}

// categoryHints maps retrieval category labels to intents.
var categoryHints = map[string]Intent{
	"fees":         SemesterFees,
	"timetable":    ExamTimetable,
	"circulars":    Circulars,
	"scholarships": Scholarships,
}

// Match holds a successful detection with the keyword that triggered it,
// for logging.
type Match struct {
	Intent  Intent
	Keyword string
}

// Detect returns the flow intent for a message, or false when nothing
// matches. It checks multilingual keyword tables in priority order first,
// then falls back to English phrase patterns and the category hint.
func Detect(query, categoryHint string) (Match, bool) {
	queryLower := stringutil.Normalize(query)

	for _, in := range priority {
		for _, languageKeywords := range keywords[in] {
			for _, keyword := range languageKeywords {
				if strings.Contains(queryLower, strings.ToLower(keyword)) {
					return Match{Intent: in, Keyword: keyword}, true
				}
			}
		}
	}

	return detectEnglishPatterns(queryLower, categoryHint)
}

// detectEnglishPatterns applies guarded English phrase checks in the same
// priority order. Guards keep "scholarship fee waiver" style messages from
// landing in the fees flow.
func detectEnglishPatterns(queryLower, categoryHint string) (Match, bool) {
	contains := func(s string) bool { return strings.Contains(queryLower, s) }

	if categoryHints[categoryHint] == SemesterFees ||
		contains("semester fee") || contains("tuition") ||
		contains("course fee") || contains("program fee") ||
		(contains("fee") && !contains("scholarship")) ||
		(contains("how much") && (contains("fee") || contains("cost"))) {
		return Match{Intent: SemesterFees}, true
	}

	if categoryHints[categoryHint] == ExamTimetable ||
		contains("exam timetable") || contains("exam schedule") ||
		contains("timetable") || contains("schedule") ||
		contains("exam date") || contains("when are exams") ||
		(contains("show") && contains("exam")) {
		return Match{Intent: ExamTimetable}, true
	}

	if categoryHints[categoryHint] == Circulars ||
		contains("circular") || contains("notice") ||
		contains("announcement") || contains("notification") {
		return Match{Intent: Circulars}, true
	}

	if categoryHints[categoryHint] == Scholarships ||
		contains("scholarship") || contains("financial aid") ||
		contains("merit-cum-means") || contains("post-matric") ||
		contains("post matric") {
		return Match{Intent: Scholarships}, true
	}

	return Match{}, false
}
