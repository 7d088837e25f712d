package intent

import "github.com/adityaraj161616/campus-chatbot-go/internal/i18n"

// keywords holds the trigger vocabulary per intent per language.
// Matching is substring, case-insensitive, against the raw message, so
// detection works even when translation of the input fails.
var keywords = map[Intent]map[i18n.Language][]string{
	SemesterFees: {
		i18n.English: {"semester fee", "tuition", "course fee", "program fee", "fee", "how much", "cost", "fees"},
		i18n.Hindi:   {"सेमेस्टर फीस", "शुल्क", "फीस", "कितना", "ट्यूशन", "फीस क्या है", "कितनी फीस", "फीस कितनी"},
		i18n.Tamil:   {"கட்டணம்", "செமஸ்டர் கட்டணம்", "பணம்", "எவ்வளவு"},
		i18n.Telugu:  {"ఫీజు", "సెమిస్టర్ ఫీజు", "ఎంత", "ఖర్చు"},
		i18n.Bengali: {"ফি", "সেমিস্টার ফি", "কত", "খরচ"},
		i18n.Marathi: {"फी", "सेमिस्टर फी", "किती", "शुल्क"},
	},
	ExamTimetable: {
		i18n.English: {"exam timetable", "exam schedule", "timetable", "schedule", "exam date", "when are exams", "exam"},
		i18n.Hindi:   {"परीक्षा", "समय सारणी", "टाइमटेबल", "परीक्षा कब", "एग्जाम", "परीक्षा की तारीख"},
		i18n.Tamil:   {"தேர்வு", "நேர அட்டவணை", "தேர்வு அட்டவணை", "எப்போது"},
		i18n.Telugu:  {"పరీక్ష", "టైమ్‌టేబుల్", "షెడ్యూల్", "ఎప్పుడు"},
		i18n.Bengali: {"পরীক্ষা", "সময়সূচী", "টাইমটেবিল", "কবে"},
		i18n.Marathi: {"परीक्षा", "वेळापत्रक", "टाइमटेबल", "कधी"},
	},
	Circulars: {
		i18n.English: {"circular", "notice", "announcement", "notification", "latest circular"},
		i18n.Hindi:   {"परिपत्र", "नोटिस", "घोषणा", "सूचना", "सर्कुलर"},
		i18n.Tamil:   {"சுற்றறிக்கை", "அறிவிப்பு", "நோட்டீஸ்"},
		i18n.Telugu:  {"సర్కులర్", "నోటీసు", "ప్రకటన"},
		i18n.Bengali: {"সার্কুলার", "নোটিশ", "ঘোষণা"},
		i18n.Marathi: {"परिपत्रक", "नोटीस", "घोषणा"},
	},
	Scholarships: {
		i18n.English: {
			"scholarship",
			"available scholarship",
			"list scholarship",
			"financial aid",
			"merit-cum-means",
			"post-matric",
			"post matric",
			"minority scholarship",
			"sc/st scholarship",
		},
		i18n.Hindi:   {"छात्रवृत्ति", "स्कॉलरशिप", "वित्तीय सहायता", "मेरिट", "पोस्ट मैट्रिक"},
		i18n.Tamil:   {"உதவித்தொகை", "ஸ்காலர்ஷிப்", "நிதி உதவி"},
		i18n.Telugu:  {"స్కాలర్‌షిప్", "ఉపకార వేతనం", "ఆర్థిక సహాయం"},
		i18n.Bengali: {"বৃত্তি", "স্কলারশিপ", "আর্থিক সাহায্য"},
		i18n.Marathi: {"शिष्यवृत्ती", "स्कॉलरशिप", "आर्थिक मदत"},
	},
}
