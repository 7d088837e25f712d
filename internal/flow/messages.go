package flow

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
	"github.com/adityaraj161616/campus-chatbot-go/internal/storage"
)

// catalog holds every fixed UI string in all six languages. Messages are
// pre-localized here so guided flows answer instantly without a translation
// round-trip; only dynamic content (timetable cells) goes through the
// translation middleware.
var catalog = map[string]i18n.Text{
	"selectProgram": {
		EN: "Please select your program:",
		HI: "कृपया अपना कार्यक्रम चुनें:",
		TA: "தயவுசெய்து உங்கள் திட்டத்தை தேர்ந்தெடுக்கவும்:",
		TE: "దయచేసి మీ ప్రోగ్రామ్‌ను ఎంచుకోండి:",
		BN: "অনুগ্রহ করে আপনার প্রোগ্রাম নির্বাচন করুন:",
		MR: "कृपया तुमचा कार्यक्रम निवडा:",
	},
	"selectBranch": {
		EN: "Please select your branch:",
		HI: "कृपया अपनी शाखा चुनें:",
		TA: "தயவுசெய்து உங்கள் கிளையை தேர்ந்தெடுக்கவும்:",
		TE: "దయచేసి మీ శాఖను ఎంచుకోండి:",
		BN: "অনুগ্রহ করে আপনার শাখা নির্বাচন করুন:",
		MR: "कृपया तुमची शाखा निवडा:",
	},
	"selectProgramTimetable": {
		EN: "Please select your program to view the class timetable:",
		HI: "कक्षा समय सारणी देखने के लिए कृपया अपना कार्यक्रम चुनें:",
		TA: "வகுப்பு நேர அட்டவணையைப் பார்க்க தயவுசெய்து உங்கள் திட்டத்தை தேர்ந்தெடுக்கவும்:",
		TE: "క్లాస్ టైమ్‌టేబుల్‌ను చూడటానికి దయచేసి మీ ప్రోగ్రామ్‌ను ఎంచుకోండి:",
		BN: "ক্লাস টাইমটেবিল দেখতে অনুগ্রহ করে আপনার প্রোগ্রাম নির্বাচন করুন:",
		MR: "वर्ग वेळापत्रक पाहण्यासाठी कृपया तुमचा कार्यक्रम निवडा:",
	},
	"selectSemester": {
		EN: "Please select the semester:",
		HI: "कृपया सेमेस्टर चुनें:",
		TA: "தயவுசெய்து செமஸ்டரைத் தேர்ந்தெடுக்கவும்:",
		TE: "దయచేసి సెమిస్టర్‌ను ఎంచుకోండి:",
		BN: "অনুগ্রহ করে সেমিস্টার নির্বাচন করুন:",
		MR: "कृपया सेमिस्टर निवडा:",
	},
	"semester": {
		EN: "Semester",
		HI: "सेमेस्टर",
		TA: "செமஸ்டர்",
		TE: "సెమిస్టర్",
		BN: "সেমিস্টার",
		MR: "सेमिस्टर",
	},
	"invalidSelection": {
		EN: "Invalid selection. Please try again.",
		HI: "अमान्य चयन। कृपया पुनः प्रयास करें।",
		TA: "தவறான தேர்வு. தயவுசெய்து மீண்டும் முயற்சிக்கவும்.",
		TE: "చెల్లని ఎంపిక. దయచేసి మళ్లీ ప్రయత్నించండి.",
		BN: "অবৈধ নির্বাচন। অনুগ্রহ করে আবার চেষ্টা করুন।",
		MR: "अवैध निवड. कृपया पुन्हा प्रयत्न करा.",
	},
	"noTimetablePublished": {
		EN: "The timetable for this program and semester has not been published yet. Please check back later or contact the administration office.",
		HI: "इस कार्यक्रम और सेमेस्टर की समय सारणी अभी प्रकाशित नहीं हुई है। कृपया बाद में जांचें या प्रशासन कार्यालय से संपर्क करें।",
		TA: "இந்த திட்டம் மற்றும் செமஸ்டருக்கான நேர அட்டவணை இன்னும் வெளியிடப்படவில்லை. பின்னர் சரிபார்க்கவும் அல்லது நிர்வாக அலுவலகத்தை தொடர்பு கொள்ளவும்.",
		TE: "ఈ ప్రోగ్రామ్ మరియు సెమిస్టర్ కోసం టైమ్‌టేబుల్ ఇంకా ప్రచురించబడలేదు. దయచేసి తర్వాత తనిఖీ చేయండి లేదా అడ్మినిస్ట్రేషన్ ఆఫీస్‌ని సంప్రదించండి.",
		BN: "এই প্রোগ্রাম এবং সেমিস্টারের জন্য সময়সূচী এখনও প্রকাশিত হয়নি। অনুগ্রহ করে পরে চেক করুন বা প্রশাসন অফিসে যোগাযোগ করুন।",
		MR: "या कार्यक्रम आणि सेमिस्टरसाठी वेळापत्रक अद्याप प्रकाशित झालेले नाही. कृपया नंतर तपासा किंवा प्रशासन कार्यालयाशी संपर्क साधा.",
	},
	"classTimetableResponse": {
		EN: "📚 Class Timetable for {program} - Semester {semester}",
		HI: "📚 {program} - सेमेस्टर {semester} के लिए कक्षा समय सारणी",
		TA: "📚 {program} - செமஸ்டர் {semester} க்கான வகுப்பு நேர அட்டவணை",
		TE: "📚 {program} - సెమిస్టర్ {semester} కోసం క్లాస్ టైమ్‌టేబుల్",
		BN: "📚 {program} - সেমিস্টার {semester}-এর জন্য ক্লাস টাইমটেবিল",
		MR: "📚 {program} - सेमिस्टर {semester} साठी वर्ग वेळापत्रक",
	},
	"noScholarships": {
		EN: "No scholarships available at the moment.",
		HI: "इस समय कोई छात्रवृत्ति उपलब्ध नहीं है।",
		TA: "தற்போது எந்த உதவித்தொகையும் இல்லை.",
		TE: "ప్రస్తుతం స్కాలర్‌షిప్‌లు అందుబాటులో లేవు.",
		BN: "বর্তমানে কোন বৃত্তি উপলব্ধ নেই।",
		MR: "सध्या कोणतीही शिष्यवृत्ती उपलब्ध नाही.",
	},
	"noCirculars": {
		EN: "No circulars available at the moment.",
		HI: "इस समय कोई परिपत्र उपलब्ध नहीं है।",
		TA: "தற்போது எந்த சுற்றறிக்கையும் இல்லை.",
		TE: "ప్రస్తుతం సర్కులర్లు అందుబాటులో లేవు.",
		BN: "বর্তমানে কোন সার্কুলার উপলব্ধ নেই।",
		MR: "सध्या कोणतेही परिपत्रक उपलब्ध नाही.",
	},
	"availableScholarships": {
		EN: "The following scholarships are available:",
		HI: "निम्नलिखित छात्रवृत्तियां उपलब्ध हैं:",
		TA: "பின்வரும் உதவித்தொகைகள் கிடைக்கின்றன:",
		TE: "ఈ క్రింది స్కాలర్‌షిప్‌లు అందుబాటులో ఉన్నాయి:",
		BN: "নিম্নলিখিত বৃত্তিগুলি উপলব্ধ:",
		MR: "खाली शिष्यवृत्त्या उपलब्ध आहेत:",
	},
	"selectScholarshipForDetails": {
		EN: "Please select a scholarship to learn more about it.",
		HI: "कृपया इसके बारे में अधिक जानने के लिए एक छात्रवृत्ति चुनें।",
		TA: "மேலும் அறிய தயவுசெய்து ஒரு உதவித்தொகையைத் தேர்ந்தெடுக்கவும்:",
		TE: "దాని గురించి మరింత తెలుసుకోవడానికి దయచేసి స్కాలర్‌షిప్‌ను ఎంచుకోండి.",
		BN: "এটি সম্পর্কে আরও জানতে অনুগ্রহ করে একটি বৃত্তি নির্বাচন করুন।",
		MR: "याबद्दल अधिक जाणून घेण्यासाठी कृपया शिष्यवृत्ती निवडा.",
	},
	"scholarshipInfo": {
		EN: "Here is information about",
		HI: "यहाँ इसके बारे में जानकारी है",
		TA: "இதோ தகவல்",
		TE: "ఇక్కడ సమాచారం ఉంది",
		BN: "এখানে তথ্য আছে",
		MR: "येथे माहिती आहे",
	},
	"askEligibilityOrApplication": {
		EN: "Would you like to know the eligibility criteria or application process?",
		HI: "क्या आप पात्रता मानदंड या आवेदन प्रक्रिया जानना चाहेंगे?",
		TA: "தகுதி விதிகள் அல்லது விண்ணப்ப செயல்முறையை அறிய விரும்புகிறீர்களா?",
		TE: "మీరు అర్హత ప్రమాణాలు లేదా దరఖాస్తు ప్రక్రియ తెలుసుకోవాలనుకుంటున్నారా?",
		BN: "আপনি কি যোগ্যতার মানদণ্ড বা আবেদন প্রক্রিয়া জানতে চান?",
		MR: "तुम्हाला पात्रता निकष किंवा अर्ज प्रक्रिया जाणून घ्यायची आहे का?",
	},
	"eligibilityCriteria": {
		EN: "Eligibility Criteria",
		HI: "पात्रता मानदंड",
		TA: "தகுதி விதிகள்",
		TE: "అర్హత ప్రమాణాలు",
		BN: "যোগ্যতার মানদণ্ড",
		MR: "पात्रता निकष",
	},
	"applicationProcess": {
		EN: "Application Process",
		HI: "आवेदन प्रक्रिया",
		TA: "விண்ணப்ப செயல்முறை",
		TE: "దరఖాస్తు ప్రక్రియ",
		BN: "আবেদন প্রক্রিয়া",
		MR: "अर्ज प्रक्रिया",
	},
	"anythingElse": {
		EN: "Would you like to know anything else?",
		HI: "क्या आप कुछ और जानना चाहेंगे?",
		TA: "வேறு ஏதாவது தெரிந்து கொள்ள விரும்புகிறீர்களா?",
		TE: "మీరు మరేదైనా తెలుసుకోవాలనుకుంటున్నారా?",
		BN: "আপনি কি অন্য কিছু জানতে চান?",
		MR: "तुम्हाला काही अधिक माहिती हवी आहे का?",
	},
	"feesResponse": {
		EN: "The semester fee for {program} - {branch} is {fee} per semester.",
		HI: "{program} - {branch} का सेमेस्टर शुल्क प्रति सेमेस्टर {fee} है।",
		TA: "{program} - {branch}க்கான செமஸ்டர் கட்டணம் ஒரு செமஸ்டருக்கு {fee} ஆகும்.",
		TE: "{program} - {branch} కోసం సెమిస్టర్ ఫీజు ప్రతి సెమిస్టర్‌కు {fee}.",
		BN: "{program} - {branch}-এর জন্য সেমিস্টার ফি প্রতি সেমিস্টার {fee}।",
		MR: "{program} - {branch} साठी सेमिस्टर फी प्रति सेमिस्टर {fee} आहे.",
	},
	"latestCirculars": {
		EN: "Latest Circulars:",
		HI: "नवीनतम परिपत्र:",
		TA: "சமீபத்திய சுற்றறிக்கைகள்:",
		TE: "తాజా సర్క్యులర్లు:",
		BN: "সর্বশেষ সার্কুলার:",
		MR: "नवीनतम परिपत्रके:",
	},
	"fallback": {
		EN: "I couldn't understand your request. Please try asking about fees, timetables, scholarships, or circulars.",
		HI: "मैं आपके अनुरोध को समझ नहीं सका। कृपया शुल्क, समय सारणी, छात्रवृत्ति या परिपत्र के बारे में पूछने का प्रयास करें।",
		TA: "உங்கள் கோரிக்கையை என்னால் புரிந்து கொள்ள முடியவில்லை. கட்டணங்கள், நேர அட்டவணைகள், உதவித்தொகைகள் அல்லது சுற்றறிக்கைகள் பற்றி கேட்க முயற்சிக்கவும்.",
		TE: "మీ అభ్యర్థనను నేను అర్థం చేసుకోలేకపోయాను. దయచేసి ఫీజులు, టైమ్‌టేబుల్స్, స్కాలర్‌షిప్‌లు లేదా సర్కులర్ల గురించి అడగడానికి ప్రయత్నించండి.",
		BN: "আমি আপনার অনুরোধ বুঝতে পারিনি। অনুগ্রহ করে ফি, সময়সূচী, বৃত্তি বা সার্কুলার সম্পর্কে জিজ্ঞাসা করার চেষ্টা করুন।",
		MR: "मला तुमची विनंती समजू शकली नाही. कृपया फी, वेळापत्रक, शिष्यवृत्ती किंवा परिपत्रकांबद्दल विचारण्याचा प्रयत्न करा.",
	},
}

// Translation returns the catalog string for key in the given language,
// falling back to English and then to the key itself.
func Translation(key string, lang i18n.Language) string {
	text, ok := catalog[key]
	if !ok {
		return key
	}
	return text.Get(lang)
}

// Fallback returns the localized did-not-understand message.
func Fallback(lang i18n.Language) string {
	return Translation("fallback", lang)
}

// dayNames are the short weekday forms used as timetable section headings.
var dayNames = map[string]i18n.Text{
	"Monday":    {EN: "Monday", HI: "सोमवार", TA: "திங்கள்", TE: "సోమవారం", BN: "সোমবার", MR: "सोमवार"},
	"Tuesday":   {EN: "Tuesday", HI: "मंगलवार", TA: "செவ்வாய்", TE: "మంగళవారం", BN: "মঙ্গলবার", MR: "मंगळवार"},
	"Wednesday": {EN: "Wednesday", HI: "बुधवार", TA: "புதன்", TE: "బుధవారం", BN: "বুধবার", MR: "बुधवार"},
	"Thursday":  {EN: "Thursday", HI: "गुरुवार", TA: "வியாழன்", TE: "గురువారం", BN: "বৃহস্পতিবার", MR: "गुरुवार"},
	"Friday":    {EN: "Friday", HI: "शुक्रवार", TA: "வெள்ளி", TE: "శుక్రవారం", BN: "শুক্রবার", MR: "शुक्रवार"},
	"Saturday":  {EN: "Saturday", HI: "शनिवार", TA: "சனி", TE: "శనివారం", BN: "শনিবার", MR: "शनिवार"},
}

// feePrinter renders amounts with Indian digit grouping (₹1,25,000).
var feePrinter = message.NewPrinter(language.MustParse("en-IN"))

func formatFee(amount int) string {
	return feePrinter.Sprintf("₹%v", number.Decimal(amount))
}

func feesResponseMessage(lang i18n.Language, program storage.Program, branch storage.Branch) string {
	msg := Translation("feesResponse", lang)
	msg = strings.ReplaceAll(msg, "{program}", program.Name.Get(lang))
	msg = strings.ReplaceAll(msg, "{branch}", branch.Name.Get(lang))
	msg = strings.ReplaceAll(msg, "{fee}", formatFee(branch.SemesterFee))
	return msg
}

// classTimetableMessage renders the weekly schedule: Monday through Friday
// first, Saturday appended last, empty days skipped.
func classTimetableMessage(lang i18n.Language, programName string, semester int, week storage.Week) string {
	intro := Translation("classTimetableResponse", lang)
	intro = strings.ReplaceAll(intro, "{program}", programName)
	intro = strings.ReplaceAll(intro, "{semester}", fmt.Sprintf("%d", semester))

	var b strings.Builder
	b.WriteString(intro)
	for _, day := range week.Ordered() {
		b.WriteString("\n\n📅 **")
		b.WriteString(dayNames[day.Day].Get(lang))
		b.WriteString("**\n")
		for _, entry := range day.Entries {
			b.WriteString("• ")
			b.WriteString(entry.Time)
			b.WriteString(" - ")
			b.WriteString(entry.Subject)
			if entry.Faculty != "" {
				b.WriteString(" (")
				b.WriteString(entry.Faculty)
				b.WriteString(")")
			}
			if entry.Venue != "" {
				b.WriteString(" [")
				b.WriteString(entry.Venue)
				b.WriteString("]")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func allScholarshipsMessage(lang i18n.Language, scholarships []storage.Scholarship) string {
	items := make([]string, len(scholarships))
	for i, s := range scholarships {
		items[i] = "• " + s.Name.Get(lang) + "\n  " + s.Description.Get(lang)
	}
	return Translation("availableScholarships", lang) + "\n\n" +
		strings.Join(items, "\n\n") + "\n\n" +
		Translation("selectScholarshipForDetails", lang)
}

func singleScholarshipMessage(lang i18n.Language, s storage.Scholarship) string {
	return Translation("scholarshipInfo", lang) + ": " + s.Name.Get(lang) + "\n\n" +
		s.Description.Get(lang) + "\n\n" +
		Translation("askEligibilityOrApplication", lang)
}

func scholarshipEligibilityMessage(lang i18n.Language, s storage.Scholarship) string {
	return Translation("eligibilityCriteria", lang) + " - " + s.Name.Get(lang) + ":\n\n" +
		s.Eligibility.Get(lang)
}

func scholarshipApplicationMessage(lang i18n.Language, s storage.Scholarship) string {
	return Translation("applicationProcess", lang) + " - " + s.Name.Get(lang) + ":\n\n" +
		s.ApplicationProcess.Get(lang)
}

func circularsMessage(lang i18n.Language, circulars []storage.Circular) string {
	items := make([]string, len(circulars))
	for i, c := range circulars {
		items[i] = fmt.Sprintf("%d. %s\n   %s", i+1, c.Title.Get(lang), c.Content.Get(lang))
	}
	return Translation("latestCirculars", lang) + "\n\n" + strings.Join(items, "\n\n")
}
