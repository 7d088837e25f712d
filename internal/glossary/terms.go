package glossary

import "github.com/adityaraj161616/campus-chatbot-go/internal/i18n"

// terms maps English academic vocabulary to its localized forms.
// Keys are matched as whole words, longest key first, so compound
// terms like "C Programming Lab" win over "C Programming".
var terms = map[string]i18n.Text{
	// Days of week
	"Monday":    {EN: "Monday", HI: "सोमवार", TA: "திங்கட்கிழமை", TE: "సోమవారం", BN: "সোমবার", MR: "सोमवार"},
	"Tuesday":   {EN: "Tuesday", HI: "मंगलवार", TA: "செவ்வாய்கிழமை", TE: "మంగళవారం", BN: "মঙ্গলবার", MR: "मंगळवार"},
	"Wednesday": {EN: "Wednesday", HI: "बुधवार", TA: "புதன்கிழமை", TE: "బుధవారం", BN: "বুধবার", MR: "बुधवार"},
	"Thursday":  {EN: "Thursday", HI: "गुरुवार", TA: "வியாழக்கிழமை", TE: "గురువారం", BN: "বৃহস্পতিবার", MR: "गुरुवार"},
	"Friday":    {EN: "Friday", HI: "शुक्रवार", TA: "வெள்ளிக்கிழமை", TE: "శుక్రవారం", BN: "শুক্রবার", MR: "शुक्रवार"},
	"Saturday":  {EN: "Saturday", HI: "शनिवार", TA: "சனிக்கிழமை", TE: "శనివారం", BN: "শনিবার", MR: "शनिवार"},
	"Sunday":    {EN: "Sunday", HI: "रविवार", TA: "ஞாயிற்றுக்கிழமை", TE: "ఆదివారం", BN: "রবিবার", MR: "रविवार"},

	// Subjects
	"Mathematics-I":         {EN: "Mathematics-I", HI: "गणित-I", TA: "கணிதம்-I", TE: "గణితం-I", BN: "গণিত-I", MR: "गणित-I"},
	"Mathematics-II":        {EN: "Mathematics-II", HI: "गणित-II", TA: "கணிதம்-II", TE: "గణితం-II", BN: "গণিত-II", MR: "गणित-II"},
	"Mathematics-III":       {EN: "Mathematics-III", HI: "गणित-III", TA: "கணிதம்-III", TE: "గణితం-III", BN: "গণিত-III", MR: "गणित-III"},
	"Basic Mechanical Engg": {EN: "Basic Mechanical Engg", HI: "बेसिक मैकेनिकल इंजीनियरिंग", TA: "அடிப்படை இயந்திர பொறியியல்", TE: "ప్రాథమిక యాంత్రిక ఇంజనీరింగ్", BN: "মৌলিক যান্ত্রিক প্রকৌশল", MR: "मूलभूत यांत्रिक अभियांत्रिकी"},
	"Basic Electrical Engg": {EN: "Basic Electrical Engg", HI: "बेसिक विद्युत इंजीनियरिंग", TA: "அடிப்படை மின்சாரம் பொறியியல்", TE: "ప్రాథమిక ఎలక్ట్రికల్ ఇంజనీరింగ్", BN: "মৌলিক বৈদ্যুতিক প্রকৌশল", MR: "मूलभूत विद्युत अभियांत्रिकी"},
	"Engineering Graphics":  {EN: "Engineering Graphics", HI: "इंजीनियरिंग ड्राइंग", TA: "பொறியியல் வரைகலை", TE: "ఇంజనీరింగ్ గ్రాఫిక్‌లు", BN: "প্রকৌশল গ্রাফিক্স", MR: "अभियांत्रिकी ड्राइंग"},
	"C Programming":         {EN: "C Programming", HI: "सी प्रोग्रामिंग", TA: "சி நிரலாக்கம்", TE: "సి ప్రోగ్రామింగ్", BN: "সি প্রোগ্রামিং", MR: "सी प्रोग्रामिंग"},
	"Data Structures":       {EN: "Data Structures", HI: "डेटा संरचनाएं", TA: "தரவு கட்டமைப்புகள்", TE: "డేటా స్ట్రక్చర్‌లు", BN: "ডেটা স্ট্রাকচার", MR: "डेटा संरचना"},
	"Digital Logic Design":  {EN: "Digital Logic Design", HI: "डिजिटल लॉजिक डिजाइन", TA: "டிஜிட்டல் தர்க்கம் வடிவமைப்பு", TE: "డిజిటల్ లాజిక్ డిజైన్", BN: "ডিজিটাল লজিক ডিজাইন", MR: "डिजिटल लॉजिक डिजाइन"},
	"Economics":             {EN: "Economics", HI: "अर्थशास्त्र", TA: "பொருளாதாரம்", TE: "ఆర్థికశాస్త్రం", BN: "অর্থনীতি", MR: "अर्थशास्त्र"},
	"Physics":               {EN: "Physics", HI: "भौतिकी", TA: "இயற்பியல்", TE: "భౌతికశాస్త్రం", BN: "পদার্থবিজ্ঞান", MR: "भौतिकशास्त्र"},
	"Chemistry":             {EN: "Chemistry", HI: "रसायन विज्ञान", TA: "வேதியியல்", TE: "రసాయన శాస్త్రం", BN: "রসায়ন বিজ্ঞান", MR: "रसायन शास्त्र"},
	"Chemistry-I":           {EN: "Chemistry-I", HI: "रसायन विज्ञान-I", TA: "வேதியியல்-I", TE: "రసాయన శాస్త్రం-I", BN: "রসায়ন বিজ্ঞান-I", MR: "रसायन शास्त्र-I"},
	"Chemistry-II":          {EN: "Chemistry-II", HI: "रसायन विज्ञान-II", TA: "வேதியியல்-II", TE: "రసాయన శాస్త్రం-II", BN: "রসায়ন বিজ্ঞান-II", MR: "रसायन शास्त्र-II"},
	"Organic Chemistry":     {EN: "Organic Chemistry", HI: "जैव रसायन विज्ञान", TA: "கரிம வேதியியல்", TE: "సేంద్రీయ రసాయన శాస్త్రం", BN: "জৈব রসায়ন বিজ্ঞান", MR: "जैव रसायन शास्त्र"},
	"Inorganic Chemistry":   {EN: "Inorganic Chemistry", HI: "अकार्बनिक रसायन विज्ञान", TA: "கனிம வேதியியல்", TE: "అకర్బన రసాయన శాస్త్రం", BN: "অজৈব রসায়ন বিজ্ঞান", MR: "अकार्बनिक रसायन शास्त्र"},
	"Physical Chemistry":    {EN: "Physical Chemistry", HI: "भौतिक रसायन विज्ञान", TA: "உடல் வேதியியல்", TE: "భౌతిక రసాయన శాస్త్రం", BN: "ফিজিক্যাল রসায়ন বিজ্ঞান", MR: "भौतिक रसायन शास्त्र"},
	"Chemistry Lab":         {EN: "Chemistry Lab", HI: "रसायन प्रयोगशाला", TA: "வேதியியல் ஆய்வுக்கூடம்", TE: "రసాయన ల్యాబ్", BN: "রসায়ন ল্যাব", MR: "रसायन प्रयोगशाळा"},
	"C Programming Lab":     {EN: "C Programming Lab", HI: "सी प्रोग्रामिंग प्रयोगशाला", TA: "சி நிரலாக்கம் ஆய்வுக்கூடம்", TE: "సి ప్రోగ్రామింగ్ ల్యాబ్", BN: "সি প্রোগ্রামিং ল্যাব", MR: "सी प्रोग्रामिंग प्रयोगशाळा"},
	"Physics Lab":           {EN: "Physics Lab", HI: "भौतिकी प्रयोगशाला", TA: "இயற்பியல் ஆய்வுக்கூடம்", TE: "ఫిజిక్స్ ల్యాబ్", BN: "পদার্থবিজ্ঞান ল্যাব", MR: "भौतिकी प्रयोगशाळा"},
	"Electrical Lab":        {EN: "Electrical Lab", HI: "विद्युत प्रयोगशाला", TA: "மின்சாரம் ஆய்வுக்கூடம்", TE: "ఎలక్ట్రికల్ ల్యాబ్", BN: "বৈদ্যুতিক ল্যাব", MR: "विद्युत प्रयोगशाळा"},
	"DS Lab":                {EN: "DS Lab", HI: "डेटा संरचना प्रयोगशाला", TA: "டிஎஸ் ஆய்வுக்கூடம்", TE: "డీఎస్ ల్యాబ్", BN: "ডিএস ল্যাব", MR: "डेटा संरचना प्रयोगशाळा"},
	"DLD Lab":               {EN: "DLD Lab", HI: "डिजिटल लॉजिक डिजाइन प्रयोगशाला", TA: "டிஎல்டி ஆய்வுக்கூடம்", TE: "డిఎల్డి ల్యాబ్", BN: "ডিএলডি ল্যাব", MR: "डिजिटल लॉजिक डिजाइन प्रयोगशाळा"},
	"English":               {EN: "English", HI: "अंग्रेजी", TA: "ஆங்கிலம்", TE: "ఆంగ్లం", BN: "ইংরেজি", MR: "इंग्रजी"},
	"Workshop Practice":     {EN: "Workshop Practice", HI: "कार्यशाला प्रशिक्षण", TA: "பணிப்பாட்டை பயிற்சி", TE: "వర్క్‌షాప్ ప్రాక్టీస్", BN: "ওয়ার্কশপ প্র্যাকটিস", MR: "कार्यशाळा प्रशिक्षण"},
	"Workshop":              {EN: "Workshop", HI: "कार्यशाला", TA: "பணிப்பாட்டை", TE: "వర్క్‌షాప్", BN: "ওয়ার্কশপ", MR: "कार्यशाळा"},
	"PDP":                   {EN: "PDP", HI: "पीडीपी", TA: "பிடிபி", TE: "పిడిపి", BN: "পিডিপি", MR: "पीडीपी"},
	"Library":               {EN: "Library", HI: "पुस्तकालय", TA: "நூலகம்", TE: "లైబ్రరీ", BN: "লাইব্রেরি", MR: "ग्रंथालय"},

	// Venue types
	"Lab":          {EN: "Lab", HI: "प्रयोगशाला", TA: "ஆய்வுக்கூடம்", TE: "ల్యాబ్", BN: "ল্যাব", MR: "प्रयोगशाळा"},
	"Drawing Hall": {EN: "Drawing Hall", HI: "ड्राइंग हॉल", TA: "வரைதல் அரங்கம்", TE: "డ్రాయింగ్ హల్", BN: "ড্রয়িং হল", MR: "रेखाचित्र हॉल"},
	"Seminar Hall": {EN: "Seminar Hall", HI: "सेमिनार हॉल", TA: "செமிநார் அரங்கம்", TE: "సెమినార్ హల్", BN: "সেমিনার হল", MR: "सेमिनार हॉल"},
	"Lecture Hall": {EN: "Lecture Hall", HI: "व्याख्यान हॉल", TA: "விரிவுரை அரங்கம்", TE: "లెక్చర్ హల్", BN: "লেকচার হল", MR: "व्याख्यान हॉल"},

	// Academic headings
	"Class Timetable":        {EN: "Class Timetable", HI: "कक्षा समय सारणी", TA: "வகுப்பு நேர அட்டவணை", TE: "తరగతి టైమ్‌టేబుల్", BN: "ক্লাস টাইমটেবল", MR: "वर्गाचे वेळापत्रक"},
	"Exam Timetable":         {EN: "Exam Timetable", HI: "परीक्षा समय सारणी", TA: "தேர்வு நேர அட்டவணை", TE: "పరీక్ష టైమ్‌టేబుల్", BN: "পরীক্ষা টাইমটেবল", MR: "परीक्षा वेळापत्रक"},
	"Semester Fees":          {EN: "Semester Fees", HI: "सेमेस्टर फीस", TA: "செமிஸ்டர் கட்டணம்", TE: "సెమిస్టర్ ఫీజు", BN: "সেমিস্টার ফি", MR: "सेमेस्टर फी"},
	"Available Scholarships": {EN: "Available Scholarships", HI: "उपलब्ध छात्रवृत्तियाँ", TA: "கிடைக்கும் உதவித்தொகைகள்", TE: "అందుబాటులో ఉన్న స్కాలర్‌షిప్‌లు", BN: "উপলব্ধ বৃত্তিসমূহ", MR: "उपलब्ध शिष्यवृत्ती"},
	"Latest Circulars":       {EN: "Latest Circulars", HI: "नवीनतम परिपत्र", TA: "சமீபத்திய சுற்றறிக்கைகள்", TE: "తాజా సర్క్యులర్‌లు", BN: "সর্বশেষ সার্কুলারসমূহ", MR: "नवीनतम परिपत्रके"},

	// Common labels
	"Time":     {EN: "Time", HI: "समय", TA: "நேரம்", TE: "సమయం", BN: "সময়", MR: "वेळ"},
	"Subject":  {EN: "Subject", HI: "विषय", TA: "பாடம்", TE: "విషయం", BN: "বিষয়", MR: "विषय"},
	"Faculty":  {EN: "Faculty", HI: "संकाय", TA: "ஆசிரியர்", TE: "ఫ్యాకల్టీ", BN: "শিক্ষক", MR: "संकाय"},
	"Venue":    {EN: "Venue", HI: "स्थान", TA: "இடம்", TE: "సంస్థ", BN: "স্থান", MR: "स्थान"},
	"Room":     {EN: "Room", HI: "कक्ष", TA: "அறை", TE: "గది", BN: "কক্ষ", MR: "खोली"},
	"Semester": {EN: "Semester", HI: "सेमेस्टर", TA: "செமிஸ்டர்", TE: "సెమిస్టర్", BN: "সেমিস্টার", MR: "सेमेस्टर"},
	"Program":  {EN: "Program", HI: "कार्यक्रम", TA: "திட்டம்", TE: "ప్రోగ్రామ్", BN: "প্রোগ্রাম", MR: "कार्यक्रम"},
	"Branch":   {EN: "Branch", HI: "शाखा", TA: "கிளை", TE: "శాఖ", BN: "শাখা", MR: "शाखा"},
}
