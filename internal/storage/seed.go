package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// SeedIfEmpty populates campus reference data on first boot. An existing
// program table means a previous boot already seeded, so it does nothing.
func SeedIfEmpty(ctx context.Context, db *DB) error {
	count, err := db.CountPrograms(ctx)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		return nil
	}

	slog.InfoContext(ctx, "seeding campus reference data")

	for _, p := range seedPrograms() {
		if err := db.SaveProgram(ctx, &p); err != nil {
			return err
		}
	}
	for _, b := range seedBranches() {
		if err := db.SaveBranch(ctx, &b); err != nil {
			return err
		}
	}
	for _, tt := range seedTimetables() {
		if err := db.SaveClassTimetable(ctx, &tt); err != nil {
			return err
		}
	}
	for _, s := range seedScholarships() {
		if err := db.SaveScholarship(ctx, &s); err != nil {
			return err
		}
	}
	for _, c := range seedCirculars() {
		if err := db.SaveCircular(ctx, &c); err != nil {
			return err
		}
	}

	slog.InfoContext(ctx, "campus reference data seeded")
	return nil
}

func seedPrograms() []Program {
	return []Program{
		{
			Code: "BTECH",
			Name: i18n.Text{
				EN: "B.Tech", HI: "बी.टेक", TA: "பி.டெக்",
				TE: "బి.టెక్", BN: "বি.টেক", MR: "बी.टेक",
			},
			Duration: 8,
			IsActive: true,
		},
		{
			Code: "MTECH",
			Name: i18n.Text{
				EN: "M.Tech", HI: "एम.टेक", TA: "எம்.டெக்",
				TE: "ఎం.టెక్", BN: "এম.টেক", MR: "एम.टेक",
			},
			Duration: 4,
			IsActive: true,
		},
		{
			Code: "MBA",
			Name: i18n.Text{
				EN: "MBA", HI: "एमबीए", TA: "எம்பிஏ",
				TE: "ఎంబీఏ", BN: "এমবিএ", MR: "एमबीए",
			},
			Duration: 4,
			IsActive: true,
		},
		{
			Code: "BCA",
			Name: i18n.Text{
				EN: "BCA", HI: "बीसीए", TA: "பிசிஏ",
				TE: "బీసీఏ", BN: "বিসিএ", MR: "बीसीए",
			},
			Duration: 6,
			IsActive: true,
		},
	}
}

func seedBranches() []Branch {
	return []Branch{
		{
			ProgramCode: "BTECH", Code: "CSE",
			Name: i18n.Text{
				EN: "Computer Science and Engineering",
				HI: "कंप्यूटर विज्ञान और इंजीनियरिंग",
				TA: "கணினி அறிவியல் மற்றும் பொறியியல்",
				TE: "కంప్యూటర్ సైన్స్ మరియు ఇంజినీరింగ్",
				BN: "কম্পিউটার বিজ্ঞান ও প্রকৌশল",
				MR: "संगणक विज्ञान आणि अभियांत्रिकी",
			},
			SemesterFee: 125000, IsActive: true,
		},
		{
			ProgramCode: "BTECH", Code: "ECE",
			Name: i18n.Text{
				EN: "Electronics and Communication Engineering",
				HI: "इलेक्ट्रॉनिक्स और संचार इंजीनियरिंग",
				TA: "மின்னணுவியல் மற்றும் தகவல் தொடர்பு பொறியியல்",
				TE: "ఎలక్ట్రానిక్స్ మరియు కమ్యూనికేషన్ ఇంజినీరింగ్",
				BN: "ইলেকট্রনিক্স ও যোগাযোগ প্রকৌশল",
				MR: "इलेक्ट्रॉनिक्स आणि दळणवळण अभियांत्रिकी",
			},
			SemesterFee: 115000, IsActive: true,
		},
		{
			ProgramCode: "BTECH", Code: "ME",
			Name: i18n.Text{
				EN: "Mechanical Engineering",
				HI: "मैकेनिकल इंजीनियरिंग",
				TA: "இயந்திரப் பொறியியல்",
				TE: "మెకానికల్ ఇంజినీరింగ్",
				BN: "যন্ত্র প্রকৌশল",
				MR: "यांत्रिक अभियांत्रिकी",
			},
			SemesterFee: 105000, IsActive: true,
		},
		{
			ProgramCode: "BTECH", Code: "CE",
			Name: i18n.Text{
				EN: "Civil Engineering",
				HI: "सिविल इंजीनियरिंग",
				TA: "கட்டடப் பொறியியல்",
				TE: "సివిల్ ఇంజినీరింగ్",
				BN: "পুরকৌশল",
				MR: "स्थापत्य अभियांत्रिकी",
			},
			SemesterFee: 100000, IsActive: true,
		},
		{
			ProgramCode: "MTECH", Code: "CSE",
			Name: i18n.Text{
				EN: "Computer Science and Engineering",
				HI: "कंप्यूटर विज्ञान और इंजीनियरिंग",
				TA: "கணினி அறிவியல் மற்றும் பொறியியல்",
				TE: "కంప్యూటర్ సైన్స్ మరియు ఇంజినీరింగ్",
				BN: "কম্পিউটার বিজ্ঞান ও প্রকৌশল",
				MR: "संगणक विज्ञान आणि अभियांत्रिकी",
			},
			SemesterFee: 90000, IsActive: true,
		},
		{
			ProgramCode: "MTECH", Code: "VLSI",
			Name: i18n.Text{
				EN: "VLSI Design",
				HI: "वीएलएसआई डिज़ाइन",
				TA: "விஎல்எஸ்ஐ வடிவமைப்பு",
				TE: "వీఎల్ఎస్ఐ డిజైన్",
				BN: "ভিএলএসআই ডিজাইন",
				MR: "व्हीएलएसआय डिझाइन",
			},
			SemesterFee: 95000, IsActive: true,
		},
		{
			ProgramCode: "MBA", Code: "GENERAL",
			Name: i18n.Text{
				EN: "General Management",
				HI: "सामान्य प्रबंधन",
				TA: "பொது மேலாண்மை",
				TE: "జనరల్ మేనేజ్మెంట్",
				BN: "সাধারণ ব্যবস্থাপনা",
				MR: "सामान्य व्यवस्थापन",
			},
			SemesterFee: 150000, IsActive: true,
		},
		{
			ProgramCode: "BCA", Code: "GENERAL",
			Name: i18n.Text{
				EN: "Computer Applications",
				HI: "कंप्यूटर अनुप्रयोग",
				TA: "கணினி பயன்பாடுகள்",
				TE: "కంప్యూటర్ అప్లికేషన్స్",
				BN: "কম্পিউটার অ্যাপ্লিকেশন",
				MR: "संगणक उपयोजन",
			},
			SemesterFee: 60000, IsActive: true,
		},
	}
}

func seedTimetables() []ClassTimetable {
	return []ClassTimetable{
		{
			ProgramCode: "BTECH", Semester: 1, AcademicYear: "2026-27", IsActive: true,
			Week: Week{
				Monday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Mathematics-I", Faculty: "Dr. Sharma", Venue: "Lecture Hall 1"},
					{Time: "10:00-11:00", Subject: "Physics", Faculty: "Dr. Iyer", Venue: "Lecture Hall 1"},
					{Time: "11:15-12:15", Subject: "C Programming", Faculty: "Prof. Reddy", Venue: "Lecture Hall 2"},
					{Time: "2:00-4:00", Subject: "Physics Lab", Faculty: "Dr. Iyer", Venue: "Lab 101"},
				},
				Tuesday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Chemistry", Faculty: "Dr. Banerjee", Venue: "Lecture Hall 1"},
					{Time: "10:00-11:00", Subject: "English", Faculty: "Prof. D'Souza", Venue: "Lecture Hall 3"},
					{Time: "11:15-12:15", Subject: "Engineering Graphics", Faculty: "Prof. Kulkarni", Venue: "Drawing Hall"},
					{Time: "2:00-4:00", Subject: "C Programming Lab", Faculty: "Prof. Reddy", Venue: "Lab 204"},
				},
				Wednesday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Mathematics-I", Faculty: "Dr. Sharma", Venue: "Lecture Hall 1"},
					{Time: "10:00-11:00", Subject: "Basic Electrical Engineering", Faculty: "Dr. Nair", Venue: "Lecture Hall 2"},
					{Time: "11:15-12:15", Subject: "Physics", Faculty: "Dr. Iyer", Venue: "Lecture Hall 1"},
					{Time: "2:00-4:00", Subject: "Chemistry Lab", Faculty: "Dr. Banerjee", Venue: "Lab 103"},
				},
				Thursday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "C Programming", Faculty: "Prof. Reddy", Venue: "Lecture Hall 2"},
					{Time: "10:00-11:00", Subject: "Chemistry", Faculty: "Dr. Banerjee", Venue: "Lecture Hall 1"},
					{Time: "11:15-12:15", Subject: "Basic Electrical Engineering", Faculty: "Dr. Nair", Venue: "Lecture Hall 2"},
					{Time: "2:00-4:00", Subject: "Electrical Lab", Faculty: "Dr. Nair", Venue: "Lab 301"},
				},
				Friday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Mathematics-I", Faculty: "Dr. Sharma", Venue: "Lecture Hall 1"},
					{Time: "10:00-11:00", Subject: "English", Faculty: "Prof. D'Souza", Venue: "Lecture Hall 3"},
					{Time: "11:15-12:15", Subject: "Engineering Graphics", Faculty: "Prof. Kulkarni", Venue: "Drawing Hall"},
					{Time: "2:00-4:00", Subject: "Workshop Practice", Faculty: "Prof. Kulkarni", Venue: "Workshop"},
				},
				Saturday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Personality Development Program", Faculty: "Prof. D'Souza", Venue: "Seminar Hall"},
					{Time: "10:00-11:00", Subject: "Library"},
				},
			},
		},
		{
			ProgramCode: "BTECH", Semester: 3, AcademicYear: "2026-27", IsActive: true,
			Week: Week{
				Monday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Mathematics-III", Faculty: "Dr. Sharma", Venue: "Lecture Hall 4"},
					{Time: "10:00-11:00", Subject: "Data Structures", Faculty: "Prof. Reddy", Venue: "Lecture Hall 4"},
					{Time: "11:15-12:15", Subject: "Digital Logic Design", Faculty: "Dr. Nair", Venue: "Lecture Hall 5"},
				},
				Tuesday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Data Structures", Faculty: "Prof. Reddy", Venue: "Lecture Hall 4"},
					{Time: "10:00-11:00", Subject: "Economics", Faculty: "Dr. Menon", Venue: "Lecture Hall 6"},
					{Time: "2:00-4:00", Subject: "DS Lab", Faculty: "Prof. Reddy", Venue: "Lab 204"},
				},
				Wednesday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Mathematics-III", Faculty: "Dr. Sharma", Venue: "Lecture Hall 4"},
					{Time: "10:00-11:00", Subject: "Digital Logic Design", Faculty: "Dr. Nair", Venue: "Lecture Hall 5"},
					{Time: "2:00-4:00", Subject: "DLD Lab", Faculty: "Dr. Nair", Venue: "Lab 302"},
				},
				Thursday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Economics", Faculty: "Dr. Menon", Venue: "Lecture Hall 6"},
					{Time: "10:00-11:00", Subject: "Data Structures", Faculty: "Prof. Reddy", Venue: "Lecture Hall 4"},
				},
				Friday: []TimetableEntry{
					{Time: "9:00-10:00", Subject: "Digital Logic Design", Faculty: "Dr. Nair", Venue: "Lecture Hall 5"},
					{Time: "10:00-11:00", Subject: "Mathematics-III", Faculty: "Dr. Sharma", Venue: "Lecture Hall 4"},
				},
			},
		},
	}
}

func seedScholarships() []Scholarship {
	deadline := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	return []Scholarship{
		{
			NameEN: "Merit-cum-Means Scholarship",
			Name: i18n.Text{
				EN: "Merit-cum-Means Scholarship",
				HI: "मेरिट-कम-मीन्स छात्रवृत्ति",
				TA: "தகுதி மற்றும் வருமான உதவித்தொகை",
				TE: "మెరిట్-కమ్-మీన్స్ స్కాలర్షిప్",
				BN: "মেধা ও আর্থিক বৃত্তি",
				MR: "गुणवत्ता व आर्थिक शिष्यवृत्ती",
			},
			Description: i18n.Text{
				EN: "Covers up to 50% of tuition fees for students with strong academic records and annual family income below ₹2.5 lakh.",
				HI: "मजबूत शैक्षणिक रिकॉर्ड और ₹2.5 लाख से कम वार्षिक पारिवारिक आय वाले छात्रों के लिए ट्यूशन फीस का 50% तक कवर करती है।",
				TA: "சிறந்த கல்வி சாதனையும் ஆண்டு குடும்ப வருமானம் ₹2.5 லட்சத்திற்கும் குறைவாக உள்ள மாணவர்களுக்கு கல்விக் கட்டணத்தில் 50% வரை வழங்கப்படும்.",
				TE: "బలమైన విద్యా రికార్డు మరియు వార్షిక కుటుంబ ఆదాయం ₹2.5 లక్షల కంటే తక్కువ ఉన్న విద్యార్థులకు ట్యూషన్ ఫీజులో 50% వరకు అందిస్తుంది.",
				BN: "ভালো একাডেমিক রেকর্ড এবং বার্ষিক পারিবারিক আয় ₹২.৫ লাখের কম হলে টিউশন ফির ৫০% পর্যন্ত প্রদান করা হয়।",
				MR: "उत्तम शैक्षणिक नोंद आणि वार्षिक कौटुंबिक उत्पन्न ₹2.5 लाखांपेक्षा कमी असलेल्या विद्यार्थ्यांसाठी शिक्षण शुल्काच्या 50% पर्यंत.",
			},
			Eligibility: i18n.Text{
				EN: "Minimum 75% marks in the previous year and annual family income below ₹2.5 lakh. Open to all programs.",
				HI: "पिछले वर्ष में न्यूनतम 75% अंक और ₹2.5 लाख से कम वार्षिक पारिवारिक आय। सभी कार्यक्रमों के लिए खुली।",
				TA: "முந்தைய ஆண்டில் குறைந்தபட்சம் 75% மதிப்பெண்களும் ஆண்டு குடும்ப வருமானம் ₹2.5 லட்சத்திற்கும் குறைவாகவும் இருக்க வேண்டும்.",
				TE: "గత సంవత్సరంలో కనీసం 75% మార్కులు మరియు వార్షిక కుటుంబ ఆదాయం ₹2.5 లక్షల కంటే తక్కువ ఉండాలి.",
				BN: "আগের বছরে ন্যূনতম ৭৫% নম্বর এবং বার্ষিক পারিবারিক আয় ₹২.৫ লাখের কম হতে হবে।",
				MR: "मागील वर्षी किमान 75% गुण आणि वार्षिक कौटुंबिक उत्पन्न ₹2.5 लाखांपेक्षा कमी असावे.",
			},
			ApplicationProcess: i18n.Text{
				EN: "Submit the application form at the scholarship cell with income certificate and previous year mark sheets before the deadline.",
				HI: "आय प्रमाण पत्र और पिछले वर्ष की मार्कशीट के साथ छात्रवृत्ति कक्ष में आवेदन पत्र जमा करें।",
				TA: "வருமானச் சான்றிதழ் மற்றும் முந்தைய ஆண்டு மதிப்பெண் பட்டியலுடன் உதவித்தொகை பிரிவில் விண்ணப்பத்தைச் சமர்ப்பிக்கவும்.",
				TE: "ఆదాయ ధృవీకరణ పత్రం మరియు గత సంవత్సరం మార్కుల షీట్లతో స్కాలర్షిప్ సెల్ వద్ద దరఖాస్తును సమర్పించండి.",
				BN: "আয়ের শংসাপত্র ও আগের বছরের মার্কশিটসহ স্কলারশিপ সেলে আবেদনপত্র জমা দিন।",
				MR: "उत्पन्न प्रमाणपत्र आणि मागील वर्षाच्या गुणपत्रिकांसह शिष्यवृत्ती कक्षात अर्ज सादर करा.",
			},
			Amount: "Up to 50% of tuition fees", Deadline: deadline, IsActive: true,
		},
		{
			NameEN: "Post-Matric Scholarship",
			Name: i18n.Text{
				EN: "Post-Matric Scholarship",
				HI: "पोस्ट-मैट्रिक छात्रवृत्ति",
				TA: "போஸ்ட்-மெட்ரிக் உதவித்தொகை",
				TE: "పోస్ట్-మెట్రిక్ స్కాలర్షిప్",
				BN: "পোস্ট-ম্যাট্রিক বৃত্তি",
				MR: "पोस्ट-मॅट्रिक शिष्यवृत्ती",
			},
			Description: i18n.Text{
				EN: "Government scholarship for students from SC, ST and OBC categories pursuing higher education after class 10.",
				HI: "कक्षा 10 के बाद उच्च शिक्षा प्राप्त कर रहे SC, ST और OBC वर्ग के छात्रों के लिए सरकारी छात्रवृत्ति।",
				TA: "பத்தாம் வகுப்புக்குப் பிறகு உயர்கல்வி பயிலும் SC, ST மற்றும் OBC பிரிவு மாணவர்களுக்கான அரசு உதவித்தொகை.",
				TE: "పదో తరగతి తర్వాత ఉన్నత విద్యను అభ్యసిస్తున్న SC, ST మరియు OBC వర్గాల విద్యార్థులకు ప్రభుత్వ స్కాలర్షిప్.",
				BN: "দশম শ্রেণির পর উচ্চশিক্ষা গ্রহণকারী SC, ST ও OBC শ্রেণির শিক্ষার্থীদের জন্য সরকারি বৃত্তি।",
				MR: "दहावीनंतर उच्च शिक्षण घेणाऱ्या SC, ST आणि OBC प्रवर्गातील विद्यार्थ्यांसाठी शासकीय शिष्यवृत्ती.",
			},
			Eligibility: i18n.Text{
				EN: "Students belonging to SC, ST or OBC categories with annual family income below ₹2.5 lakh. Valid caste certificate required.",
				HI: "₹2.5 लाख से कम वार्षिक पारिवारिक आय वाले SC, ST या OBC वर्ग के छात्र। वैध जाति प्रमाण पत्र आवश्यक।",
				TA: "ஆண்டு குடும்ப வருமானம் ₹2.5 லட்சத்திற்கும் குறைவான SC, ST அல்லது OBC மாணவர்கள். சான்றிதழ் அவசியம்.",
				TE: "వార్షిక కుటుంబ ఆదాయం ₹2.5 లక్షల కంటే తక్కువ ఉన్న SC, ST లేదా OBC విద్యార్థులు. చెల్లుబాటు అయ్యే కుల ధృవీకరణ పత్రం అవసరం.",
				BN: "বার্ষিক পারিবারিক আয় ₹২.৫ লাখের কম SC, ST বা OBC শিক্ষার্থীরা। বৈধ জাতি শংসাপত্র প্রয়োজন।",
				MR: "वार्षिक कौटुंबिक उत्पन्न ₹2.5 लाखांपेक्षा कमी असलेले SC, ST किंवा OBC विद्यार्थी. वैध जात प्रमाणपत्र आवश्यक.",
			},
			ApplicationProcess: i18n.Text{
				EN: "Apply online on the National Scholarship Portal and submit a copy of the acknowledgement at the scholarship cell.",
				HI: "राष्ट्रीय छात्रवृत्ति पोर्टल पर ऑनलाइन आवेदन करें और पावती की प्रति छात्रवृत्ति कक्ष में जमा करें।",
				TA: "தேசிய உதவித்தொகை போர்ட்டலில் ஆன்லைனில் விண்ணப்பித்து, ஒப்புகைச் சீட்டின் நகலை உதவித்தொகை பிரிவில் சமர்ப்பிக்கவும்.",
				TE: "నేషనల్ స్కాలర్షిప్ పోర్టల్లో ఆన్లైన్లో దరఖాస్తు చేసి, రసీదు కాపీని స్కాలర్షిప్ సెల్ వద్ద సమర్పించండి.",
				BN: "ন্যাশনাল স্কলারশিপ পোর্টালে অনলাইনে আবেদন করুন এবং প্রাপ্তিস্বীকারের কপি স্কলারশিপ সেলে জমা দিন।",
				MR: "नॅशनल स्कॉलरशिप पोर्टलवर ऑनलाइन अर्ज करा आणि पोचपावतीची प्रत शिष्यवृत्ती कक्षात जमा करा.",
			},
			Amount: "As per government norms", Deadline: deadline, IsActive: true,
		},
		{
			NameEN: "Minority Scholarship",
			Name: i18n.Text{
				EN: "Minority Scholarship",
				HI: "अल्पसंख्यक छात्रवृत्ति",
				TA: "சிறுபான்மையினர் உதவித்தொகை",
				TE: "మైనారిటీ స్కాలర్షిప్",
				BN: "সংখ্যালঘু বৃত্তি",
				MR: "अल्पसंख्याक शिष्यवृत्ती",
			},
			Description: i18n.Text{
				EN: "Financial assistance for students from notified minority communities to support tuition and maintenance costs.",
				HI: "अधिसूचित अल्पसंख्यक समुदायों के छात्रों के लिए ट्यूशन और रखरखाव लागत हेतु वित्तीय सहायता।",
				TA: "அறிவிக்கப்பட்ட சிறுபான்மை சமூக மாணவர்களுக்கு கல்விக் கட்டணம் மற்றும் பராமரிப்புச் செலவுகளுக்கான நிதியுதவி.",
				TE: "నోటిఫైడ్ మైనారిటీ వర్గాల విద్యార్థులకు ట్యూషన్ మరియు నిర్వహణ ఖర్చుల కోసం ఆర్థిక సహాయం.",
				BN: "বিজ্ঞাপিত সংখ্যালঘু সম্প্রদায়ের শিক্ষার্থীদের টিউশন ও রক্ষণাবেক্ষণ খরচের জন্য আর্থিক সহায়তা।",
				MR: "अधिसूचित अल्पसंख्याक समुदायातील विद्यार्थ्यांसाठी शिक्षण व देखभाल खर्चासाठी आर्थिक मदत.",
			},
			Eligibility: i18n.Text{
				EN: "Students from notified minority communities with at least 50% marks and annual family income below ₹2 lakh.",
				HI: "कम से कम 50% अंक और ₹2 लाख से कम वार्षिक पारिवारिक आय वाले अधिसूचित अल्पसंख्यक समुदाय के छात्र।",
				TA: "குறைந்தபட்சம் 50% மதிப்பெண்களும் ஆண்டு குடும்ப வருமானம் ₹2 லட்சத்திற்கும் குறைவாக உள்ள சிறுபான்மை மாணவர்கள்.",
				TE: "కనీసం 50% మార్కులు మరియు వార్షిక కుటుంబ ఆదాయం ₹2 లక్షల కంటే తక్కువ ఉన్న మైనారిటీ విద్యార్థులు.",
				BN: "ন্যূনতম ৫০% নম্বর এবং বার্ষিক পারিবারিক আয় ₹২ লাখের কম সংখ্যালঘু শিক্ষার্থীরা।",
				MR: "किमान 50% गुण आणि वार्षिक कौटुंबिक उत्पन्न ₹2 लाखांपेक्षा कमी असलेले अल्पसंख्याक विद्यार्थी.",
			},
			ApplicationProcess: i18n.Text{
				EN: "Apply on the National Scholarship Portal with community certificate, income certificate and bank details.",
				HI: "समुदाय प्रमाण पत्र, आय प्रमाण पत्र और बैंक विवरण के साथ राष्ट्रीय छात्रवृत्ति पोर्टल पर आवेदन करें।",
				TA: "சமூகச் சான்றிதழ், வருமானச் சான்றிதழ் மற்றும் வங்கி விவரங்களுடன் தேசிய உதவித்தொகை போர்ட்டலில் விண்ணப்பிக்கவும்.",
				TE: "కమ్యూనిటీ సర్టిఫికెట్, ఆదాయ ధృవీకరణ పత్రం మరియు బ్యాంక్ వివరాలతో నేషనల్ స్కాలర్షిప్ పోర్టల్లో దరఖాస్తు చేయండి.",
				BN: "সম্প্রদায় শংসাপত্র, আয়ের শংসাপত্র ও ব্যাংক বিবরণসহ ন্যাশনাল স্কলারশিপ পোর্টালে আবেদন করুন।",
				MR: "समुदाय प्रमाणपत्र, उत्पन्न प्रमाणपत्र आणि बँक तपशीलांसह नॅशनल स्कॉलरशिप पोर्टलवर अर्ज करा.",
			},
			Amount: "Up to ₹30,000 per year", Deadline: deadline, IsActive: true,
		},
		{
			NameEN: "SC/ST Fee Waiver",
			Name: i18n.Text{
				EN: "SC/ST Fee Waiver",
				HI: "SC/ST शुल्क माफी",
				TA: "SC/ST கட்டண விலக்கு",
				TE: "SC/ST ఫీజు మాఫీ",
				BN: "SC/ST ফি মওকুফ",
				MR: "SC/ST शुल्क माफी",
			},
			Description: i18n.Text{
				EN: "Full tuition fee waiver for students from SC and ST categories admitted through the state counselling process.",
				HI: "राज्य काउंसलिंग प्रक्रिया के माध्यम से प्रवेशित SC और ST वर्ग के छात्रों के लिए पूर्ण ट्यूशन शुल्क माफी।",
				TA: "மாநில கலந்தாய்வு வழியாக சேர்ந்த SC மற்றும் ST மாணவர்களுக்கு முழு கல்விக் கட்டண விலக்கு.",
				TE: "రాష్ట్ర కౌన్సెలింగ్ ద్వారా ప్రవేశం పొందిన SC మరియు ST విద్యార్థులకు పూర్తి ట్యూషన్ ఫీజు మాఫీ.",
				BN: "রাজ্য কাউন্সেলিংয়ের মাধ্যমে ভর্তি SC ও ST শিক্ষার্থীদের জন্য সম্পূর্ণ টিউশন ফি মওকুফ।",
				MR: "राज्य समुपदेशन प्रक्रियेतून प्रवेश घेतलेल्या SC आणि ST विद्यार्थ्यांसाठी संपूर्ण शिक्षण शुल्क माफी.",
			},
			Eligibility: i18n.Text{
				EN: "SC or ST students admitted through state counselling with a valid caste certificate. No income limit.",
				HI: "वैध जाति प्रमाण पत्र के साथ राज्य काउंसलिंग से प्रवेशित SC या ST छात्र। कोई आय सीमा नहीं।",
				TA: "செல்லுபடியான சான்றிதழுடன் மாநில கலந்தாய்வு வழியாக சேர்ந்த SC அல்லது ST மாணவர்கள். வருமான வரம்பு இல்லை.",
				TE: "చెల్లుబాటు అయ్యే కుల ధృవీకరణ పత్రంతో రాష్ట్ర కౌన్సెలింగ్ ద్వారా ప్రవేశం పొందిన SC లేదా ST విద్యార్థులు. ఆదాయ పరిమితి లేదు.",
				BN: "বৈধ জাতি শংসাপত্রসহ রাজ্য কাউন্সেলিংয়ের মাধ্যমে ভর্তি SC বা ST শিক্ষার্থীরা। আয়ের সীমা নেই।",
				MR: "वैध जात प्रमाणपत्रासह राज्य समुपदेशनातून प्रवेश घेतलेले SC किंवा ST विद्यार्थी. उत्पन्न मर्यादा नाही.",
			},
			ApplicationProcess: i18n.Text{
				EN: "Submit the caste certificate and counselling allotment letter at the accounts section during admission.",
				HI: "प्रवेश के समय जाति प्रमाण पत्र और काउंसलिंग आवंटन पत्र लेखा अनुभाग में जमा करें।",
				TA: "சேர்க்கையின் போது சான்றிதழ் மற்றும் கலந்தாய்வு ஒதுக்கீட்டு கடிதத்தை கணக்குப் பிரிவில் சமர்ப்பிக்கவும்.",
				TE: "ప్రవేశ సమయంలో కుల ధృవీకరణ పత్రం మరియు కౌన్సెలింగ్ కేటాయింపు లేఖను అకౌంట్స్ విభాగంలో సమర్పించండి.",
				BN: "ভর্তির সময় জাতি শংসাপত্র ও কাউন্সেলিং বরাদ্দপত্র হিসাব বিভাগে জমা দিন।",
				MR: "प्रवेशाच्या वेळी जात प्रमाणपत्र आणि समुपदेशन वाटप पत्र लेखा विभागात जमा करा.",
			},
			Amount: "Full tuition fee", IsActive: true,
		},
	}
}

func seedCirculars() []Circular {
	now := time.Now().UTC()
	return []Circular{
		{
			Title: i18n.Text{
				EN: "End Semester Examination Schedule Released",
				HI: "सेमेस्टर परीक्षा कार्यक्रम जारी",
				TA: "இறுதி செமஸ்டர் தேர்வு அட்டவணை வெளியீடு",
				TE: "సెమిస్టర్ పరీక్షల షెడ్యూల్ విడుదల",
				BN: "সেমিস্টার পরীক্ষার সময়সূচি প্রকাশিত",
				MR: "सत्र परीक्षा वेळापत्रक जाहीर",
			},
			Content: i18n.Text{
				EN: "End semester examinations begin on 15 December. Detailed date sheets are available on the examination portal.",
				HI: "सेमेस्टर परीक्षाएं 15 दिसंबर से शुरू होंगी। विस्तृत डेटशीट परीक्षा पोर्टल पर उपलब्ध है।",
				TA: "இறுதி செமஸ்டர் தேர்வுகள் டிசம்பர் 15 அன்று தொடங்கும். விரிவான அட்டவணை தேர்வு போர்ட்டலில் உள்ளது.",
				TE: "సెమిస్టర్ పరీక్షలు డిసెంబర్ 15న ప్రారంభమవుతాయి. వివరమైన డేట్ షీట్లు పరీక్షల పోర్టల్లో అందుబాటులో ఉన్నాయి.",
				BN: "সেমিস্টার পরীক্ষা ১৫ ডিসেম্বর শুরু হবে। বিস্তারিত রুটিন পরীক্ষা পোর্টালে পাওয়া যাবে।",
				MR: "सत्र परीक्षा 15 डिसेंबरपासून सुरू होतील. सविस्तर वेळापत्रक परीक्षा पोर्टलवर उपलब्ध आहे.",
			},
			Category: "exam", Priority: 9,
			PublishedDate: now.AddDate(0, 0, -2), IsActive: true,
		},
		{
			Title: i18n.Text{
				EN: "Scholarship Applications Open",
				HI: "छात्रवृत्ति आवेदन शुरू",
				TA: "உதவித்தொகை விண்ணப்பங்கள் தொடக்கம்",
				TE: "స్కాలర్షిప్ దరఖాస్తులు ప్రారంభం",
				BN: "বৃত্তির আবেদন শুরু",
				MR: "शिष्यवृत्ती अर्ज सुरू",
			},
			Content: i18n.Text{
				EN: "Applications for merit and government scholarships are open until 30 November. Visit the scholarship cell for assistance.",
				HI: "मेरिट और सरकारी छात्रवृत्ति के लिए आवेदन 30 नवंबर तक खुले हैं। सहायता के लिए छात्रवृत्ति कक्ष में जाएं।",
				TA: "தகுதி மற்றும் அரசு உதவித்தொகைகளுக்கான விண்ணப்பங்கள் நவம்பர் 30 வரை. உதவிக்கு உதவித்தொகை பிரிவை அணுகவும்.",
				TE: "మెరిట్ మరియు ప్రభుత్వ స్కాలర్షిప్ల దరఖాస్తులు నవంబర్ 30 వరకు తెరిచి ఉన్నాయి. సహాయం కోసం స్కాలర్షిప్ సెల్ను సందర్శించండి.",
				BN: "মেধা ও সরকারি বৃত্তির আবেদন ৩০ নভেম্বর পর্যন্ত খোলা। সহায়তার জন্য স্কলারশিপ সেলে যান।",
				MR: "गुणवत्ता व शासकीय शिष्यवृत्तीसाठी अर्ज 30 नोव्हेंबरपर्यंत खुले आहेत. मदतीसाठी शिष्यवृत्ती कक्षाला भेट द्या.",
			},
			Category: "scholarship", Priority: 8,
			PublishedDate: now.AddDate(0, 0, -5),
			LastDate:      time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC),
			IsActive:      true,
		},
		{
			Title: i18n.Text{
				EN: "Semester Fee Payment Deadline",
				HI: "सेमेस्टर शुल्क भुगतान की अंतिम तिथि",
				TA: "செமஸ்டர் கட்டணம் செலுத்த கடைசி நாள்",
				TE: "సెమిస్టర్ ఫీజు చెల్లింపు గడువు",
				BN: "সেমিস্টার ফি প্রদানের শেষ তারিখ",
				MR: "सत्र शुल्क भरण्याची अंतिम मुदत",
			},
			Content: i18n.Text{
				EN: "Semester fees must be paid by 15 October to avoid late charges. Online payment is available on the student portal.",
				HI: "विलंब शुल्क से बचने के लिए सेमेस्टर शुल्क 15 अक्टूबर तक भुगतान करें। छात्र पोर्टल पर ऑनलाइन भुगतान उपलब्ध है।",
				TA: "தாமதக் கட்டணம் தவிர்க்க செமஸ்டர் கட்டணத்தை அக்டோபர் 15க்குள் செலுத்தவும். மாணவர் போர்ட்டலில் ஆன்லைன் பணம் செலுத்தலாம்.",
				TE: "ఆలస్య రుసుము నివారించడానికి సెమిస్టర్ ఫీజును అక్టోబర్ 15లోగా చెల్లించండి. విద్యార్థి పోర్టల్లో ఆన్లైన్ చెల్లింపు అందుబాటులో ఉంది.",
				BN: "বিলম্ব ফি এড়াতে ১৫ অক্টোবরের মধ্যে সেমিস্টার ফি পরিশোধ করুন। ছাত্র পোর্টালে অনলাইন পেমেন্ট সুবিধা রয়েছে।",
				MR: "विलंब शुल्क टाळण्यासाठी 15 ऑक्टोबरपर्यंत सत्र शुल्क भरा. विद्यार्थी पोर्टलवर ऑनलाइन पेमेंट उपलब्ध आहे.",
			},
			Category: "fees", Priority: 7,
			PublishedDate: now.AddDate(0, 0, -7),
			LastDate:      time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
			IsActive:      true,
		},
		{
			Title: i18n.Text{
				EN: "Diwali Holidays Announced",
				HI: "दिवाली की छुट्टियों की घोषणा",
				TA: "தீபாவளி விடுமுறை அறிவிப்பு",
				TE: "దీపావళి సెలవుల ప్రకటన",
				BN: "দীপাবলির ছুটি ঘোষণা",
				MR: "दिवाळी सुट्ट्या जाहीर",
			},
			Content: i18n.Text{
				EN: "The campus will remain closed from 8 to 12 November for Diwali. Classes resume on 13 November.",
				HI: "दिवाली के लिए परिसर 8 से 12 नवंबर तक बंद रहेगा। कक्षाएं 13 नवंबर से फिर शुरू होंगी।",
				TA: "தீபாவளிக்காக வளாகம் நவம்பர் 8 முதல் 12 வரை மூடப்படும். வகுப்புகள் நவம்பர் 13 அன்று மீண்டும் தொடங்கும்.",
				TE: "దీపావళి కోసం క్యాంపస్ నవంబర్ 8 నుండి 12 వరకు మూసివేయబడుతుంది. తరగతులు నవంబర్ 13న తిరిగి ప్రారంభమవుతాయి.",
				BN: "দীপাবলি উপলক্ষে ৮ থেকে ১২ নভেম্বর ক্যাম্পাস বন্ধ থাকবে। ১৩ নভেম্বর ক্লাস পুনরায় শুরু হবে।",
				MR: "दिवाळीनिमित्त 8 ते 12 नोव्हेंबर कॅम्पस बंद राहील. 13 नोव्हेंबरपासून वर्ग पुन्हा सुरू होतील.",
			},
			Category: "holiday", Priority: 5,
			PublishedDate: now.AddDate(0, 0, -3), IsActive: true,
		},
		{
			Title: i18n.Text{
				EN: "Annual Tech Fest Registrations",
				HI: "वार्षिक टेक फेस्ट पंजीकरण",
				TA: "ஆண்டு டெக் விழா பதிவுகள்",
				TE: "వార్షిక టెక్ ఫెస్ట్ రిజిస్ట్రేషన్లు",
				BN: "বার্ষিক টেক ফেস্ট নিবন্ধন",
				MR: "वार्षिक टेक फेस्ट नोंदणी",
			},
			Content: i18n.Text{
				EN: "Registrations for the annual tech fest are open. Team events, hackathons and workshops across three days in January.",
				HI: "वार्षिक टेक फेस्ट के लिए पंजीकरण खुले हैं। जनवरी में तीन दिनों तक टीम इवेंट, हैकाथॉन और कार्यशालाएं।",
				TA: "ஆண்டு டெக் விழாவிற்கான பதிவுகள் தொடங்கிவிட்டன. ஜனவரியில் மூன்று நாட்கள் குழு நிகழ்வுகள், ஹேக்கத்தான்கள் மற்றும் பயிலரங்குகள்.",
				TE: "వార్షిక టెక్ ఫెస్ట్ రిజిస్ట్రేషన్లు తెరిచి ఉన్నాయి. జనవరిలో మూడు రోజుల పాటు టీమ్ ఈవెంట్లు, హ్యాకథాన్లు మరియు వర్క్షాప్లు.",
				BN: "বার্ষিক টেক ফেস্টের নিবন্ধন খোলা। জানুয়ারিতে তিন দিনব্যাপী দলগত ইভেন্ট, হ্যাকাথন ও কর্মশালা।",
				MR: "वार्षिक टेक फेस्टसाठी नोंदणी सुरू आहे. जानेवारीत तीन दिवस सांघिक स्पर्धा, हॅकेथॉन आणि कार्यशाळा.",
			},
			Category: "event", Priority: 4,
			PublishedDate: now.AddDate(0, 0, -10), IsActive: true,
		},
	}
}
