package assistant

// Bare "help" and "madad" are left out of the emergency lists: they show up in ordinary
// navigation requests and would raise false SOS alerts.
var emergencyKeywords = map[string][]string{
	LangHindi: {"emergency", "accident", "ambulance", "turant", "jaldi", "seene mein dard",
		"saans nahi aa rahi", "bahut tez dard", "dil ka dora", "heart attack", "behosh",
		"unconscious", "khoon", "bleeding", "mar raha", "dying", "आपातकाल", "एंबुलेंस", "बेहोश"},
	LangPunjabi: {"emergency", "accident", "ambulance", "turant", "jaldi", "seene vich dard",
		"saans nahi aa rahi", "bahut tez dard", "dil da dora", "heart attack", "behosh",
		"unconscious", "khoon", "bleeding", "mar raha", "dying", "ਐਮਰਜੈਂਸੀ", "ਐਂਬੂਲੈਂਸ", "ਬੇਹੋਸ਼"},
	LangEnglish: {"emergency", "accident", "ambulance", "urgent", "chest pain", "cannot breathe",
		"can't breathe", "severe pain", "heart attack", "unconscious", "bleeding", "dying"},
}

var medicalAdviceKeywords = map[string][]string{
	LangHindi: {"kya dawai", "kaun si dawai", "ilaj kya", "kaise theek", "diagnosis", "tablet",
		"dawai", "capsule", "injection", "dose", "kitni dawai", "kab dawai", "kaise khana",
		"side effect", "allergy"},
	LangPunjabi: {"ki dawai", "kihri dawai", "ilaj ki", "kivein theek", "diagnosis", "tablet",
		"dawai", "capsule", "injection", "dose", "kinni dawai", "kad dawai", "kivein khana",
		"side effect", "allergy"},
	LangEnglish: {"what medicine", "which medicine", "which tablet", "how to cure", "what treatment",
		"diagnosis", "diagnose", "tablet", "capsule", "injection", "dose", "how much should",
		"when to take", "side effect", "allergy"},
}

var symptomKeywords = map[string][]string{
	LangHindi:   {"bukhar", "sir dard", "dard", "khansi", "thakan", "kamzori", "ulti", "dast", "बुखार", "खांसी", "दर्द"},
	LangPunjabi: {"bukhar", "sir dukh", "dukh", "khansi", "thakan", "kamzori", "ulti", "dast", "ਬੁਖ਼ਾਰ", "ਖੰਘ", "ਦਰਦ"},
	LangEnglish: {"fever", "headache", "pain", "cough", "tired", "weak", "vomiting", "diarrhea"},
}

type intent int

const (
	intentNone intent = iota
	intentBookAppointment
	intentAppointments
	intentHealthRecords
	intentMedicineScan
	intentPrescription
	intentEmergency
)

// Navigation intents are checked in order; the first match wins. They are language
// independent because users mix English app terms into hi and pa text.
var intentKeywords = []struct {
	intent   intent
	keywords []string
}{
	{intentMedicineScan, []string{"scan", "scanner", "स्कैन", "ਸਕੈਨ"}},
	{intentPrescription, []string{"prescription", "पर्चा", "प्रिस्क्रिप्शन", "ਪ੍ਰਿਸਕ੍ਰਿਪਸ਼ਨ"}},
	{intentHealthRecords, []string{"health record", "medical record", "report", "रिकॉर्ड", "ਰਿਕਾਰਡ"}},
	{intentAppointments, []string{"my appointments", "upcoming appointment", "meri appointment", "tuhadi appointment"}},
	{intentBookAppointment, []string{"book", "appointment", "consult", "अपॉइंटमेंट", "ਅਪਾਇੰਟਮੈਂਟ"}},
}
