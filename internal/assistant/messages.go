package assistant

// localized holds one text per language code.
type localized map[string]string

// get falls back to English for unsupported languages.
func (l localized) get(lang string) string {
	if s, ok := l[lang]; ok {
		return s
	}
	return l[LangEnglish]
}

var emergencyMessage = localized{
	LangHindi:   "यह आपातकालीन स्थिति है। मैं आपको तुरंत आपातकालीन सेवाओं से जोड़ रही हूं। एंबुलेंस के लिए 108 कॉल करें।",
	LangPunjabi: "ਇਹ ਐਮਰਜੈਂਸੀ ਸਥਿਤੀ ਹੈ। ਮੈਂ ਤੁਹਾਨੂੰ ਤੁਰੰਤ ਐਮਰਜੈਂਸੀ ਸੇਵਾਵਾਂ ਨਾਲ ਜੋੜ ਰਹੀ ਹਾਂ। ਐਂਬੂਲੈਂਸ ਲਈ 108 ਕਾਲ ਕਰੋ।",
	LangEnglish: "This is an emergency situation. I'm connecting you to emergency services immediately. For ambulance, call 108.",
}

var noMedicalAdviceMessage = localized{
	LangHindi:   "मैं डॉक्टर नहीं हूं और निदान नहीं दे सकती। हालांकि, मैं आपको अभी एक qualified डॉक्टर के साथ appointment बुक करने में मदद कर सकती हूं जो आपको सही सलाह दे सके। क्या आप आगे बढ़ना चाहेंगे?",
	LangPunjabi: "ਮੈਂ ਡਾਕਟਰ ਨਹੀਂ ਹਾਂ ਅਤੇ ਨਿਦਾਨ ਨਹੀਂ ਦੇ ਸਕਦੀ। ਹਾਲਾਂਕਿ, ਮੈਂ ਤੁਹਾਨੂੰ ਹੁਣੇ ਇੱਕ qualified ਡਾਕਟਰ ਨਾਲ appointment ਬੁਕ ਕਰਨ ਵਿੱਚ ਮਦਦ ਕਰ ਸਕਦੀ ਹਾਂ ਜੋ ਤੁਹਾਨੂੰ ਸਹੀ ਸਲਾਹ ਦੇ ਸਕੇ। ਕੀ ਤੁਸੀਂ ਅੱਗੇ ਵਧਣਾ ਚਾਹੋਗੇ?",
	LangEnglish: "I am not a doctor and cannot provide a diagnosis. However, I can help you book an appointment with a qualified doctor right now who can give you the correct advice. Would you like to proceed?",
}

var generalHelpMessage = localized{
	LangHindi:   "मैं Sehat Sahara ऐप में आपकी मदद करने के लिए हूं। मैं आपकी मदद कर सकती हूं appointment बुक करने, दवाइयों की जानकारी ढूंढने, health records चेक करने और भी बहुत कुछ में। आप क्या मदद चाहते हैं?",
	LangPunjabi: "ਮੈਂ Sehat Sahara ਐਪ ਵਿੱਚ ਤੁਹਾਡੀ ਮਦਦ ਕਰਨ ਲਈ ਹਾਂ। ਮੈਂ ਤੁਹਾਡੀ ਮਦਦ ਕਰ ਸਕਦੀ ਹਾਂ appointment ਬੁਕ ਕਰਨ, ਦਵਾਈਆਂ ਦੀ ਜਾਣਕਾਰੀ ਲੱਭਣ, health records ਚੈਕ ਕਰਨ ਅਤੇ ਵੀ ਬਹੁਤ ਕੁਝ ਵਿੱਚ। ਤੁਸੀਂ ਕੀ ਮਦਦ ਚਾਹੁੰਦੇ ਹੋ?",
	LangEnglish: "I'm here to help you navigate the Sehat Sahara app. I can help you book appointments, find medicine information, check health records, and more. What would you like help with?",
}

var disclaimerMessage = localized{
	LangHindi:   "कृपया याद रखें, यह चिकित्सा सलाह या निदान नहीं है। उचित इलाज के लिए डॉक्टर से परामर्श करना बहुत जरूरी है। क्या आप अभी appointment बुक करना चाहेंगे?",
	LangPunjabi: "ਕਿਰਪਾ ਕਰਕੇ ਯਾਦ ਰੱਖੋ, ਇਹ ਦਵਾਈ ਸਲਾਹ ਜਾਂ ਨਿਦਾਨ ਨਹੀਂ ਹੈ। ਉਚਿਤ ਇਲਾਜ ਲਈ ਡਾਕਟਰ ਨਾਲ ਸਲਾਹ ਕਰਨਾ ਬਹੁਤ ਜ਼ਰੂਰੀ ਹੈ। ਕੀ ਤੁਸੀਂ ਹੁਣੇ appointment ਬੁਕ ਕਰਨਾ ਚਾਹੋਗੇ?",
	LangEnglish: "Please remember, this is not medical advice or a diagnosis. For proper treatment, it is very important to consult with a doctor. Would you like me to help you book an appointment now?",
}

var symptomQuestions = map[string][]string{
	LangHindi: {
		"मैं आपकी मदद करने के लिए हूं। कृपया अपने लक्षणों के बारे में बताएं।",
		"आपको क्या परेशानी हो रही है?",
		"कितने समय से आपको ये समस्या है?",
		"दर्द की तीव्रता 1 से 10 के बीच कितनी है?",
	},
	LangPunjabi: {
		"ਮੈਂ ਤੁਹਾਡੀ ਮਦਦ ਕਰਨ ਲਈ ਹਾਂ। ਕਿਰਪਾ ਕਰਕੇ ਆਪਣੇ ਲੱਛਣਾਂ ਬਾਰੇ ਦੱਸੋ।",
		"ਤੁਹਾਨੂੰ ਕੀ ਪਰੇਸ਼ਾਨੀ ਹੋ ਰਹੀ ਹੈ?",
		"ਕਿੰਨੇ ਸਮੇਂ ਤੋਂ ਤੁਹਾਨੂੰ ਇਹ ਸਮੱਸਿਆ ਹੈ?",
		"ਦਰਦ ਦੀ ਤੀਬਰਤਾ 1 ਤੋਂ 10 ਵਿੱਚੋਂ ਕਿੰਨੀ ਹੈ?",
	},
	LangEnglish: {
		"I am here to help. Please tell me about your symptoms.",
		"What is troubling you?",
		"How long have you been feeling this way?",
		"On a scale of 1 to 10, how severe is the pain?",
	},
}

// precaution categories
const (
	careFever   = "fever"
	careCough   = "cough"
	careStomach = "stomach"
	careGeneral = "general"
)

var precautions = map[string]localized{
	careFever: {
		LangHindi:   "आराम करें और खूब पानी पीएं। मच्छरदानी का इस्तेमाल करें।",
		LangPunjabi: "ਆਰਾਮ ਕਰੋ ਅਤੇ ਖੂਬ ਪਾਣੀ ਪੀਓ। ਮੱਛਰਦਾਨੀ ਦਾ ਇਸਤੇਮਾਲ ਕਰੋ।",
		LangEnglish: "Get plenty of rest and stay hydrated by drinking water or fluids.",
	},
	careCough: {
		LangHindi:   "गर्म पानी के साथ नमक से गरारे करें। अदरक वाली चाय पीएं।",
		LangPunjabi: "ਗਰਮ ਪਾਣੀ ਨਾਲ ਨਮਕ ਨਾਲ ਗਰਾਰੇ ਕਰੋ। ਅਦਰਕ ਵਾਲੀ ਚਾਹ ਪੀਓ।",
		LangEnglish: "Gargle with warm salt water or drink warm fluids like ginger tea.",
	},
	careStomach: {
		LangHindi:   "सादा खाना जैसे खिचड़ी खाएं। ORS घोल पीएं।",
		LangPunjabi: "ਸਾਦਾ ਖਾਣਾ ਜਿਵੇਂ ਖਿਚੜੀ ਖਾਓ। ORS ਘੋਲ ਪੀਓ।",
		LangEnglish: "Eat simple, light foods like khichdi and drink plenty of fluids like ORS.",
	},
	careGeneral: {
		LangHindi:   "आराम करें और खूब तरल पदार्थ पीएं।",
		LangPunjabi: "ਆਰਾਮ ਕਰੋ ਅਤੇ ਖੂਬ ਤਰਲ ਪਦਾਰਥ ਪੀਓ।",
		LangEnglish: "Get plenty of rest and stay hydrated.",
	},
}

var symptomCare = map[string]string{
	"bukhar":   careFever,
	"fever":    careFever,
	"khansi":   careCough,
	"cough":    careCough,
	"dast":     careStomach,
	"ulti":     careStomach,
	"vomiting": careStomach,
	"diarrhea": careStomach,
	"बुखार":    careFever,
	"खांसी":    careCough,
	"ਬੁਖ਼ਾਰ":   careFever,
	"ਖੰਘ":      careCough,
}

// intent replies
var intentMessages = map[intent]localized{
	intentBookAppointment: {
		LangHindi:   "Main aapko doctor ke saath appointment book karne mein madad kar sakti hoon. Aapko kis doctor se milna hai?",
		LangPunjabi: "Main tuhanu doctor naal appointment book karan vich madad kar sakdi haan. Tuhanu kis doctor nu milna hai?",
		LangEnglish: "I can help you book an appointment with a doctor. Let me guide you to the booking section.",
	},
	intentAppointments: {
		LangHindi:   "Main aapki upcoming appointments dikhati hoon.",
		LangPunjabi: "Main tuhadi upcoming appointments dikhandi haan.",
		LangEnglish: "Let me show you your upcoming appointments.",
	},
	intentHealthRecords: {
		LangHindi:   "Main aapke health records le kar aati hoon.",
		LangPunjabi: "Main tuhade health records le ke aandi haan.",
		LangEnglish: "I'll fetch your health records for you.",
	},
	intentMedicineScan: {
		LangHindi:   "Main aapki medicine scan aur identify karne mein madad karungi. Camera feature use kariye.",
		LangPunjabi: "Main tuhadi medicine scan te identify karan vich madad karangi. Camera feature use karo.",
		LangEnglish: "I'll help you scan and identify your medicine. Please use the camera feature.",
	},
	intentPrescription: {
		LangHindi:   "Main aapke prescription ki details aur medicine kaise leni hai ye dikhati hoon.",
		LangPunjabi: "Main tuhade prescription dian details te medicine kive leni hai eh dikhandi haan.",
		LangEnglish: "I'll show you the details of your prescription and how to take your medicines.",
	},
}

var buttonLabels = map[intent]localized{
	intentBookAppointment: {LangEnglish: "Book Appointment", LangHindi: "अपॉइंटमेंट बुक करें", LangPunjabi: "ਅਪਾਇੰਟਮੈਂਟ ਬੁਕ ਕਰੋ"},
	intentAppointments:    {LangEnglish: "My Appointments", LangHindi: "मेरी अपॉइंटमेंट", LangPunjabi: "ਮੇਰੀਆਂ ਅਪਾਇੰਟਮੈਂਟਾਂ"},
	intentHealthRecords:   {LangEnglish: "View Health Records", LangHindi: "स्वास्थ्य रिकॉर्ड देखें", LangPunjabi: "ਸਿਹਤ ਰਿਕਾਰਡ ਵੇਖੋ"},
	intentMedicineScan:    {LangEnglish: "Scan Medicine", LangHindi: "दवाई स्कैन करें", LangPunjabi: "ਦਵਾਈ ਸਕੈਨ ਕਰੋ"},
	intentPrescription:    {LangEnglish: "View Prescription", LangHindi: "प्रिस्क्रिप्शन देखें", LangPunjabi: "ਪ੍ਰਿਸਕ੍ਰਿਪਸ਼ਨ ਵੇਖੋ"},
	intentEmergency:       {LangEnglish: "Call Emergency (%s)", LangHindi: "आपातकालीन कॉल (%s)", LangPunjabi: "ਐਮਰਜੈਂਸੀ ਕਾਲ (%s)"},
}

var noPrescriptionMessage = localized{
	LangEnglish: "I don't see any recent prescriptions for you. If you have a prescription to upload, I can help you with that.",
	LangHindi:   "मैं आपके कोई हालिया प्रिस्क्रिप्शन नहीं देख रही हूं। अगर आपके पास अपलोड करने के लिए प्रिस्क्रिप्शन है, तो मैं मदद कर सकती हूं।",
	LangPunjabi: "ਮੈਂ ਤੁਹਾਡੀਆਂ ਕੋਈ ਹਾਲੀਆ ਪ੍ਰਿਸਕ੍ਰਿਪਸ਼ਨਾਂ ਨਹੀਂ ਵੇਖ ਰਹੀ ਹਾਂ। ਜੇਕਰ ਤੁਹਾਡੇ ਕੋਲ ਅਪਲੋਡ ਕਰਨ ਲਈ ਪ੍ਰਿਸਕ੍ਰਿਪਸ਼ਨ ਹੈ, ਤਾਂ ਮੈਂ ਮਦਦ ਕਰ ਸਕਦੀ ਹਾਂ।",
}

// prescriptionTemplate holds the localized pieces of a prescription summary.
type prescriptionTemplate struct {
	header       string // %s doctor
	more         string // %d remaining medications
	diagnosis    string
	instructions string
	closing      string
	none         string
}

var prescriptionTemplates = map[string]prescriptionTemplate{
	LangEnglish: {
		header:       "Dr. %s has prescribed the following medications:",
		more:         "And %d more medications.",
		diagnosis:    "Diagnosis: ",
		instructions: "Instructions: ",
		closing:      "Please take these medications as directed by your doctor.",
		none:         "No medications were prescribed.",
	},
	LangHindi: {
		header:       "डॉ. %s ने निम्नलिखित दवाइयां लिखी हैं:",
		more:         "और भी %d दवाइयां हैं।",
		diagnosis:    "निदान: ",
		instructions: "निर्देश: ",
		closing:      "कृपया इन दवाइयों को डॉक्टर की सलाह अनुसार ही लें।",
		none:         "कोई दवा नहीं लिखी गई है।",
	},
	LangPunjabi: {
		header:       "ਡਾ. %s ਨੇ ਹੇਠਲੀਆਂ ਦਵਾਈਆਂ ਲਿਖੀਆਂ ਹਨ:",
		more:         "ਅਤੇ ਵੀ %d ਦਵਾਈਆਂ ਹਨ।",
		diagnosis:    "ਨਿਦਾਨ: ",
		instructions: "ਹਦਾਇਤਾਂ: ",
		closing:      "ਕਿਰਪਾ ਕਰਕੇ ਇਹਨਾਂ ਦਵਾਈਆਂ ਨੂੰ ਡਾਕਟਰ ਦੀ ਸਲਾਹ ਅਨੁਸਾਰ ਹੀ ਲਓ।",
		none:         "ਕੋਈ ਦਵਾ ਨਹੀਂ ਲਿਖੀ ਗਈ ਹੈ।",
	},
}
