// Package assistant is the built-in rule-based navigator used when no remote chatbot is
// configured. It never gives medical advice: it routes users to app features, runs a short
// symptom questionnaire with general precautions, and escalates emergencies.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sehatsahara/sahara/internal/dispatch"
)

// symptomExchanges is how many user messages the questionnaire collects before it
// gives precautions and recommends a doctor.
const symptomExchanges = 3

type stage int

const (
	stageInitial stage = iota
	stageUnderstanding
	stageSymptomCheck
)

type conversation struct {
	language     string
	stage        stage
	symptomCount int
	symptoms     []string
	lastSeen     time.Time
}

type Assistant struct {
	mu              sync.Mutex
	conversations   map[string]*conversation
	emergencyNumber string
	logger          *zap.Logger
	now             func() time.Time
}

func New(emergencyNumber string, logger *zap.Logger) *Assistant {
	if emergencyNumber == "" {
		emergencyNumber = "108"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		conversations:   make(map[string]*conversation),
		emergencyNumber: emergencyNumber,
		logger:          logger,
		now:             time.Now,
	}
}

// Respond answers one user message. The language is detected on the first message of a
// conversation and kept until the conversation resets.
func (a *Assistant) Respond(_ context.Context, userID, text string) (dispatch.ChatResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c := a.conversation(userID)
	if c.stage == stageInitial {
		c.language = DetectLanguage(text)
		c.stage = stageUnderstanding
	}
	lang := c.language
	lower := strings.ToLower(text)

	if containsAny(lower, keywordsFor(emergencyKeywords, lang)) {
		a.logger.Warn("assistant: emergency detected", zap.String("user_id", userID), zap.String("language", lang))
		return a.emergency(lang), nil
	}

	if in := detectIntent(lower); in != intentNone {
		return a.navigate(in, lang), nil
	}

	if containsAny(lower, keywordsFor(medicalAdviceKeywords, lang)) {
		a.logger.Info("assistant: declined medical advice request", zap.String("user_id", userID))
		return dispatch.ChatResponse{
			Language:   lang,
			Text:       noMedicalAdviceMessage.get(lang),
			Action:     dispatch.ActionNavigateToAppointmentBooking,
			Parameters: dispatch.Parameters{},
			Buttons:    []dispatch.ButtonSpec{a.button(intentBookAppointment, lang)},
		}, nil
	}

	if c.stage == stageSymptomCheck {
		return a.continueSymptomCheck(c, lower), nil
	}
	return a.initialInquiry(c, lower), nil
}

// Reset forgets the user's conversation.
func (a *Assistant) Reset(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.conversations, userID)
}

// Prune forgets conversations idle for longer than maxAge and returns how many were dropped.
func (a *Assistant) Prune(maxAge time.Duration) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.now()
	n := 0
	for id, c := range a.conversations {
		if now.Sub(c.lastSeen) > maxAge {
			delete(a.conversations, id)
			n++
		}
	}
	return n
}

func (a *Assistant) conversation(userID string) *conversation {
	c, ok := a.conversations[userID]
	if !ok {
		c = &conversation{language: LangEnglish}
		a.conversations[userID] = c
	}
	c.lastSeen = a.now()
	return c
}

func (a *Assistant) emergency(lang string) dispatch.ChatResponse {
	return dispatch.ChatResponse{
		Language: lang,
		Text:     emergencyMessage.get(lang),
		Action:   dispatch.ActionTriggerSOS,
		Parameters: dispatch.Parameters{
			"emergency_number": a.emergencyNumber,
			"type":             "medical_emergency",
		},
		Buttons: []dispatch.ButtonSpec{a.button(intentEmergency, lang)},
	}
}

func (a *Assistant) navigate(in intent, lang string) dispatch.ChatResponse {
	resp := dispatch.ChatResponse{
		Language:   lang,
		Text:       intentMessages[in].get(lang),
		Parameters: dispatch.Parameters{},
		Buttons:    []dispatch.ButtonSpec{a.button(in, lang)},
	}
	if in == intentBookAppointment {
		resp.Action = dispatch.ActionNavigateToAppointmentBooking
	}
	return resp
}

func (a *Assistant) initialInquiry(c *conversation, lower string) dispatch.ChatResponse {
	found := detectSymptoms(lower, c.language)
	if len(found) == 0 {
		return dispatch.ChatResponse{
			Language:   c.language,
			Text:       generalHelpMessage.get(c.language),
			Action:     dispatch.ActionShowAppFeatures,
			Parameters: dispatch.Parameters{},
		}
	}

	c.stage = stageSymptomCheck
	c.symptomCount = 1
	c.symptoms = found
	return a.nextQuestion(c)
}

func (a *Assistant) continueSymptomCheck(c *conversation, lower string) dispatch.ChatResponse {
	c.symptoms = appendUnique(c.symptoms, detectSymptoms(lower, c.language)...)
	c.symptomCount++

	if c.symptomCount < symptomExchanges {
		return a.nextQuestion(c)
	}

	lang := c.language
	text := precautionFor(c.symptoms, lang) + "\n\n" + disclaimerMessage.get(lang)

	c.stage = stageInitial
	c.symptomCount = 0
	c.symptoms = nil

	return dispatch.ChatResponse{
		Language:   lang,
		Text:       text,
		Action:     dispatch.ActionNavigateToAppointmentBooking,
		Parameters: dispatch.Parameters{},
		Buttons:    []dispatch.ButtonSpec{a.button(intentBookAppointment, lang)},
	}
}

func (a *Assistant) nextQuestion(c *conversation) dispatch.ChatResponse {
	questions, ok := symptomQuestions[c.language]
	if !ok {
		questions = symptomQuestions[LangEnglish]
	}
	i := min(c.symptomCount, len(questions)-1)
	return dispatch.ChatResponse{
		Language:   c.language,
		Text:       questions[i],
		Action:     dispatch.ActionContinueSymptomCheck,
		Parameters: dispatch.Parameters{},
	}
}

func (a *Assistant) button(in intent, lang string) dispatch.ButtonSpec {
	label := buttonLabels[in].get(lang)
	switch in {
	case intentBookAppointment:
		return dispatch.ButtonSpec{Type: dispatch.ButtonAppointmentBooking, Text: label,
			Action: dispatch.ActionNavigateToAppointmentBooking, Style: dispatch.StylePrimary}
	case intentAppointments:
		return dispatch.ButtonSpec{Type: "appointments_list", Text: label,
			Action: dispatch.ActionFetchAppointments, Style: dispatch.StyleSecondary}
	case intentHealthRecords:
		return dispatch.ButtonSpec{Type: "health_records", Text: label,
			Action: dispatch.ActionFetchHealthRecord, Style: dispatch.StyleSecondary}
	case intentMedicineScan:
		return dispatch.ButtonSpec{Type: dispatch.ButtonMedicineScan, Text: label,
			Action: "START_MEDICINE_SCANNER", Style: dispatch.StyleSecondary}
	case intentPrescription:
		return dispatch.ButtonSpec{Type: dispatch.ButtonPrescriptionView, Text: label,
			Action: "FETCH_PRESCRIPTION_DETAILS", Style: dispatch.StyleSecondary}
	case intentEmergency:
		return dispatch.ButtonSpec{Type: dispatch.ButtonEmergencyCall, Text: fmt.Sprintf(label, a.emergencyNumber),
			Action: dispatch.ActionTriggerSOS, Style: dispatch.StyleDanger,
			Parameters: dispatch.Parameters{"emergency_number": a.emergencyNumber}}
	}
	return dispatch.ButtonSpec{}
}

func keywordsFor(table map[string][]string, lang string) []string {
	if kw, ok := table[lang]; ok {
		return kw
	}
	return table[LangEnglish]
}

func detectIntent(lower string) intent {
	for _, ik := range intentKeywords {
		if containsAny(lower, ik.keywords) {
			return ik.intent
		}
	}
	return intentNone
}

func detectSymptoms(lower, lang string) []string {
	var found []string
	for _, kw := range keywordsFor(symptomKeywords, lang) {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// precautionFor returns the advice for the first symptom with a known category.
func precautionFor(symptoms []string, lang string) string {
	for _, s := range symptoms {
		if cat, ok := symptomCare[s]; ok {
			return precautions[cat].get(lang)
		}
	}
	return precautions[careGeneral].get(lang)
}

func appendUnique(list []string, items ...string) []string {
	for _, it := range items {
		dup := false
		for _, l := range list {
			if l == it {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, it)
		}
	}
	return list
}
