package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehatsahara/sahara/internal/dispatch"
)

func respond(t *testing.T, a *Assistant, user, text string) dispatch.ChatResponse {
	t.Helper()
	resp, err := a.Respond(context.Background(), user, text)
	require.NoError(t, err)
	return resp
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", LangEnglish},
		{"   ", LangEnglish},
		{"मुझे बुखार है", LangHindi},
		{"ਮੈਨੂੰ ਬੁਖ਼ਾਰ ਹੈ", LangPunjabi},
		{"I need a doctor for my fever", LangEnglish},
		{"mujhe bukhar hai", LangHindi},
		{"sat sri akal ji", LangPunjabi},
		{"12345", LangEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestEmergencyTriggersSOS(t *testing.T) {
	a := New("108", nil)

	resp := respond(t, a, "u1", "My father has chest pain and is unconscious")

	assert.Equal(t, dispatch.ActionTriggerSOS, resp.Action)
	assert.Equal(t, dispatch.Parameters{"emergency_number": "108", "type": "medical_emergency"}, resp.Parameters)
	assert.Equal(t, emergencyMessage[LangEnglish], resp.Text)
	require.Len(t, resp.Buttons, 1)
	assert.Equal(t, dispatch.ButtonEmergencyCall, resp.Buttons[0].Type)
	assert.Equal(t, "Call Emergency (108)", resp.Buttons[0].Text)
	assert.Equal(t, dispatch.StyleDanger, resp.Buttons[0].Style)
	assert.Equal(t, "108", resp.Buttons[0].Parameters.String("emergency_number"))
}

func TestEmergencyInHindi(t *testing.T) {
	a := New("112", nil)

	resp := respond(t, a, "u1", "जल्दी एंबुलेंस भेजो")

	assert.Equal(t, LangHindi, resp.Language)
	assert.Equal(t, dispatch.ActionTriggerSOS, resp.Action)
	assert.Equal(t, "112", resp.Parameters.String("emergency_number"))
	assert.Equal(t, "आपातकालीन कॉल (112)", resp.Buttons[0].Text)
}

func TestPlainHelpIsNotAnEmergency(t *testing.T) {
	a := New("", nil)
	resp := respond(t, a, "u1", "hello, can you help me")
	assert.Equal(t, dispatch.ActionShowAppFeatures, resp.Action)
	assert.Equal(t, generalHelpMessage[LangEnglish], resp.Text)
	assert.Empty(t, resp.Buttons)
}

func TestMedicalAdviceIsDeclined(t *testing.T) {
	a := New("", nil)

	resp := respond(t, a, "u1", "what medicine should I take for my knee")

	assert.Equal(t, noMedicalAdviceMessage[LangEnglish], resp.Text)
	assert.Equal(t, dispatch.ActionNavigateToAppointmentBooking, resp.Action)
	require.Len(t, resp.Buttons, 1)
	assert.Equal(t, dispatch.ButtonAppointmentBooking, resp.Buttons[0].Type)
}

func TestNavigationIntents(t *testing.T) {
	tests := []struct {
		text     string
		typ      dispatch.ButtonType
		action   dispatch.Action
		response dispatch.Action
	}{
		{"I want to book a doctor", dispatch.ButtonAppointmentBooking, dispatch.ActionNavigateToAppointmentBooking, dispatch.ActionNavigateToAppointmentBooking},
		{"show my appointments", "appointments_list", dispatch.ActionFetchAppointments, ""},
		{"open my health records", "health_records", dispatch.ActionFetchHealthRecord, ""},
		{"scan this tablet", dispatch.ButtonMedicineScan, "START_MEDICINE_SCANNER", ""},
		{"show my prescription", dispatch.ButtonPrescriptionView, "FETCH_PRESCRIPTION_DETAILS", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			resp := respond(t, New("", nil), "u1", tt.text)
			assert.Equal(t, tt.response, resp.Action)
			require.Len(t, resp.Buttons, 1)
			assert.Equal(t, tt.typ, resp.Buttons[0].Type)
			assert.Equal(t, tt.action, resp.Buttons[0].Action)
		})
	}
}

func TestSymptomFlowGivesPrecautionsAfterThreeExchanges(t *testing.T) {
	a := New("", nil)

	first := respond(t, a, "u1", "I have fever since yesterday")
	assert.Equal(t, dispatch.ActionContinueSymptomCheck, first.Action)
	assert.Equal(t, symptomQuestions[LangEnglish][1], first.Text)

	second := respond(t, a, "u1", "also some cough")
	assert.Equal(t, dispatch.ActionContinueSymptomCheck, second.Action)
	assert.Equal(t, symptomQuestions[LangEnglish][2], second.Text)

	third := respond(t, a, "u1", "two days")
	assert.Equal(t, dispatch.ActionNavigateToAppointmentBooking, third.Action)
	assert.Equal(t, precautions[careFever][LangEnglish]+"\n\n"+disclaimerMessage[LangEnglish], third.Text)
	require.Len(t, third.Buttons, 1)
	assert.Equal(t, dispatch.ButtonAppointmentBooking, third.Buttons[0].Type)

	again := respond(t, a, "u1", "hello")
	assert.Equal(t, dispatch.ActionShowAppFeatures, again.Action, "conversation starts over")
}

func TestSymptomFlowKeepsLanguage(t *testing.T) {
	a := New("", nil)

	first := respond(t, a, "u1", "mujhe bukhar hai")
	require.Equal(t, LangHindi, first.Language)

	second := respond(t, a, "u1", "two days, what is troubling")
	assert.Equal(t, LangHindi, second.Language, "language is fixed for the conversation")
	assert.Equal(t, symptomQuestions[LangHindi][2], second.Text)
}

func TestGeneralPrecautionWithoutKnownSymptom(t *testing.T) {
	a := New("", nil)
	respond(t, a, "u1", "I feel tired")
	respond(t, a, "u1", "and weak")
	last := respond(t, a, "u1", "since monday")

	assert.Equal(t, precautions[careGeneral][LangEnglish]+"\n\n"+disclaimerMessage[LangEnglish], last.Text)
}

func TestUsersHaveIndependentConversations(t *testing.T) {
	a := New("", nil)
	respond(t, a, "u1", "I have a cough")

	other := respond(t, a, "u2", "hello")
	assert.Equal(t, dispatch.ActionShowAppFeatures, other.Action)

	cont := respond(t, a, "u1", "since monday")
	assert.Equal(t, dispatch.ActionContinueSymptomCheck, cont.Action)
}

func TestResetAndPrune(t *testing.T) {
	a := New("", nil)
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	respond(t, a, "u1", "I have a cough")
	a.Reset("u1")
	resp := respond(t, a, "u1", "since monday")
	assert.Equal(t, dispatch.ActionShowAppFeatures, resp.Action)

	respond(t, a, "u2", "hi")
	now = now.Add(2 * time.Hour)
	respond(t, a, "u3", "hi")
	assert.Equal(t, 2, a.Prune(time.Hour))
}

func TestSupportedLanguages(t *testing.T) {
	assert.Equal(t, []string{"hi", "pa", "en"}, SupportedLanguages())
}
