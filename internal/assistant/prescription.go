package assistant

import (
	"fmt"
	"strings"
)

const listedMedications = 3

// SummarizePrescription renders a prescription summary returned by the backend as chat text.
// It matches dispatch.PrescriptionFormatter.
func SummarizePrescription(summary map[string]any, lang string) string {
	if len(summary) == 0 {
		return noPrescriptionMessage.get(lang)
	}
	tpl, ok := prescriptionTemplates[lang]
	if !ok {
		tpl = prescriptionTemplates[LangEnglish]
	}

	meds, _ := summary["medications"].([]any)
	if len(meds) == 0 {
		return tpl.none
	}

	doctor := stringField(summary, "doctor_name")
	if doctor == "" {
		doctor = "Doctor"
	}

	var b strings.Builder
	fmt.Fprintf(&b, tpl.header, doctor)
	for i, m := range meds {
		if i == listedMedications {
			break
		}
		med, _ := m.(map[string]any)
		name := stringField(med, "name")
		if name == "" {
			name = "Unknown"
		}
		line := strings.TrimSpace(strings.Join([]string{name, stringField(med, "dosage"), stringField(med, "frequency")}, " "))
		b.WriteString("\n• " + line)
	}
	if extra := len(meds) - listedMedications; extra > 0 {
		b.WriteString("\n\n" + fmt.Sprintf(tpl.more, extra))
	}
	if d := stringField(summary, "diagnosis"); d != "" {
		b.WriteString("\n\n" + tpl.diagnosis + d)
	}
	if ins := stringField(summary, "instructions"); ins != "" {
		b.WriteString("\n\n" + tpl.instructions + ins)
	}
	b.WriteString("\n\n" + tpl.closing)
	return b.String()
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
