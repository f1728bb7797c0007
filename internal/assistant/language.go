package assistant

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	LangHindi   = "hi"
	LangPunjabi = "pa"
	LangEnglish = "en"
)

// SupportedLanguages lists the language codes the assistant answers in.
func SupportedLanguages() []string {
	return []string{LangHindi, LangPunjabi, LangEnglish}
}

// Romanized keyword sets. Scoring counts every matching word, so shared words such as
// "doctor" do not decide the language on their own.
var languageWords = []struct {
	lang string
	re   *regexp.Regexp
}{
	{LangHindi, regexp.MustCompile(`\b(hai|kya|kaise|kab|kahan|meri|mera|teri|tera|chahiye|leni|karna|karne|nahi|bhi|par|aur|bukhar|dard|khansi|tabiyat|kharaab|bimari|doctor|appointment|madad|help|namaste|kaun|kaisa|kitna|kabhi|bas|ek|do|teen|char|paanch|cheh|saat|aath|nau|das|mujhe|hoon)\b`)},
	{LangPunjabi, regexp.MustCompile(`\b(hai|ki|kive|kado|kithe|meri|mera|teri|tera|chahidi|leni|karna|karne|nahin|bhi|par|aur|bukhar|dukh|khansi|tabiyat|kharaab|bimari|doctor|appointment|madad|help|sat|sri|akal|kinne|kithon|kivein|bas|ate|ik|do|tin|char|panj|chhe|satt|atth|nau|das|mainu|tuhanu)\b`)},
	{LangEnglish, regexp.MustCompile(`\b(the|is|are|do|have|my|i|you|this|that|what|how|when|where|why|fever|headache|pain|cough|cold|doctor|appointment|help|medicine|hello|hi|yes|no|please|thank|thanks|need|want|has|had|will|would|can|could|should|take|get|give|make|go|come|see|look|find|book|schedule|health|sick|hurt|ache|problem|issue|emergency|urgent)\b`)},
}

// DetectLanguage returns hi for Devanagari text, pa for Gurmukhi, otherwise the language
// whose romanized keywords match most often. Ties go to hi, then pa. Empty text is en.
func DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return LangEnglish
	}
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Devanagari, r):
			return LangHindi
		case unicode.Is(unicode.Gurmukhi, r):
			return LangPunjabi
		}
	}

	lower := strings.ToLower(text)
	best, bestScore := LangEnglish, 0
	for _, lw := range languageWords {
		if n := len(lw.re.FindAllStringIndex(lower, -1)); n > bestScore {
			best, bestScore = lw.lang, n
		}
	}
	return best
}

// containsAny reports whether lower contains any of the phrases.
func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
