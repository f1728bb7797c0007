package dispatch

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

var unicodeEscapeRun = regexp.MustCompile(`(?i)(?:\\u[0-9a-f]{4})+`)

// DecodeUnicode replaces JSON-style \uXXXX escapes with the characters they encode.
// Surrogate pairs are joined; lone surrogates and malformed escapes are left verbatim.
func DecodeUnicode(message string) string {
	if !strings.Contains(message, `\u`) && !strings.Contains(message, `\U`) {
		return message
	}
	return unicodeEscapeRun.ReplaceAllStringFunc(message, decodeEscapeRun)
}

func decodeEscapeRun(run string) string {
	n := len(run) / 6
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseUint(run[i*6+2:i*6+6], 16, 16)
		if err != nil {
			return run
		}
		units[i] = uint16(v)
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		u := rune(units[i])
		switch {
		case utf16.IsSurrogate(u) && i+1 < n:
			if r := utf16.DecodeRune(u, rune(units[i+1])); r != unicode.ReplacementChar {
				b.WriteRune(r)
				i++
				continue
			}
			b.WriteString(run[i*6 : i*6+6])
		case utf16.IsSurrogate(u):
			b.WriteString(run[i*6 : i*6+6])
		default:
			b.WriteRune(u)
		}
	}
	return b.String()
}
