package validators

import (
	"strings"
	"unicode"
)

const phoneDigits = 10

// NormalizePhone removes whitespace and accepts exactly ten digits
// (area code + number, no country prefix).
func NormalizePhone(raw string) (string, bool) {
	phone := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if len(phone) != phoneDigits {
		return "", false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return phone, true
}
