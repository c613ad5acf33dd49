package utils

import (
	"fmt"
	"strings"

	"backend/internal/domain"
)

// FormatName trims and uppercases, accents preserved. Total.
func FormatName(nome string) string {
	return strings.ToUpper(strings.TrimSpace(nome))
}

// FormatPhone normalizes a raw phone into "DD NNNNN-NNNN" using the
// given area-code literal and the input's 9 trailing digits. A leading
// country code (55) is stripped when the number is longer than 11
// digits. Inputs with fewer than 11 significant digits are rejected;
// padding short numbers with zeros would fabricate contact data.
func FormatPhone(raw, ddd string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		digits = digits[2:]
	}
	if len(digits) > 11 {
		digits = digits[len(digits)-11:]
	}
	if len(digits) < 11 {
		return "", domain.ValidationError{
			Field: "telefone",
			Msg:   "informe DDD + número com 11 dígitos",
		}
	}

	sub := digits[len(digits)-9:]
	return fmt.Sprintf("%s %s-%s", ddd, sub[:5], sub[5:]), nil
}
