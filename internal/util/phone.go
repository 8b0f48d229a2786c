package util

import (
	"regexp"
	"strings"
)

var reNonDigit = regexp.MustCompile(`\D`)

// NormalizePhone reduces a raw phone value to the local digits-only form.
// "+886 912-345-678" and "912345678" both come out as "0912345678".
// No length or checksum validation; unrecognized shapes pass through as
// their bare digits.
func NormalizePhone(raw string) string {
	digits := reNonDigit.ReplaceAllString(raw, "")
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "886") {
		return "0" + strings.TrimPrefix(digits, "886")
	}
	if len(digits) == 9 && strings.HasPrefix(digits, "9") {
		return "0" + digits
	}
	return digits
}
