package utils

import (
	"strings"
	"unicode"
)

// Phone numbers are stored in canonical international form: "+" followed by
// country code and national number digits, no separators. The primary
// market uses Pakistan's 0-leading 11-digit local plan, so local 03x and
// 0092 forms get an explicit +92 substitution. Historical records may hold
// either local or international forms; PhoneNumberVariants expands a number
// into every plausible stored representation for lookups.

// NormalizePhoneNumber converts arbitrary phone input into canonical form.
// Idempotent: normalizing an already-normalized number is a no-op. Empty
// input is returned unchanged.
func NormalizePhoneNumber(phone string) string {
	if phone == "" {
		return phone
	}

	phone = stripWhitespace(phone)

	// Already canonical: + followed by digits only
	if strings.HasPrefix(phone, "+") && isDigits(phone[1:]) && len(phone) > 1 {
		return phone
	}

	// Local-with-leading-zero forms needing a country-code substitution
	if strings.HasPrefix(phone, "0") && len(phone) > 10 &&
		(strings.HasPrefix(phone, "03") || strings.HasPrefix(phone, "0092")) {
		if strings.HasPrefix(phone, "0092") {
			return "+" + phone[2:] // 0092... -> +92...
		}
		return "+92" + phone[1:] // 03... -> +923...
	}

	// Country code entered without the + prefix
	if len(phone) > 7 && phone[0] != '+' && phone[0] != '0' && isDigits(phone) {
		return "+" + phone
	}

	if isDigits(phone) {
		if strings.HasPrefix(phone, "0") {
			// Local number with no known country code, keep as is
			return phone
		}
		if len(phone) > 7 {
			return "+" + phone
		}
		return phone
	}

	// + mixed with separators: keep the digits after the first +
	if idx := strings.Index(phone, "+"); idx >= 0 {
		return "+" + keepDigits(phone[idx+1:])
	}

	// Colon-prefixed forms, e.g. "tel:923001234567"
	if idx := strings.Index(phone, ":"); idx >= 0 {
		rest := phone[idx+1:]
		if rest != "" {
			if strings.HasPrefix(rest, "0") {
				return "+" + rest[1:]
			}
			return "+" + rest
		}
	}

	digits := keepDigits(phone)
	if len(digits) > 7 {
		return "+" + digits
	}
	return digits
}

// PhoneNumberVariants generates the plausible equivalent representations of
// a phone number for matching against inconsistently stored data. The
// result always contains the original and normalized forms and is
// deduplicated. Never used for storage.
func PhoneNumberVariants(phone string) []string {
	if phone == "" {
		return nil
	}

	variants := []string{phone}
	normalized := NormalizePhoneNumber(phone)
	if normalized != phone {
		variants = append(variants, normalized)
	}

	// Local Pakistani format (03xxxxxxxxx) -> international forms
	if strings.HasPrefix(phone, "03") && len(phone) >= 11 {
		variants = append(variants, "+92"+phone[1:], "92"+phone[1:])
	}

	// International Pakistani format -> local 0-leading form
	if (strings.HasPrefix(phone, "+92") && len(phone) >= 12) ||
		(strings.HasPrefix(phone, "92") && len(phone) >= 11) {
		var local string
		if strings.HasPrefix(phone, "+") {
			local = phone[3:]
		} else {
			local = phone[2:]
		}
		variants = append(variants, "0"+local)
	}

	switch {
	case strings.HasPrefix(normalized, "+"):
		variants = append(variants, normalized[1:], "0"+normalized[1:])
	case len(normalized) > 10 && !strings.HasPrefix(normalized, "0") && isDigits(normalized):
		variants = append(variants, "+"+normalized, "0"+normalized)
	case strings.HasPrefix(normalized, "0") && len(normalized) > 10:
		noZero := normalized[1:]
		variants = append(variants, noZero, "+"+noZero, "+92"+noZero, "92"+noZero)
	case isDigits(normalized) && normalized != "":
		if strings.HasPrefix(normalized, "0") {
			variants = append(variants, normalized[1:])
		} else {
			variants = append(variants, "0"+normalized)
		}
	}

	return dedupe(variants)
}

// MeaningfulDigits counts the digits in a phone number, ignoring the +
// prefix and separators. Used for minimum-length validation.
func MeaningfulDigits(phone string) int {
	return len(keepDigits(phone))
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
