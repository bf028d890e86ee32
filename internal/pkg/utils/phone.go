package utils

import (
	"strings"
)

// NormalizePhoneDigits trims spaces, removes all inner spaces and dashes, and strips a single leading '+'.
func NormalizePhoneDigits(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.TrimPrefix(s, "+")
	return s
}

// TelHref builds a tel: link that keeps the international '+' when the number had one.
func TelHref(phone string) string {
	digits := NormalizePhoneDigits(phone)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "tel:+" + digits
	}
	return "tel:" + digits
}

// WhatsAppHref builds a wa.me link for the number.
func WhatsAppHref(phone string) string {
	digits := NormalizePhoneDigits(phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}
