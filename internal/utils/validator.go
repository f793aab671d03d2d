package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex = regexp.MustCompile(`^0\d{9,10}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// ValidatePhone validates a local-format phone number (leading zero plus
// 9-10 digits).
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateEmail validates an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizePhone strips whitespace from a phone number.
func SanitizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// SanitizeEmail lowercases and trims an email address.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
