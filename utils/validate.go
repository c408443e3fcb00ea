package utils

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks the basic local@domain.tld shape. Anything stricter
// belongs to the mail transport, not to us.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsStrongPassword enforces the minimum password length.
func IsStrongPassword(pw string) bool {
	return len(pw) >= 6
}

// NormalizeEmail lowercases and trims an address so uniqueness checks and
// comparisons always see the same form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
