package utils

import (
	"net/mail"
	"strings"
)

// ValidateEmailFormat reports whether addr parses as an RFC 5322 address.
func ValidateEmailFormat(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	_, err := mail.ParseAddress(addr)
	return err == nil
}

// ValidatePasswordStrength enforces the minimum password policy.
func ValidatePasswordStrength(password string) bool {
	return len(strings.TrimSpace(password)) >= 8
}
