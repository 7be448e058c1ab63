package usecase

import "strings"

const minPasswordLength = 5

// NormalizeEmail lower-cases the domain part of an address while keeping
// the local part verbatim. Addresses without '@' are returned unchanged.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// ValidateEmail checks that the address has non-empty local and domain parts.
func ValidateEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t\r\n")
}

// ValidatePassword enforces the minimum credential length.
func ValidatePassword(password string) bool {
	return len(password) >= minPasswordLength
}
