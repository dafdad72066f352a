package email

import (
	"strings"
)

// UsernameFromEmail returns the local part of an address. An address without
// an '@' is returned unchanged.
func UsernameFromEmail(email string) string {
	if at := strings.LastIndexByte(email, '@'); at >= 0 {
		return email[:at]
	}
	return email
}

// DomainFromEmail returns the host part of an address, or "" when there is none.
func DomainFromEmail(email string) string {
	if at := strings.LastIndexByte(email, '@'); at >= 0 {
		return email[at+1:]
	}
	return ""
}

// Normalize trims surrounding whitespace and lowercases the host part.
// The local part keeps its case.
func Normalize(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
