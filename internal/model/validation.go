package model

import (
	"regexp"
	"strings"
)

// emailPattern accepts local@domain.tld with a single @ and no whitespace.
// RE2's \s is ASCII only, so vertical tab, Unicode separators (\p{Z}) and
// the byte order mark are excluded explicitly.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
