// Package validation holds input validation rules for credentials and
// public profile fields.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

const (
	minPasswordLen = 12
	maxPasswordLen = 128
	maxEmailLen    = 254
)

var displayNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// Names that collide with route segments or would be misleading as authors.
var reservedDisplayNames = map[string]struct{}{
	"admin":         {},
	"api":           {},
	"auth":          {},
	"settings":      {},
	"users":         {},
	"posts":         {},
	"comments":      {},
	"categories":    {},
	"readinglists":  {},
	"notifications": {},
	"search":        {},
	"reports":       {},
	"feedback":      {},
	"ws":            {},
	"swagger":       {},
	"metrics":       {},
	"login":         {},
	"signup":        {},
	"deleted-user":  {},
}

// ValidatePassword enforces the password policy: 12 to 128 characters with
// at least one upper, one lower, one digit, and one special character.
func ValidatePassword(password string) error {
	runes := []rune(password)
	if len(runes) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if len(runes) > maxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", maxPasswordLen)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("password must contain upper and lower case letters, a digit, and a special character")
	}
	return nil
}

// ValidateDisplayName validates display name format and reserved names.
func ValidateDisplayName(name string) error {
	if !displayNameRegex.MatchString(name) {
		return fmt.Errorf("display name must be 3-30 characters and contain only letters, numbers, underscores, and hyphens")
	}

	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") ||
		strings.HasPrefix(name, "_") || strings.HasSuffix(name, "_") {
		return fmt.Errorf("display name cannot start or end with a hyphen or underscore")
	}

	if _, exists := reservedDisplayNames[strings.ToLower(name)]; exists {
		return fmt.Errorf("display name is reserved")
	}

	return nil
}

// ValidateEmail checks address format and overall length.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLen {
		return fmt.Errorf("email must be at most %d characters", maxEmailLen)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}
	if strings.HasSuffix(email, ".") {
		return fmt.Errorf("invalid email address")
	}
	if strings.Contains(email, " ") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
