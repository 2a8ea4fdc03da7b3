// Package user resolves the local account name, used as the default
// assignee for tasks created from this machine.
package user

import (
	"os"
	"os/user"
	"unicode"
)

// CurrentName returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "" - callers treat an empty name as unassigned
func CurrentName() string {
	currentUser, err := user.Current()
	if err != nil {
		return os.Getenv("USER")
	}
	return currentUser.Username
}

// DisplayName is CurrentName with the first letter upper-cased, the
// form shown on task cards.
func DisplayName() string {
	name := CurrentName()
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
