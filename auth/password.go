package auth

import "regexp"

var (
	hasLetter  = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit   = regexp.MustCompile(`\d`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)
)

// checkPasswordStrength returns an empty string for acceptable passwords,
// otherwise the reason to show the user.
func checkPasswordStrength(password string) string {
	if len(password) < 6 {
		return "Password must be at least 6 characters long."
	}
	if !hasLetter.MatchString(password) {
		return "Password must contain at least one letter."
	}
	if !hasDigit.MatchString(password) {
		return "Password must contain at least one number."
	}
	if !hasSpecial.MatchString(password) {
		return "Password must contain at least one special character."
	}
	return ""
}
