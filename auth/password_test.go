package auth

import "testing"

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		ok       bool
	}{
		{"abc1!", false},      // too short
		{"123456!", false},    // no letter
		{"abcdef!", false},    // no digit
		{"abcdef1", false},    // no special character
		{"abcde1!", true},
		{"Tr4vel^together", true},
	}

	for _, tc := range tests {
		reason := checkPasswordStrength(tc.password)
		if tc.ok && reason != "" {
			t.Errorf("password %q should be accepted, got %q", tc.password, reason)
		}
		if !tc.ok && reason == "" {
			t.Errorf("password %q should be rejected", tc.password)
		}
	}
}
