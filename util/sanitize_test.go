package util

import "testing"

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "jane.doe@example.com", "jane.doe@example.com"},
		{"surrounding whitespace", "  jane  ", "jane"},
		{"control characters", "ja\x00ne\x1b", "jane"},
		{"embedded newline", "jane\ndoe", "janedoe"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeString(tt.input); got != tt.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane.Doe@Example.COM "); got != "jane.doe@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"short", "*****"},
		{"12345678", "********"},
		{"eyJhbGciOiJIUzI1NiJ9", "eyJh...NiJ9"},
	}
	for _, tt := range tests {
		if got := MaskSecret(tt.input); got != tt.want {
			t.Errorf("MaskSecret(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
