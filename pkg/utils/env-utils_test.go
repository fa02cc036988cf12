package utils

import "testing"

func TestGenerateEnvVarName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "relay", expected: "RELAY"},
		{input: "smtp-relay.example.org", expected: "SMTP_RELAY_EXAMPLE_ORG"},
		{input: "  mail  server ", expected: "MAIL_SERVER"},
		{input: "--x--", expected: "X"},
		{input: "", expected: ""},
		{input: "...", expected: ""},
	}
	for _, tt := range tests {
		if got := GenerateEnvVarName(tt.input); got != tt.expected {
			t.Errorf("GenerateEnvVarName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGenerateSmtpPasswordEnvVarName(t *testing.T) {
	if got := GenerateSmtpPasswordEnvVarName("smtp.gmail.com"); got != "SMTP_PASSWORD_FOR_SMTP_GMAIL_COM" {
		t.Errorf("unexpected name: %s", got)
	}
}
