package utils

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9]+`)

// GenerateEnvVarName upper-cases input and replaces every run of
// non-alphanumeric characters with a single underscore.
func GenerateEnvVarName(input string) string {
	normalized := nonAlphanumeric.ReplaceAllString(strings.ToUpper(input), "_")
	return strings.Trim(normalized, "_")
}

// GenerateSmtpPasswordEnvVarName returns the variable that overrides the
// password of an SMTP server. Format: SMTP_PASSWORD_FOR_{NORMALIZED_HOST}
func GenerateSmtpPasswordEnvVarName(host string) string {
	return "SMTP_PASSWORD_FOR_" + GenerateEnvVarName(host)
}
