package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Headers.
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile("(?s)(X-Api-Key: ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`(?s)("clientSecret":\s?").+?(")`),
	regexp.MustCompile(`(?s)("client_secret":\s?").+?(")`),
	regexp.MustCompile(`(?s)("access_token":\s?").+?(")`),
	regexp.MustCompile(`(?s)("firstName":\s?").+?(")`),
	regexp.MustCompile(`(?s)("lastName":\s?").+?(")`),
	regexp.MustCompile(`(?s)("dateOfBirth":\s?").+?(")`),
	regexp.MustCompile(`(?s)("email":\s?").+?(")`),
	regexp.MustCompile(`(?s)("phone":\s?").+?(")`),
	regexp.MustCompile(`(?s)("address":\s?").+?(")`),
	regexp.MustCompile(`(?s)("vin":\s?").+?(")`),
	// Vendor spellings of the applicant fields.
	regexp.MustCompile(`(?s)("dob":\s?").+?(")`),
	regexp.MustCompile(`(?s)("birthDate":\s?").+?(")`),
	regexp.MustCompile(`(?s)("street":\s?").+?(")`),
	regexp.MustCompile(`(?s)("postalCode":\s?").+?(")`),
	regexp.MustCompile(`(?s)("zip":\s?").+?(")`),
	// Form fields.
	regexp.MustCompile(`(client_secret=)[^&\s]+()`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}

type NopSensitiveDataMasker struct{}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
