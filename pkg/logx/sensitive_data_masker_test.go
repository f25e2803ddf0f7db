package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quotehub/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Applicant name and email",
			input:  []byte(`{"firstName":"Jane","lastName":"Doe","email":"jane@doe.com","state":"TX"}`),
			output: []byte(`{"firstName":"[MASKED]","lastName":"[MASKED]","email":"[MASKED]","state":"TX"}`),
		},
		{
			name:   "Contact details",
			input:  []byte(`{"phone": "5125550100", "dateOfBirth": "1990-01-01", "address": "1 Main St", "zipCode": "78701"}`),
			output: []byte(`{"phone": "[MASKED]", "dateOfBirth": "[MASKED]", "address": "[MASKED]", "zipCode": "78701"}`),
		},
		{
			name:   "Vehicle VIN",
			input:  []byte(`{"vehicles":[{"year":2020,"make":"Honda","vin":"1HGCM82633A004352"}]}`),
			output: []byte(`{"vehicles":[{"year":2020,"make":"Honda","vin":"[MASKED]"}]}`),
		},
		{
			name:   "OAuth credentials",
			input:  []byte(`{"client_id":"agency","client_secret":"s3cr3t","access_token":"eyJhbGciOi"}`),
			output: []byte(`{"client_id":"agency","client_secret":"[MASKED]","access_token":"[MASKED]"}`),
		},
		{
			name:   "OAuth token form",
			input:  []byte("client_id=agency&client_secret=S3CRET&grant_type=client_credentials"),
			output: []byte("client_id=agency&client_secret=[MASKED]&grant_type=client_credentials"),
		},
		{
			name:   "Momentum applicant",
			input:  []byte(`{"firstName":"Jane","birthDate":"1988-04-12","street":"1 Congress Ave","city":"Austin","postalCode":"78701"}`),
			output: []byte(`{"firstName":"[MASKED]","birthDate":"[MASKED]","street":"[MASKED]","city":"Austin","postalCode":"[MASKED]"}`),
		},
		{
			name:   "TurboRater applicant",
			input:  []byte(`{"dob":"1988-04-12","address":{"street":"1 Congress Ave","state":"TX","zip":"78701"}}`),
			output: []byte(`{"dob":"[MASKED]","address":{"street":"[MASKED]","state":"TX","zip":"[MASKED]"}}`),
		},
		{
			name:   "Headers",
			input:  []byte("POST /quote HTTP/1.1\r\nAuthorization: Bearer abc.def\r\nX-Api-Key: k-123\r\n"),
			output: []byte("POST /quote HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\nX-Api-Key: [MASKED]\r\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestDump(t *testing.T) {
	rq := require.New(t)
	masker := logx.NewSensitiveDataMasker()

	rq.Equal(`{"vin":"[MASKED]"}`, logx.Dump(masker, []byte(`{"vin":"1HGCM82633A004352"}`), 0))
	rq.Equal(`{"vin":"[MA`, logx.Dump(masker, []byte(`{"vin":"1HGCM82633A004352"}`), 11))
	rq.Equal("abc", logx.Dump(logx.NopSensitiveDataMasker{}, []byte("abc"), 10))
}
