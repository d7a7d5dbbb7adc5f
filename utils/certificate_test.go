package utils

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCertificateNumberFormat(t *testing.T) {
	number := GenerateCertificateNumber()

	parts := strings.Split(number, "-")
	require.Len(t, parts, 4)
	assert.Equal(t, "TOS", parts[0])
	assert.Equal(t, "CERT", parts[1])
	assert.Len(t, parts[3], 6)
	assert.Equal(t, strings.ToUpper(parts[3]), parts[3])
}

func TestGenerateCertificateNumberIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateCertificateNumber()
		assert.False(t, seen[number], "duplicate certificate number %s", number)
		seen[number] = true
	}
}

func TestGeneratePaymentReferenceFormat(t *testing.T) {
	reference := GeneratePaymentReference()

	parts := strings.Split(reference, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "TOS", parts[0])
	assert.Len(t, parts[2], 7)
}

func TestFormatCompletionDate(t *testing.T) {
	date := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 7, 2026", FormatCompletionDate(date))
}

func TestCertificateSVGContainsFields(t *testing.T) {
	svg := GenerateCertificateSVG(CertificateData{
		StudentName:       "Ada Obi",
		ProgramName:       "Creative Writing",
		CompletionDate:    "March 7, 2026",
		CertificateNumber: "TOS-CERT-1-ABCDEF",
	})

	assert.Contains(t, svg, "Ada Obi")
	assert.Contains(t, svg, "Creative Writing")
	assert.Contains(t, svg, "March 7, 2026")
	assert.Contains(t, svg, "TOS-CERT-1-ABCDEF")
	assert.Contains(t, svg, `width="1200"`)
	assert.Contains(t, svg, `height="850"`)
}

func TestCertificateDataURIRoundTrip(t *testing.T) {
	svg := GenerateCertificateSVG(CertificateData{
		StudentName:       "Ada Obi",
		ProgramName:       "Creative Writing",
		CompletionDate:    "March 7, 2026",
		CertificateNumber: "TOS-CERT-1-ABCDEF",
	})

	uri := CertificateDataURI(svg)
	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Equal(t, svg, string(decoded))
}
