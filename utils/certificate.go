package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CertificateData carries everything rendered onto a certificate
type CertificateData struct {
	StudentName       string
	ProgramName       string
	CompletionDate    string
	CertificateNumber string
}

// GenerateCertificateNumber creates a unique certificate number. The timestamp
// plus random suffix keeps collisions out; the unique index on certificates is
// the final guard.
func GenerateCertificateNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("TOS-CERT-%d-%s", time.Now().UnixMilli(), suffix)
}

// FormatCompletionDate renders the date the way it appears on certificates
func FormatCompletionDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// GenerateCertificateSVG renders the 1200x850 certificate canvas
func GenerateCertificateSVG(data CertificateData) string {
	return fmt.Sprintf(`<svg width="1200" height="850" xmlns="http://www.w3.org/2000/svg">
  <rect width="1200" height="850" fill="#FFFFFF"/>
  <rect x="40" y="40" width="1120" height="770" fill="none" stroke="#4E0942" stroke-width="8"/>
  <rect x="50" y="50" width="1100" height="750" fill="none" stroke="#FEEB00" stroke-width="4"/>
  <circle cx="150" cy="150" r="60" fill="#DD91D0" opacity="0.2"/>
  <circle cx="1050" cy="150" r="60" fill="#FF2768" opacity="0.2"/>
  <circle cx="150" cy="700" r="60" fill="#FF2768" opacity="0.2"/>
  <circle cx="1050" cy="700" r="60" fill="#DD91D0" opacity="0.2"/>
  <circle cx="600" cy="180" r="70" fill="#4E0942"/>
  <circle cx="600" cy="180" r="60" fill="#FEEB00"/>
  <text x="600" y="195" font-family="Arial, sans-serif" font-size="36" font-weight="bold" fill="#4E0942" text-anchor="middle">TOS</text>
  <text x="600" y="300" font-family="Georgia, serif" font-size="48" font-weight="bold" fill="#4E0942" text-anchor="middle">CERTIFICATE OF COMPLETION</text>
  <text x="600" y="350" font-family="Arial, sans-serif" font-size="20" fill="#666666" text-anchor="middle">This is to certify that</text>
  <text x="600" y="420" font-family="Georgia, serif" font-size="56" font-weight="bold" fill="#FF2768" text-anchor="middle">%s</text>
  <line x1="300" y1="440" x2="900" y2="440" stroke="#4E0942" stroke-width="2"/>
  <text x="600" y="500" font-family="Arial, sans-serif" font-size="20" fill="#666666" text-anchor="middle">has successfully completed</text>
  <text x="600" y="550" font-family="Georgia, serif" font-size="36" font-weight="bold" fill="#4E0942" text-anchor="middle">%s</text>
  <text x="600" y="620" font-family="Arial, sans-serif" font-size="18" fill="#666666" text-anchor="middle">on %s</text>
  <text x="300" y="720" font-family="Arial, sans-serif" font-size="16" fill="#4E0942" text-anchor="middle">The OPEN Students</text>
  <line x1="200" y1="730" x2="400" y2="730" stroke="#4E0942" stroke-width="2"/>
  <text x="300" y="750" font-family="Arial, sans-serif" font-size="14" fill="#666666" text-anchor="middle">Authorized Signature</text>
  <text x="900" y="720" font-family="Arial, sans-serif" font-size="16" fill="#4E0942" text-anchor="middle">Beyond the Classroom</text>
  <line x1="800" y1="730" x2="1000" y2="730" stroke="#4E0942" stroke-width="2"/>
  <text x="900" y="750" font-family="Arial, sans-serif" font-size="14" fill="#666666" text-anchor="middle">Official Seal</text>
  <text x="600" y="790" font-family="Arial, sans-serif" font-size="12" fill="#999999" text-anchor="middle">Certificate No: %s</text>
</svg>`, data.StudentName, data.ProgramName, data.CompletionDate, data.CertificateNumber)
}

// CertificateDataURI encodes a rendered SVG as a self-contained data URI so no
// file storage is needed.
func CertificateDataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
