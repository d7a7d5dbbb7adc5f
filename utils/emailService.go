package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"openstudents/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email. When SENDGRID_API_KEY is configured it goes
// through the Sendgrid API, otherwise plain SMTP. Callers treat delivery as
// best-effort; a returned error must never roll back the operation that
// triggered the mail.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendgridAPIKey != "" {
		return sendViaSendgrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendgrid(to []string, subject string, htmlBody string) error {
	from := sgmail.NewEmail("The OPEN Students", config.AppConfig.SMTPFrom)

	p := sgmail.NewPersonalization()
	p.Subject = subject
	for _, addr := range to {
		p.AddTos(sgmail.NewEmail("", addr))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(m)
	if err != nil {
		log.Printf("Error sending email via Sendgrid: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Sendgrid rejected email: status %d body %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		log.Printf("SMTP not configured; email to %v (%q) not sent", to, subject)
		return fmt.Errorf("SMTP not configured")
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: The OPEN Students <%s>\r\n", cfg.SMTPFrom)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)

	if err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.SMTPFrom, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared site layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #4E0942; padding: 30px; text-align: center; }
			.header h1 { color: #FEEB00; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #4E0942; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #FF2768; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>THE OPEN STUDENTS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; The OPEN Students. Beyond the Classroom.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendVerificationEmail mails the signup confirmation link. Fire-and-forget.
func SendVerificationEmail(email, name, confirmationLink string) {
	subject := "Verify your email address"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>The OPEN Students</strong>! Please confirm your email address to activate your account.</p>
		<p><a class="btn" href="%s">Verify Email</a></p>
		<p>This link expires in 24 hours. If you did not sign up, you can safely ignore this email.</p>
	`, name, confirmationLink)

	go func() {
		if err := SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body)); err != nil {
			log.Printf("Verification email to %s failed: %v", email, err)
		}
	}()
}

// SendCertificateEmail mails the certificate artifact to a student. Unlike the
// other mails this one is synchronous: the caller records whether it went out.
func SendCertificateEmail(email, studentName, programName, certificateURL string) error {
	subject := "Your Certificate of Completion: " + programName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<p>Your dedication and hard work have paid off, and we're proud to have been part of your learning journey.</p>
		<p><a class="btn" href="%s">Download Certificate</a></p>
		<p>Keep learning and growing beyond the classroom!</p>
	`, studentName, programName, certificateURL)

	return SendEmail([]string{email}, subject, getEmailTemplate("Congratulations!", body))
}
