package utils

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"yogveda/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one email through SendGrid. attachmentPath may be empty.
// Declared as a variable so tests can swap the transport out.
var SendEmail = func(toEmail, toName, subject, htmlBody, attachmentPath string) error {
	from := mail.NewEmail(config.AppConfig.SenderName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	if attachmentPath != "" {
		raw, err := os.ReadFile(attachmentPath)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(raw))
		attachment.SetType("application/pdf")
		attachment.SetFilename(filepath.Base(attachmentPath))
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// HTML wrapper shared by all outbound mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F7F4EF; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2E4A3D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 2px; }
			.content { padding: 40px 30px; color: #2E4A3D; line-height: 1.6; }
			.content h2 { color: #2E4A3D; margin-top: 0; }
			.footer { background-color: #F7F4EF; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #EDF3EE; padding: 15px; border-radius: 4px; border-left: 4px solid #C9A227; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>YOGVEDA STUDIO</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Yogveda Studio. All rights reserved.<br>
				Breathe in, breathe out.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail fires the signup email in the background. Delivery is
// best-effort: a failure is logged and never blocks account creation.
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Yogveda Studio"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Yogveda Studio</strong>! We are delighted to have you with us.</p>
		<p>Your account has been created. Browse our workshops and retreats and book your first session whenever you are ready.</p>
		<p>If you have any questions, just reply to this email.</p>
	`, name)

	go func() {
		if err := SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body), ""); err != nil {
			log.Printf("Error sending welcome email to %s: %v", email, err)
		}
	}()
}

// SendCertificateEmail mails a completion certificate with the rendered PDF
// attached. Unlike the welcome email, delivery failure is returned to the
// caller: the email is the whole point of certificate issuance.
func SendCertificateEmail(email, name, workshopTitle, certificatePath string) error {
	subject := "Your Certificate of Completion - " + workshopTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing:</p>
		<h3 style="text-align: center; color: #2E4A3D; margin: 20px 0;">%s</h3>
		<div class="info-box">
			Your certificate is attached to this email. We hope to see you on the mat again soon.
		</div>
		<p>Namaste,<br>The Yogveda Team</p>
	`, name, workshopTitle)

	return SendEmail(email, name, subject, getEmailTemplate("Certificate of Completion", body), certificatePath)
}
