package utils

import (
	"fmt"
	"log"

	"thumbpro/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a transactional email through SendGrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridAPIKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("Thumbnail Pro", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	return nil
}

// HTML wrapper shared by all transactional emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #111111; padding: 30px; text-align: center; }
			.header h1 { color: #FFD900; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #111111; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #FFF8D6; padding: 15px; border-radius: 4px; border-left: 4px solid #FFD900; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>THUMBNAIL PRO</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Thumbnail Pro. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly provisioned member with their temporary
// password. Fired after a completed checkout.
func SendWelcomeEmail(email, name, tempPassword string) {
	subject := "Welcome to Thumbnail Pro"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment went through and your <strong>Thumbnail Pro</strong> account is ready.</p>
		<div class="info-box">
			<strong>Login:</strong> %s<br>
			<strong>Temporary password:</strong> %s
		</div>
		<p>Please change this password right after your first login.</p>
	`, name, email, tempPassword)

	go SendEmail(email, name, subject, getEmailTemplate("Your account is ready", body))
}

// SendTicketReplyEmail notifies a ticket owner that support answered
func SendTicketReplyEmail(email, name, ticketSubject string) {
	subject := "Support replied to your ticket"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Our team posted a reply on your ticket <strong>%s</strong>.</p>
		<p>Log in to your dashboard to read it and answer.</p>
	`, name, ticketSubject)

	go SendEmail(email, name, subject, getEmailTemplate("New reply on your ticket", body))
}
