package email

import (
	"bytes"
	"fmt"
	"html/template"

	"go-contact-backend/internal/domain"
)

// ContactEmailData holds the submission fields for the email bodies. All
// three values must already be HTML-escaped by the caller; Message may also
// carry <br> line breaks.
type ContactEmailData struct {
	Name    string
	Email   string
	Message string
}

// escapedData wraps the pre-escaped fields in template.HTML so html/template
// does not escape the entities a second time.
type escapedData struct {
	Name    template.HTML
	Email   template.HTML
	Message template.HTML
}

// ownerEmailTemplate is the HTML body for the owner notification
const ownerEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}} ({{.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the website contact form.</p>
            <p>Reply to this email to answer {{.Name}} directly.</p>
        </div>
    </div>
</body>
</html>`

// confirmationEmailTemplate is the HTML body for the client confirmation
const confirmationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>We received your message</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you for reaching out</h1>
        </div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>We received your message and will get back to you as soon as possible.</p>
            <p>This is an automated confirmation; there is no need to reply.</p>
        </div>
        <div class="footer">
            <p>This email was sent because a contact form was submitted with your address.</p>
        </div>
    </div>
</body>
</html>`

var (
	ownerTmpl        = template.Must(template.New("owner").Parse(ownerEmailTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationEmailTemplate))
)

// OwnerNotification builds the email delivered to the site owner. replyTo is
// the submitter's raw address so the owner can answer directly; the body only
// ever carries the escaped fields.
func OwnerNotification(from, to, replyTo string, data ContactEmailData) (domain.EmailMessage, error) {
	var body bytes.Buffer
	err := ownerTmpl.Execute(&body, escapedData{
		Name:    template.HTML(data.Name),
		Email:   template.HTML(data.Email),
		Message: template.HTML(data.Message),
	})
	if err != nil {
		return domain.EmailMessage{}, fmt.Errorf("failed to execute owner template: %w", err)
	}

	return domain.EmailMessage{
		From:     from,
		To:       to,
		ReplyTo:  replyTo,
		Subject:  "New Contact Form Submission",
		HTMLBody: body.String(),
	}, nil
}

// ClientConfirmation builds the acknowledgment sent back to the submitter.
// The body uses the escaped name only, never the message content.
func ClientConfirmation(from, to string, data ContactEmailData) (domain.EmailMessage, error) {
	var body bytes.Buffer
	err := confirmationTmpl.Execute(&body, escapedData{
		Name: template.HTML(data.Name),
	})
	if err != nil {
		return domain.EmailMessage{}, fmt.Errorf("failed to execute confirmation template: %w", err)
	}

	return domain.EmailMessage{
		From:     from,
		To:       to,
		Subject:  "We received your message",
		HTMLBody: body.String(),
	}, nil
}
