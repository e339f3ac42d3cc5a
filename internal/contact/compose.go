package contact

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/cecoladevelopment/site-backend/internal/config"
	"github.com/cecoladevelopment/site-backend/internal/mailer"
	"github.com/cecoladevelopment/site-backend/internal/models"
)

const textBody = `New Contact Form Submission from {{.FromName}}

Name: {{.Name}}
Company: {{.Company}}
Email: {{.Email}}
Problem/Question: {{.Problem}}

---
Submitted: {{.Submitted}}
From: {{.Site}}
`

const htmlBody = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #0B1B34; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
    .field { margin: 15px 0; }
    .label { font-weight: bold; color: #0B1B34; }
    .value { margin-top: 5px; padding: 10px; background: white; border-radius: 4px; }
    .footer { text-align: center; color: #666; font-size: 12px; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>New Contact Form Submission</h2>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Name:</div>
        <div class="value">{{.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Company:</div>
        <div class="value">{{.Company}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
      </div>
      <div class="field">
        <div class="label">Problem/Question:</div>
        <div class="value">{{.Problem}}</div>
      </div>
    </div>
    <div class="footer">
      <p>Submitted: {{.Submitted}}</p>
      <p>From: {{.Site}}</p>
    </div>
  </div>
</body>
</html>
`

var (
	textTemplate = texttemplate.Must(texttemplate.New("text").Parse(textBody))
	htmlTemplate = htmltemplate.Must(htmltemplate.New("html").Parse(htmlBody))
)

type bodyData struct {
	models.ContactSubmission
	FromName  string
	Submitted string
	Site      string
}

// Subject returns the notification subject for sub.
func Subject(sub models.ContactSubmission) string {
	return fmt.Sprintf("New Contact Form Submission - %s (%s)", sub.Company, sub.Name)
}

// Compose builds the notification for a validated submission. Replies go
// to the submitter.
func Compose(sub models.ContactSubmission, cfg config.ContactConfig, at time.Time) (*mailer.Message, error) {
	data := bodyData{
		ContactSubmission: sub,
		FromName:          cfg.FromName,
		Submitted:         at.Format(time.RFC1123),
		Site:              cfg.Site,
	}

	var text, html bytes.Buffer
	if err := textTemplate.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}

	return &mailer.Message{
		From:     cfg.From,
		FromName: cfg.FromName,
		To:       cfg.To,
		ReplyTo:  sub.Email,
		Subject:  Subject(sub),
		Text:     text.String(),
		HTML:     html.String(),
	}, nil
}
