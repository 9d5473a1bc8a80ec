package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	baseURL   string // public web URL invitation links point at
}

func NewEmailService(apiKey, fromEmail, fromName, baseURL string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		baseURL:   baseURL,
	}
}

func (s *emailService) SendInvitation(ctx context.Context, email, orgName, token string) error {
	subject := fmt.Sprintf("Invitation to join %s", orgName)
	link := fmt.Sprintf("%s/invitations/%s", s.baseURL, token)
	plain := fmt.Sprintf("You have been invited to join %s.\n\nOpen the link below to accept or decline:\n\n%s\n\nThe invitation expires in 7 days.", orgName, link)
	html := fmt.Sprintf(`<p>You have been invited to join <strong>%s</strong>.</p><p><a href="%s">Review the invitation</a></p><p>The invitation expires in 7 days.</p>`, orgName, link)
	return s.send(email, subject, plain, html)
}

func (s *emailService) SendInvitationResult(ctx context.Context, inviterEmail, inviteeEmail, orgName, result string) error {
	subject := fmt.Sprintf("Invitation %s - %s", result, orgName)
	plain := fmt.Sprintf("%s has %s your invitation to join %s.", inviteeEmail, result, orgName)
	html := fmt.Sprintf("<p><strong>%s</strong> has %s your invitation to join %s.</p>", inviteeEmail, result, orgName)
	return s.send(inviterEmail, subject, plain, html)
}

func (s *emailService) send(to, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
