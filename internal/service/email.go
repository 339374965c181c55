package service

import (
	"context"
	"fmt"

	"bibliothek-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendDueSoonReminder(ctx context.Context, email, name, title, dueDate string) error {
	subject := fmt.Sprintf("Reminder: \"%s\" is due on %s", title, dueDate)
	body := fmt.Sprintf("Hello %s,\n\nyour borrowed medium \"%s\" is due on %s. Please return or extend it in time.\n\nYour library team", name, title, dueDate)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email, name, title, dueDate string) error {
	subject := fmt.Sprintf("Overdue: \"%s\" was due on %s", title, dueDate)
	body := fmt.Sprintf("Hello %s,\n\nyour borrowed medium \"%s\" was due on %s and has not been returned. Please return it as soon as possible.\n\nYour library team", name, title, dueDate)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
