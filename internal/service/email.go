package service

import (
	"context"
	"fmt"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/logger"
	"roomrent-backend/internal/utils"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailSender is the part of *sendgrid.Client the email service uses.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	client    mailSender
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid backed EmailService.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return newEmailService(sendgrid.NewSendClient(apiKey), fromEmail, fromName)
}

func newEmailService(client mailSender, fromEmail, fromName string) *emailService {
	return &emailService{client: client, fromEmail: fromEmail, fromName: fromName}
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, tx *domain.TransactionView) error {
	subject := fmt.Sprintf("Payment received for %s", tx.RoomName)
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your payment of %d for room %s.\nCovered period: %s to %s.\nTransaction number: %d.\n\nBest regards,\n%s",
		tx.UserFirstName, tx.Amount, tx.RoomName,
		tx.PaidFrom.Format(utils.DateLayout), tx.PaidTo.Format(utils.DateLayout),
		tx.ID, s.fromName,
	)
	name := tx.UserFirstName + " " + tx.UserLastName
	return s.send(ctx, "SendPaymentReceipt", tx.UserEmail, name, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, r *domain.OverdueRental) error {
	subject := "Rent payment overdue"
	body := fmt.Sprintf(
		"Hello %s,\n\nRent for room %s is paid until %s. Please contact your manager to settle the outstanding months.\n\nBest regards,\n%s",
		r.UserFirstName, r.RoomName, r.PaidUntil.Format(utils.DateLayout), s.fromName,
	)
	return s.send(ctx, "SendOverdueReminder", r.UserEmail, r.UserFirstName, subject, body)
}

func (s *emailService) send(ctx context.Context, op, to, toName, subject, body string) error {
	logger.ExternalServiceCall("sendgrid", op, "to", to)

	message := mail.NewSingleEmail(mail.NewEmail(s.fromName, s.fromEmail), subject, mail.NewEmail(toName, to), body, "")
	response, err := s.client.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.ExternalServiceResult("sendgrid", op, err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
