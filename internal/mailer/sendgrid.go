package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// SendGridClient is the part of *sendgrid.Client the sender uses.
type SendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridSender delivers messages synchronously through the SendGrid v3 API.
type SendGridSender struct {
	client SendGridClient
	from   *mail.Email
	logger *logger.Logger
}

func NewSendGridSender(apiKey, fromAddress, fromName string, logger *logger.Logger) *SendGridSender {
	return NewSendGridSenderWithClient(sendgrid.NewSendClient(apiKey), fromAddress, fromName, logger)
}

func NewSendGridSenderWithClient(client SendGridClient, fromAddress, fromName string, logger *logger.Logger) *SendGridSender {
	return &SendGridSender{
		client: client,
		from:   mail.NewEmail(fromName, fromAddress),
		logger: logger,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := mail.NewEmail("", msg.To)
	email := mail.NewSingleEmail(s.from, msg.Subject, to, msg.PlainText, "")

	resp, err := s.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message with status %d: %s", resp.StatusCode, resp.Body)
	}

	s.logger.Info("Email sent",
		zap.String("type", string(msg.Type)),
		zap.String("email", msg.To),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
