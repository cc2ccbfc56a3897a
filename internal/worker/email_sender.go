package worker

import (
	"context"
	"fmt"

	"github.com/managejob/backend/internal/config"
	emailProvider "github.com/managejob/backend/pkg/email"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

// SendEmail delivers a pre-rendered message. The queue payload carries the
// final subject and body, so the worker does no templating of its own.
func (s *emailSender) SendEmail(ctx context.Context, to string, subject string, body string) error {
	sendInput := emailProvider.SendEmailInput{To: to, Subject: subject, Body: body}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
