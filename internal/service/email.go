package service

import (
	"context"
	"fmt"
	"time"

	"github.com/managejob/backend/internal/config"
	"github.com/managejob/backend/internal/domain"
	"github.com/managejob/backend/internal/queue/client"
	"github.com/managejob/backend/internal/queue/task"
	"github.com/managejob/backend/pkg/email"
	"github.com/managejob/backend/pkg/logger"

	"go.uber.org/zap"
)

type EmailService struct {
	sender  email.Sender
	config  config.EmailConfig
	timeout time.Duration
	enabled bool
}

func newEmailService(sender email.Sender, config config.EmailConfig, timeout time.Duration) *EmailService {
	return &EmailService{
		enabled: config.Enabled,
		sender:  sender,
		config:  config,
		timeout: timeout,
	}
}

type verificationEmailInput struct {
	Name string
	Code string
}

// SendVerificationEmail delivers the registration code synchronously: the
// caller needs the result to decide whether the issued code stays valid.
// The send is bounded by the SMTP timeout so a stalled server cannot hold
// the registration request open indefinitely.
func (s *EmailService) SendVerificationEmail(ctx context.Context, to string, name string, code string) error {
	if !s.enabled {
		return nil
	}

	sendInput := email.SendEmailInput{
		To:      to,
		Subject: "Your OTP for ManageJob Registration",
	}

	templateInput := verificationEmailInput{Name: name, Code: code}
	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	return s.sendWithTimeout(ctx, sendInput)
}

func (s *EmailService) sendWithTimeout(ctx context.Context, input email.SendEmailInput) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.sender.Send(input)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("email send timed out: %w", ctx.Err())
	case err := <-done:
		return err
	}
}

// EnqueueWelcomeEmail hands the post-signup email to the queue. Delivery is
// best effort: a failed enqueue is logged and the signup still succeeds.
func (s *EmailService) EnqueueWelcomeEmail(ctx context.Context, to string, name string) {
	if !s.enabled {
		return
	}

	subject, body := welcomeEmailContent(name)
	s.enqueue(ctx, to, subject, body)
}

// EnqueueStatusEmail notifies a candidate about an application status change.
func (s *EmailService) EnqueueStatusEmail(ctx context.Context, to string, status domain.ApplicationStatus, jobTitle string, company string, candidateName string) {
	if !s.enabled {
		return
	}

	subject, body := statusEmailContent(status, jobTitle, company, candidateName)
	s.enqueue(ctx, to, subject, body)
}

func (s *EmailService) enqueue(ctx context.Context, to string, subject string, body string) {
	t, err := task.NewSendEmailTask(to, subject, body)
	if err != nil {
		logger.Error("build send email task failed", zap.Error(err))
		return
	}

	queueClient := client.GetClient(ctx)
	if queueClient == nil {
		logger.Error("queue client is not configured")
		return
	}

	if _, err := queueClient.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue send email task failed", zap.Error(err), zap.String("to", to))
	}
}

func welcomeEmailContent(name string) (string, string) {
	subject := "Welcome to ManageJob!"
	body := fmt.Sprintf("Hi %s,\n\nWelcome to ManageJob! Your account has been successfully created.\n\nYou can now log in and start exploring job opportunities that match your skills and experience.\n\nBest regards,\nManageJob Team", name)
	return subject, body
}

func statusEmailContent(status domain.ApplicationStatus, jobTitle string, company string, candidateName string) (string, string) {
	subject := fmt.Sprintf("Update on Your Application for %s at %s", jobTitle, company)

	var message string
	switch status {
	case domain.StatusApplied:
		message = fmt.Sprintf("Dear %s,\n\nYour application for the %s position at %s has been received. We will review it soon.\n\nBest regards,\nRecruitment Team", candidateName, jobTitle, company)
	case domain.StatusUnderReview:
		message = fmt.Sprintf("Dear %s,\n\nYour application for the %s position at %s is currently under review. We'll get back to you soon.\n\nBest regards,\nRecruitment Team", candidateName, jobTitle, company)
	case domain.StatusInterview:
		message = fmt.Sprintf("Dear %s,\n\nCongratulations! You've been selected for an interview for the %s position at %s. Please reply to this email to schedule a time.\n\nBest regards,\nRecruitment Team", candidateName, jobTitle, company)
	case domain.StatusAccepted:
		message = fmt.Sprintf("Dear %s,\n\nWe are thrilled to inform you that you have been accepted for the %s position at %s! Please reply to this email for next steps.\n\nBest regards,\nRecruitment Team", candidateName, jobTitle, company)
	case domain.StatusRejected:
		message = fmt.Sprintf("Dear %s,\n\nThank you for applying for the %s position at %s. Unfortunately, we have decided to move forward with other candidates at this time. We wish you the best in your job search.\n\nBest regards,\nRecruitment Team", candidateName, jobTitle, company)
	default:
		message = fmt.Sprintf("Dear %s,\n\nYour application status for the %s position at %s has been updated to %q. Please contact us if you have any questions.\n\nBest regards,\nRecruitment Team", candidateName, jobTitle, company, status)
	}

	return subject, message
}
