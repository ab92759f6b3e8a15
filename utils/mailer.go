package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailSender delivers a plain-text message. Tests swap in a stub via
// SetEmailSender so no SES call ever leaves the process.
type EmailSender interface {
	Send(to, subject, body string) error
}

var (
	emailSender EmailSender = &sesSender{}
	senderMu    sync.Mutex
)

func SetEmailSender(s EmailSender) {
	senderMu.Lock()
	emailSender = s
	senderMu.Unlock()
}

func sendEmail(to, subject, body string) error {
	senderMu.Lock()
	s := emailSender
	senderMu.Unlock()
	return s.Send(to, subject, body)
}

// SendOTPEmail delivers the signup/resend verification code.
func SendOTPEmail(to string, code int) error {
	subject := "Your AyuVeda verification code"
	body := fmt.Sprintf("Your verification code is: %06d\n\nIt expires in one hour.", code)
	return sendEmail(to, subject, body)
}

// SendResetEmail delivers the forgot-password code.
func SendResetEmail(to string, code int) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %06d\n\nUse this in the app to set a new password.", code)
	return sendEmail(to, subject, body)
}

// sesSender is the production sender. The client is built on first use so
// importing this package never requires AWS credentials.
type sesSender struct {
	once   sync.Once
	client *ses.Client
	err    error
}

func (s *sesSender) Send(to, subject, body string) error {
	s.once.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			s.err = fmt.Errorf("AWS config load failed: %w", err)
			return
		}
		s.client = ses.NewFromConfig(cfg)
	})
	if s.err != nil {
		return s.err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := s.client.SendEmail(context.TODO(), input); err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}
