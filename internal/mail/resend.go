// Package mail sends notification email through Resend.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/barbabyfitness/contractflow/internal/models"
)

// ResendMailer delivers NotificationMessages via the Resend API.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer returns a mailer authenticated with the given API key.
func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

// Send delivers a single message. Attachments are handed to Resend as raw
// bytes; the SDK base64-encodes them on the wire.
func (m *ResendMailer) Send(ctx context.Context, msg models.NotificationMessage) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: "application/pdf",
		})
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}
