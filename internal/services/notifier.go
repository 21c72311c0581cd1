package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/barbabyfitness/contractflow/internal/models"
)

// contractAttachments names the two finalized documents carried by both
// notification channels.
func contractAttachments(contractID string, release, training []byte) []models.Attachment {
	return []models.Attachment{
		{Filename: fmt.Sprintf("release-of-liability-%s.pdf", contractID), Content: release},
		{Filename: fmt.Sprintf("training-agreement-%s.pdf", contractID), Content: training},
	}
}

// signerMessage is the confirmation sent to the submitter.
func (f *ContractIntakeFunction) signerMessage(sub models.Submission, processedAt time.Time, attachments []models.Attachment) models.NotificationMessage {
	processed := formatArchiveDate(processedAt)
	return models.NotificationMessage{
		From:        fmt.Sprintf("BarBaby Fitness <%s>", f.config.SenderAddress),
		To:          sub.Email,
		Subject:     "Your BarBaby Fitness Contract Confirmation",
		Text:        "Your BarBaby Fitness contract has been successfully processed. Attached are your signed documents.",
		HTML:        signerHTML(sub, processed),
		Attachments: attachments,
	}
}

// ownerMessage is the internal alert sent to the business owner.
func (f *ContractIntakeFunction) ownerMessage(sub models.Submission, contractID string, processedAt time.Time, attachments []models.Attachment) models.NotificationMessage {
	fullName := sub.FirstName + " " + sub.LastName
	return models.NotificationMessage{
		From:        fmt.Sprintf("BarBaby Fitness Contracts <%s>", f.config.SenderAddress),
		To:          f.config.OwnerEmail,
		ReplyTo:     f.config.OwnerEmail,
		Subject:     fmt.Sprintf("New Contract Signed: %s", fullName),
		Text:        fmt.Sprintf("A new contract has been signed by %s. Attached are the signed documents.", fullName),
		HTML:        ownerHTML(sub, contractID, formatArchiveDate(processedAt)),
		Attachments: attachments,
	}
}

func signerHTML(sub models.Submission, processed string) string {
	return fmt.Sprintf(`<h1>Welcome to BarBaby Fitness!</h1>
<p>Dear %s,</p>
<p>Thank you for signing up with BarBaby Fitness. Your contract has been received and processed on %s.</p>
<p>Contract Details:</p>
<ul>
  <li>Name: %s %s</li>
  <li>Email: %s</li>
  <li>Phone: %s</li>
  <li>Address: %s, %s, %s %s</li>
</ul>
<p>Next Steps:</p>
<ul>
  <li>Lige will contact you within 24 hours to schedule your first session</li>
  <li>Review the attached welcome packet for preparation guidelines</li>
  <li>Follow us on social media for daily motivation and updates</li>
</ul>
<p>If you have any questions, please don't hesitate to contact us.</p>`,
		sub.FirstName, processed,
		sub.FirstName, sub.LastName, sub.Email, sub.Phone,
		sub.Address.Street, sub.Address.City, sub.Address.State, sub.Address.ZipCode)
}

func ownerHTML(sub models.Submission, contractID, processed string) string {
	return fmt.Sprintf(`<h1>New Contract Signed</h1>
<p>A new contract has been signed by %s %s.</p>
<p>Contract Details:</p>
<ul>
  <li>Name: %s %s</li>
  <li>Email: %s</li>
  <li>Phone: %s</li>
  <li>Address: %s, %s, %s %s</li>
  <li>Signed On: %s</li>
</ul>
<p>The contract has been stored with ID: %s</p>`,
		sub.FirstName, sub.LastName,
		sub.FirstName, sub.LastName, sub.Email, sub.Phone,
		sub.Address.Street, sub.Address.City, sub.Address.State, sub.Address.ZipCode,
		processed, contractID)
}

// dispatchNotifications attempts the signer confirmation and the owner
// alert. Each send is its own failure boundary: an error is logged and the
// other send still runs. By the time this is called the contract is already
// durable, so nothing here may fail the request.
func (f *ContractIntakeFunction) dispatchNotifications(ctx context.Context, logCtx *slog.Logger, sub models.Submission, contractID string, processedAt time.Time, release, training []byte) {
	attachments := contractAttachments(contractID, release, training)

	messages := []models.NotificationMessage{
		f.signerMessage(sub, processedAt, attachments),
		f.ownerMessage(sub, contractID, processedAt, attachments),
	}
	for _, msg := range messages {
		if err := f.mailer.Send(ctx, msg); err != nil {
			logCtx.Error("Failed to send notification email.", "recipient", msg.To, "error", err)
			continue
		}
		logCtx.Info("Notification email sent.", "recipient", msg.To)
	}
}
