package models

// Attachment is a named binary part of a notification. Content is raw PDF
// bytes; base64 encoding happens at the mail provider's wire format.
type Attachment struct {
	Filename string
	Content  []byte
}

// NotificationMessage is one outbound email. Two are built per submission:
// the signer confirmation and the owner alert. They share attachments and
// differ in recipient, tone and reply-to.
type NotificationMessage struct {
	From        string
	To          string
	ReplyTo     string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}
