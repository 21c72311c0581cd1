package services

import (
	"strings"
	"testing"
)

func TestSignerMessageContent(t *testing.T) {
	f := newTestIntake(newFakeStore(), &fakeMailer{}, &fakeLedger{}, &fakeFiller{})
	attachments := contractAttachments(janeContractID, []byte("r"), []byte("t"))

	msg := f.signerMessage(janeDoe(), fixedNow, attachments)
	if msg.From != "BarBaby Fitness <signed-contracts@contracts.barbabyfitness.com>" {
		t.Fatalf("from: %q", msg.From)
	}
	if msg.Subject != "Your BarBaby Fitness Contract Confirmation" {
		t.Fatalf("subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.HTML, "Dear Jane,") {
		t.Fatalf("signer HTML should address the signer: %s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "1 Main St, LA, CA 90001") {
		t.Fatalf("signer HTML should carry the address: %s", msg.HTML)
	}
	if msg.ReplyTo != "" {
		t.Fatalf("signer channel has no reply-to override, got %q", msg.ReplyTo)
	}
}

func TestOwnerMessageContent(t *testing.T) {
	f := newTestIntake(newFakeStore(), &fakeMailer{}, &fakeLedger{}, &fakeFiller{})
	attachments := contractAttachments(janeContractID, []byte("r"), []byte("t"))

	msg := f.ownerMessage(janeDoe(), janeContractID, fixedNow, attachments)
	if msg.From != "BarBaby Fitness Contracts <signed-contracts@contracts.barbabyfitness.com>" {
		t.Fatalf("from: %q", msg.From)
	}
	if !strings.Contains(msg.HTML, janeContractID) {
		t.Fatalf("owner HTML should reference the contract id: %s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "Signed On: Friday, March 14, 2025 at 10:00 AM UTC") {
		t.Fatalf("owner HTML should carry the signing timestamp: %s", msg.HTML)
	}
}

func TestAttachmentsShareBytesAcrossChannels(t *testing.T) {
	release, training := []byte("release-bytes"), []byte("training-bytes")
	attachments := contractAttachments(janeContractID, release, training)
	if len(attachments) != 2 {
		t.Fatalf("expected 2 attachments")
	}
	if string(attachments[0].Content) != "release-bytes" || string(attachments[1].Content) != "training-bytes" {
		t.Fatalf("attachment contents mixed up")
	}
}
