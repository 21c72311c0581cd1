package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/barbabyfitness/contractflow/internal/models"
)

const (
	contractIDTimeLayout = "2006-01-02T15:04:05.000Z"
	signingDateLayout    = "January 2, 2006"
	archiveDateLayout    = "Monday, January 2, 2006 at 03:04 PM MST"
)

// ContractID derives the storage-key prefix correlating a submission with
// its generated documents. It is a soft key: two submissions for the same
// email within the same millisecond collide, and the archiver's write-once
// precondition makes that a no-op rather than an overwrite.
func ContractID(email string, processedAt time.Time) string {
	return fmt.Sprintf("contract-%s-%s", email, processedAt.UTC().Format(contractIDTimeLayout))
}

// signingTime picks the timestamp printed on the documents. The submission's
// declared timestamp wins; an unparsable one falls back to processing time.
func signingTime(sub models.Submission, processedAt time.Time) time.Time {
	t, err := time.Parse(time.RFC3339, sub.Timestamp)
	if err != nil {
		slog.Warn("Submission timestamp unparsable, using processing time for signing date.",
			"timestamp", sub.Timestamp, "error", err)
		return processedAt
	}
	return t
}

// formatSigningDate renders the dateOfSigning field, e.g. "March 14, 2025".
func formatSigningDate(t time.Time) string {
	return t.UTC().Format(signingDateLayout)
}

// formatArchiveDate renders the human-readable timestamp embedded in the
// archived submission record.
func formatArchiveDate(t time.Time) string {
	return t.UTC().Format(archiveDateLayout)
}
