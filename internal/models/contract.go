package models

import "time"

// Contract ledger statuses.
const (
	StatusReceived  = "RECEIVED"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// ContractRecord is the Firestore status record for one submission. It is
// supplementary bookkeeping: ledger writes are best-effort and never affect
// the pipeline outcome.
type ContractRecord struct {
	ContractID   string    `firestore:"contractId,omitempty"`
	Email        string    `firestore:"email,omitempty"`
	SignerName   string    `firestore:"signerName,omitempty"`
	Status       string    `firestore:"status,omitempty"`
	ErrorDetails string    `firestore:"errorDetails,omitempty"`
	CreatedAt    time.Time `firestore:"createdAt,omitempty"`
}
