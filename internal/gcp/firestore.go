package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/barbabyfitness/contractflow/internal/models"
)

// NewFirestoreClient creates and returns a new Firestore client for the given project ID.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return client, nil
}

// ContractLedger keeps one Firestore status document per submission.
type ContractLedger struct {
	client     *firestore.Client
	collection string
}

// NewContractLedger returns a ledger writing to the given collection.
func NewContractLedger(client *firestore.Client, collection string) *ContractLedger {
	return &ContractLedger{client: client, collection: collection}
}

// Create adds a new contract record and returns its document ID.
func (l *ContractLedger) Create(ctx context.Context, rec models.ContractRecord) (string, error) {
	docRef, _, err := l.client.Collection(l.collection).Add(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to create contract record: %w", err)
	}
	return docRef.ID, nil
}

// SetStatus updates the status of an existing contract record. Error details
// are only written when non-empty.
func (l *ContractLedger) SetStatus(ctx context.Context, docID, status, errDetails string) error {
	updates := []firestore.Update{
		{Path: "status", Value: status},
	}
	if errDetails != "" {
		updates = append(updates, firestore.Update{Path: "errorDetails", Value: errDetails})
	}
	if _, err := l.client.Collection(l.collection).Doc(docID).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update contract record %s: %w", docID, err)
	}
	return nil
}
