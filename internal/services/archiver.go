package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/barbabyfitness/contractflow/internal/models"
)

func rawRecordKey(contractID string) string {
	return fmt.Sprintf("contracts/%s.json", contractID)
}

func releaseDocumentKey(contractID string) string {
	return fmt.Sprintf("contracts/%s-release.pdf", contractID)
}

func trainingDocumentKey(contractID string) string {
	return fmt.Sprintf("contracts/%s-training.pdf", contractID)
}

// archiveSubmission persists the raw intake payload. It runs before any
// template processing: durability of intake takes priority even if document
// generation later fails.
func (f *ContractIntakeFunction) archiveSubmission(ctx context.Context, contractID string, sub models.Submission, processedAt time.Time) error {
	record := models.SubmissionRecord{
		Submission:    sub,
		FormattedDate: formatArchiveDate(processedAt),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal submission record: %w", err)
	}
	if err := f.store.Put(ctx, rawRecordKey(contractID), "application/json", data); err != nil {
		return fmt.Errorf("failed to write submission record: %w", err)
	}
	return nil
}

// archiveDocuments writes both finalized PDFs in parallel. Either write
// failing aborts the pipeline; whatever was already written stays in
// storage.
func (f *ContractIntakeFunction) archiveDocuments(ctx context.Context, contractID string, release, training []byte) error {
	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return f.store.Put(gctx, releaseDocumentKey(contractID), "application/pdf", release)
	})
	eg.Go(func() error {
		return f.store.Put(gctx, trainingDocumentKey(contractID), "application/pdf", training)
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("failed to write filled document: %w", err)
	}
	return nil
}
