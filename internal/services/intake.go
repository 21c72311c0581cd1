// Package services implements the contract submission pipeline: intake,
// template-based document generation, durable archival and dual-channel
// notification.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/barbabyfitness/contractflow/internal/gcp"
	"github.com/barbabyfitness/contractflow/internal/mail"
	"github.com/barbabyfitness/contractflow/internal/models"
)

// ObjectStore is the durable store holding blank templates and archived
// contracts. Injected so tests can substitute fakes.
type ObjectStore interface {
	Fetch(ctx context.Context, object string) ([]byte, error)
	Put(ctx context.Context, object, contentType string, data []byte) error
}

// Mailer delivers one notification message.
type Mailer interface {
	Send(ctx context.Context, msg models.NotificationMessage) error
}

// ContractLedger records per-submission status. All ledger writes are
// best-effort.
type ContractLedger interface {
	Create(ctx context.Context, rec models.ContractRecord) (string, error)
	SetStatus(ctx context.Context, docID, status, errDetails string) error
}

// DocumentFiller merges a submission into a blank template and returns the
// finalized, non-editable document.
type DocumentFiller interface {
	Fill(template []byte, sub models.Submission, signedAt time.Time) ([]byte, error)
}

type IntakeConfig struct {
	ProjectID              string
	Bucket                 string
	CollectionName         string
	ReleaseTemplateObject  string
	TrainingTemplateObject string
	SenderAddress          string
	OwnerEmail             string
}

// ContractIntakeFunction is the pipeline controller. One instance serves the
// process lifetime; every invocation owns its own submission, documents and
// messages, so no locking is needed.
type ContractIntakeFunction struct {
	store  ObjectStore
	mailer Mailer
	ledger ContractLedger
	filler DocumentFiller
	config IntakeConfig
	now    func() time.Time
}

// NewContractIntake builds the production pipeline from environment
// configuration.
func NewContractIntake(ctx context.Context) (*ContractIntakeFunction, error) {
	projectID := gcp.GetEnv("PROJECT_ID", "")
	if projectID == "" {
		return nil, fmt.Errorf("PROJECT_ID environment variable must be set")
	}

	config := IntakeConfig{
		ProjectID:              projectID,
		Bucket:                 gcp.GetEnv("CONTRACTS_BUCKET", ""),
		CollectionName:         gcp.GetEnv("FIRESTORE_COLLECTION", "contracts"),
		ReleaseTemplateObject:  gcp.GetEnv("RELEASE_TEMPLATE_OBJECT", "ReleaseofLiability-agreement.pdf"),
		TrainingTemplateObject: gcp.GetEnv("TRAINING_TEMPLATE_OBJECT", "TrainingAgreement.pdf"),
		SenderAddress:          gcp.GetEnv("CONTRACTS_SENDER_ADDRESS", "signed-contracts@contracts.barbabyfitness.com"),
		OwnerEmail:             gcp.GetEnv("OWNER_NOTIFICATION_ADDRESS", "adm.barbabyfitness@gmail.com"),
	}
	if config.Bucket == "" {
		return nil, fmt.Errorf("CONTRACTS_BUCKET environment variable must be set")
	}
	apiKey := gcp.GetEnv("RESEND_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable must be set")
	}

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}
	firestoreClient, err := gcp.NewFirestoreClient(ctx, config.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	f := &ContractIntakeFunction{
		store:  gcp.NewObjectStore(storageClient, config.Bucket),
		mailer: mail.NewResendMailer(apiKey),
		ledger: gcp.NewContractLedger(firestoreClient, config.CollectionName),
		filler: NewFormFillEngine(),
		config: config,
		now:    time.Now,
	}
	slog.Info("Contract intake logic initialized.", "bucket", config.Bucket)
	return f, nil
}

// HandleSubmission is the HTTP endpoint. The caller only ever observes
// succeeded or failed; internal error detail stays in the logs.
func (f *ContractIntakeFunction) HandleSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var sub models.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		slog.Error("Could not decode request body.", "error", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "could not parse JSON body"})
		return
	}
	if sub.Email == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "email is required"})
		return
	}

	contractID, err := f.Process(r.Context(), sub)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process contract submission"})
		return
	}
	writeJSON(w, http.StatusOK, models.SubmissionResponse{Success: true, ContractID: contractID})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response.", "error", err)
	}
}

// Process runs the submission pipeline: archive raw intake, fetch both
// templates, fill and lock both documents, archive them, then attempt both
// notifications. Returns the derived contract identifier.
func (f *ContractIntakeFunction) Process(ctx context.Context, sub models.Submission) (string, error) {
	processedAt := f.now().UTC()
	contractID := ContractID(sub.Email, processedAt)
	logCtx := slog.With("contractId", contractID, "requestId", uuid.NewString())
	logCtx.Info("Processing new contract submission.", "email", sub.Email)

	docID, err := f.ledger.Create(ctx, models.ContractRecord{
		ContractID: contractID,
		Email:      sub.Email,
		SignerName: sub.Signature,
		Status:     models.StatusReceived,
		CreatedAt:  processedAt,
	})
	if err != nil {
		logCtx.Warn("Failed to create contract record, continuing without ledger.", "error", err)
		docID = ""
	}

	if err := f.archiveSubmission(ctx, contractID, sub, processedAt); err != nil {
		return "", f.fail(ctx, logCtx, docID, "failed to archive raw submission", err)
	}
	logCtx.Info("Raw submission archived.")

	release, training, err := f.fetchTemplates(ctx)
	if err != nil {
		return "", f.fail(ctx, logCtx, docID, "failed to fetch agreement templates", err)
	}

	signedAt := signingTime(sub, processedAt)
	releaseDoc, err := f.filler.Fill(release, sub, signedAt)
	if err != nil {
		return "", f.fail(ctx, logCtx, docID, "failed to fill release of liability form", err)
	}
	trainingDoc, err := f.filler.Fill(training, sub, signedAt)
	if err != nil {
		return "", f.fail(ctx, logCtx, docID, "failed to fill training agreement form", err)
	}
	logCtx.Info("Documents filled and locked.")

	if err := f.archiveDocuments(ctx, contractID, releaseDoc, trainingDoc); err != nil {
		return "", f.fail(ctx, logCtx, docID, "failed to archive filled documents", err)
	}
	logCtx.Info("Filled documents archived.")

	// The contract is durable from here on; notification trouble never
	// fails the request.
	f.dispatchNotifications(ctx, logCtx, sub, contractID, processedAt, releaseDoc, trainingDoc)

	f.markStatus(ctx, logCtx, docID, models.StatusCompleted, "")
	logCtx.Info("Contract submission completed.")
	return contractID, nil
}

// fail logs a fatal pipeline error, records it in the ledger and wraps it
// for the handler.
func (f *ContractIntakeFunction) fail(ctx context.Context, logCtx *slog.Logger, docID, message string, err error) error {
	logCtx.Error(message, "error", err)
	f.markStatus(ctx, logCtx, docID, models.StatusFailed, fmt.Sprintf("%s: %v", message, err))
	return fmt.Errorf("%s: %w", message, err)
}

// markStatus is best-effort: ledger trouble is logged, never propagated.
func (f *ContractIntakeFunction) markStatus(ctx context.Context, logCtx *slog.Logger, docID, status, details string) {
	if docID == "" {
		return
	}
	if err := f.ledger.SetStatus(ctx, docID, status, details); err != nil {
		logCtx.Error("Failed to update contract record status.", "status", status, "error", err)
	}
}
