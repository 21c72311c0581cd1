package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/barbabyfitness/contractflow/internal/services"
)

var (
	intakeInstance *services.ContractIntakeFunction
	once           sync.Once
	initErr        error
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Register the HTTP function with the framework.
	// "HandleContractSubmission" is the entry point name deployed in GCP.
	functions.HTTP("HandleContractSubmission", handleContractSubmission)
}

// main is required by the Go Functions Framework.
func main() {}

// handleContractSubmission is the HTTP handler.
func handleContractSubmission(w http.ResponseWriter, r *http.Request) {
	// Use sync.Once for robust, one-time initialization of clients.
	once.Do(func() {
		intakeInstance, initErr = services.NewContractIntake(context.Background())
	})
	if initErr != nil {
		log.Printf("CRITICAL: Contract intake initialization failed: %v", initErr)
		http.Error(w, "Internal Server Error: failed to initialize service", http.StatusInternalServerError)
		return
	}

	intakeInstance.HandleSubmission(w, r)
}
