package services

import (
	"testing"
	"time"

	"github.com/barbabyfitness/contractflow/internal/models"
)

func TestContractIDDerivation(t *testing.T) {
	at := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	got := ContractID("jane@x.com", at)
	want := "contract-jane@x.com-2025-03-14T10:00:00.000Z"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestContractIDNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	at := time.Date(2025, time.March, 14, 3, 0, 0, 0, loc)
	want := "contract-jane@x.com-2025-03-14T10:00:00.000Z"
	if got := ContractID("jane@x.com", at); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestContractIDKeepsMilliseconds(t *testing.T) {
	at := time.Date(2025, time.March, 14, 10, 0, 0, 123_000_000, time.UTC)
	want := "contract-jane@x.com-2025-03-14T10:00:00.123Z"
	if got := ContractID("jane@x.com", at); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestSigningTimeUsesDeclaredTimestamp(t *testing.T) {
	sub := models.Submission{Timestamp: "2025-03-14T10:00:00Z"}
	processed := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	got := signingTime(sub, processed)
	if !got.Equal(time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("signing time: %v", got)
	}
}

func TestSigningTimeFallsBackOnBadTimestamp(t *testing.T) {
	sub := models.Submission{Timestamp: "yesterday"}
	processed := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)
	if got := signingTime(sub, processed); !got.Equal(processed) {
		t.Fatalf("expected fallback to processing time, got %v", got)
	}
}

func TestFormatSigningDate(t *testing.T) {
	at := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	if got := formatSigningDate(at); got != "March 14, 2025" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatArchiveDate(t *testing.T) {
	at := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	want := "Friday, March 14, 2025 at 10:00 AM UTC"
	if got := formatArchiveDate(at); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
