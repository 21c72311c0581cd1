package gcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// ErrObjectNotFound reports a fetch of a storage object that does not exist,
// e.g. a missing PDF template.
var ErrObjectNotFound = errors.New("object not found")

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ObjectStore wraps a single GCS bucket holding both the blank templates and
// the archived contracts.
type ObjectStore struct {
	bucket *storage.BucketHandle
}

// NewObjectStore returns an ObjectStore over the named bucket.
func NewObjectStore(client *storage.Client, bucket string) *ObjectStore {
	return &ObjectStore{bucket: client.Bucket(bucket)}
}

// Fetch reads the full contents of a storage object.
func (s *ObjectStore) Fetch(ctx context.Context, object string) ([]byte, error) {
	r, err := s.bucket.Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, object)
		}
		return nil, fmt.Errorf("failed to open GCS object %s: %w", object, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read GCS object %s: %w", object, err)
	}
	return data, nil
}

// Put writes content to a GCS object only if it doesn't already exist. An
// object that is already present is logged and skipped: contract identifiers
// are soft keys, so a re-submission landing in the same timestamp window is
// idempotent rather than destructive.
func (s *ObjectStore) Put(ctx context.Context, object, contentType string, data []byte) error {
	writer := s.bucket.Object(object).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		_ = writer.Close()
		if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 412 {
			slog.Info("SKIPPING: Object already exists.", "object", object)
			return nil
		}
		return fmt.Errorf("failed to write GCS object %s: %w", object, err)
	}

	if err := writer.Close(); err != nil {
		if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 412 {
			slog.Info("SKIPPING: Object already exists.", "object", object)
			return nil
		}
		return fmt.Errorf("failed to finalize GCS write for %s: %w", object, err)
	}
	return nil
}
