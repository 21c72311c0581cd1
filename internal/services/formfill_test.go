package services

import (
	"testing"
	"time"
)

func allCatalog() map[string]bool {
	return map[string]bool{
		"firstName":     true,
		"lastName":      true,
		"emailAddress":  true,
		"phoneNumber":   true,
		"streetAddress": true,
		"city":          true,
		"state":         true,
		"zipCode":       true,
		"recipientName": true,
		"dateOfSigning": true,
	}
}

func TestFieldValuesMapping(t *testing.T) {
	signedAt := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	values := fieldValues(janeDoe(), signedAt)

	want := map[string]string{
		"firstName":     "Jane",
		"lastName":      "Doe",
		"emailAddress":  "jane@x.com",
		"phoneNumber":   "(310) 555-1212",
		"streetAddress": "1 Main St",
		"city":          "LA",
		"state":         "CA",
		"zipCode":       "90001",
		"recipientName": "Jane Doe",
		"dateOfSigning": "March 14, 2025",
	}
	if len(values) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(values))
	}
	for _, v := range values {
		if want[v.Name] != v.Value {
			t.Fatalf("field %s: got %q want %q", v.Name, v.Value, want[v.Name])
		}
	}
}

func TestMatchFieldsFillsEverythingPresent(t *testing.T) {
	signedAt := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	matched, skipped := matchFields(allCatalog(), fieldValues(janeDoe(), signedAt))

	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped fields: %v", skipped)
	}
	if len(matched) != 10 {
		t.Fatalf("expected 10 matched fields, got %d", len(matched))
	}
	for _, tf := range matched {
		if !tf.Locked {
			t.Fatalf("field %s must be locked after fill", tf.ID)
		}
	}
}

func TestMatchFieldsSkipsAbsentNamesWithoutError(t *testing.T) {
	catalog := allCatalog()
	delete(catalog, "phoneNumber")
	delete(catalog, "dateOfSigning")

	signedAt := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	matched, skipped := matchFields(catalog, fieldValues(janeDoe(), signedAt))

	if len(matched) != 8 {
		t.Fatalf("expected 8 matched fields, got %d", len(matched))
	}
	if len(skipped) != 2 || skipped[0] != "phoneNumber" || skipped[1] != "dateOfSigning" {
		t.Fatalf("unexpected skipped set: %v", skipped)
	}
	for _, tf := range matched {
		if tf.ID == "phoneNumber" || tf.ID == "dateOfSigning" {
			t.Fatalf("absent field %s must not be filled", tf.ID)
		}
	}
	// City still gets its value even though siblings are missing.
	for _, tf := range matched {
		if tf.ID == "city" && tf.Value != "LA" {
			t.Fatalf("city value: %q", tf.Value)
		}
	}
}

func TestMatchFieldsEmptyCatalog(t *testing.T) {
	signedAt := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	matched, skipped := matchFields(map[string]bool{}, fieldValues(janeDoe(), signedAt))
	if len(matched) != 0 {
		t.Fatalf("nothing should match an empty catalog")
	}
	if len(skipped) != 10 {
		t.Fatalf("all fields should be reported skipped, got %d", len(skipped))
	}
}
