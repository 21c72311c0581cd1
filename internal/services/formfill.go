package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/barbabyfitness/contractflow/internal/models"
)

// fieldValue pairs a PDF form-field name with the text to place in it.
type fieldValue struct {
	Name  string
	Value string
}

// fieldValues maps a submission onto the field schema shared by both
// agreement templates.
func fieldValues(sub models.Submission, signedAt time.Time) []fieldValue {
	return []fieldValue{
		{"firstName", sub.FirstName},
		{"lastName", sub.LastName},
		{"emailAddress", sub.Email},
		{"phoneNumber", sub.Phone},
		{"streetAddress", sub.Address.Street},
		{"city", sub.Address.City},
		{"state", sub.Address.State},
		{"zipCode", sub.Address.ZipCode},
		{"recipientName", sub.Signature},
		{"dateOfSigning", formatSigningDate(signedAt)},
	}
}

// FormFillEngine merges submissions into blank agreement templates with pdfcpu.
type FormFillEngine struct {
	conf *model.Configuration
}

func NewFormFillEngine() *FormFillEngine {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &FormFillEngine{conf: conf}
}

// Fill sets every schema field present in the template's form catalog, locks
// the whole form read-only and returns the serialized document. Schema
// fields absent from this particular template are logged and skipped, which
// tolerates template drift; only structural failures (parse, fill,
// serialize) are errors.
func (e *FormFillEngine) Fill(template []byte, sub models.Submission, signedAt time.Time) ([]byte, error) {
	catalog, err := e.fieldCatalog(template)
	if err != nil {
		return nil, err
	}

	matched, skipped := matchFields(catalog, fieldValues(sub, signedAt))
	if len(skipped) > 0 {
		slog.Warn("Template is missing expected form fields, skipping them.", "fields", skipped)
	}

	filled := template
	if len(matched) > 0 {
		fillJSON, err := json.Marshal(form.FormGroup{Forms: []form.Form{{TextFields: matched}}})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal form fill data: %w", err)
		}
		var buf bytes.Buffer
		if err := api.FillForm(bytes.NewReader(template), bytes.NewReader(fillJSON), &buf, e.conf); err != nil {
			return nil, fmt.Errorf("failed to fill form: %w", err)
		}
		filled = buf.Bytes()
	}

	var out bytes.Buffer
	if err := api.LockFormFields(bytes.NewReader(filled), &out, nil, e.conf); err != nil {
		return nil, fmt.Errorf("failed to lock form fields: %w", err)
	}
	return out.Bytes(), nil
}

// fieldCatalog returns the set of text-field IDs present in the template.
func (e *FormFillEngine) fieldCatalog(template []byte) (map[string]bool, error) {
	var buf bytes.Buffer
	if err := api.ExportFormJSON(bytes.NewReader(template), &buf, "template.pdf", e.conf); err != nil {
		return nil, fmt.Errorf("failed to read template form catalog: %w", err)
	}
	var group form.FormGroup
	if err := json.Unmarshal(buf.Bytes(), &group); err != nil {
		return nil, fmt.Errorf("failed to decode template form catalog: %w", err)
	}

	catalog := make(map[string]bool)
	for _, fm := range group.Forms {
		for _, tf := range fm.TextFields {
			catalog[tf.ID] = true
		}
	}
	return catalog, nil
}

// matchFields intersects the desired values with the template's catalog.
// Every matched field is marked locked so filling and flattening happen in
// one pass.
func matchFields(catalog map[string]bool, values []fieldValue) ([]*form.TextField, []string) {
	var matched []*form.TextField
	var skipped []string
	for _, v := range values {
		if !catalog[v.Name] {
			skipped = append(skipped, v.Name)
			continue
		}
		matched = append(matched, &form.TextField{ID: v.Name, Value: v.Value, Locked: true})
	}
	return matched, skipped
}
