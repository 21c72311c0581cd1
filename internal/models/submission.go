package models

// Address is the postal address block of a submission.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Submission is the intake payload posted by the contract form. Fields are
// passed through verbatim; the server performs no shape validation beyond
// requiring an email address.
type Submission struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         Address `json:"address"`
	Signature       string  `json:"signature"`
	Agreed          bool    `json:"agreed"`
	AgreedLiability bool    `json:"agreedLiability"`
	SubmissionDate  string  `json:"submissionDate"`
	Timestamp       string  `json:"timestamp"`
}

// SubmissionRecord is the archived form of a Submission: the raw payload
// plus a human-readable timestamp added at processing time.
type SubmissionRecord struct {
	Submission
	FormattedDate string `json:"formattedDate"`
}

// SubmissionResponse is returned on a completed pipeline run.
type SubmissionResponse struct {
	Success    bool   `json:"success"`
	ContractID string `json:"contractId"`
}

// ErrorResponse carries the opaque failure message; internal error detail
// never crosses this boundary.
type ErrorResponse struct {
	Error string `json:"error"`
}
