// Package validation holds the per-step rulesets for the return-scheduling
// wizard. Each validator is a pure function over the draft subset its step
// owns; nothing here touches the network.
package validation

// ErrorKind classifies a field failure so the surface can choose the right
// remediation text. A format error is a local string-pattern failure; a
// service-area error means the value is well-formed but outside coverage.

type ErrorKind string

const (
	KindRequired      ErrorKind = "required"
	KindLength        ErrorKind = "length"
	KindFormat        ErrorKind = "format"
	KindServiceArea   ErrorKind = "service_area"
	KindInvalidChoice ErrorKind = "invalid_choice"
	KindFileType      ErrorKind = "file_type"
	KindFileSize      ErrorKind = "file_size"
	KindDate          ErrorKind = "date"
	KindTerms         ErrorKind = "terms"
)

// FieldError is one inline error keyed by the offending field.

type FieldError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Result is the outcome of validating one step. Progression is
// all-or-nothing: any entry in Errors blocks the forward transition.

type Result struct {
	Errors map[string]FieldError `json:"errors,omitempty"`
}

func newResult() Result {
	return Result{Errors: map[string]FieldError{}}
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) add(field string, kind ErrorKind, message string) {
	if r.Errors == nil {
		r.Errors = map[string]FieldError{}
	}
	if _, exists := r.Errors[field]; exists {
		// First failure per field wins, matching one inline message per input.
		return
	}
	r.Errors[field] = FieldError{Kind: kind, Message: message}
}
