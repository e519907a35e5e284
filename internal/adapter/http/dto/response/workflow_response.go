package response

import (
	"time"

	"boomerang/internal/domain/entities"
	"boomerang/internal/domain/validation"
)

type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// AttachmentResponse renders a staged or uploaded attachment. The raw bytes
// never leave the server; pending files expose metadata only.
type AttachmentResponse struct {
	State       string `json:"state"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url,omitempty"`
}

type DraftResponse struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SavePhone bool   `json:"save_phone"`

	Pickup            AddressResponse `json:"pickup"`
	SaveAddress       bool            `json:"save_address"`
	ReturnStation     AddressResponse `json:"return_station"`
	SaveReturnStation bool            `json:"save_return_station"`

	ItemSize        string              `json:"item_size"`
	AdditionalNotes string              `json:"additional_notes"`
	QRCode          *AttachmentResponse `json:"qr_code,omitempty"`
	ItemPhoto       *AttachmentResponse `json:"item_photo,omitempty"`

	PickupDate    *time.Time `json:"pickup_date,omitempty"`
	TimeSlot      string     `json:"time_slot"`
	ExpressPickup bool       `json:"express_pickup"`
	TermsAccepted bool       `json:"terms_accepted"`
}

// SessionResponse exposes only what the client needs to render the review
// step; the provider-side id stays server-side.
type SessionResponse struct {
	AmountCents int64 `json:"amount_cents"`
	Stale       bool  `json:"stale"`
	Captured    bool  `json:"captured"`
}

type SubmissionResponse struct {
	Stage    string `json:"stage"`
	FailedAt string `json:"failed_at,omitempty"`
}

type WorkflowResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id,omitempty"`
	Phase      string             `json:"phase"`
	Step       int                `json:"step"`
	Draft      DraftResponse      `json:"draft"`
	Session    *SessionResponse   `json:"session,omitempty"`
	Submission SubmissionResponse `json:"submission"`
	QuoteCents int64              `json:"quote_cents"`
	ReturnID   string             `json:"return_id,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromWorkflow(wf *entities.Workflow, quoteCents int64) WorkflowResponse {
	resp := WorkflowResponse{
		ID:     wf.ID,
		UserID: wf.UserID,
		Phase:  string(wf.Phase),
		Step:   int(wf.Step),
		Draft: DraftResponse{
			FullName:  wf.Draft.FullName,
			Email:     wf.Draft.Email,
			Phone:     wf.Draft.Phone,
			SavePhone: wf.Draft.SavePhone,

			Pickup:            fromAddress(wf.Draft.Pickup),
			SaveAddress:       wf.Draft.SaveAddress,
			ReturnStation:     fromAddress(wf.Draft.ReturnStation),
			SaveReturnStation: wf.Draft.SaveReturnStation,

			ItemSize:        string(wf.Draft.ItemSize),
			AdditionalNotes: wf.Draft.AdditionalNotes,
			QRCode:          fromAttachment(wf.Draft.QRCode),
			ItemPhoto:       fromAttachment(wf.Draft.ItemPhoto),

			TimeSlot:      string(wf.Draft.TimeSlot),
			ExpressPickup: wf.Draft.ExpressPickup,
			TermsAccepted: wf.Draft.TermsAccepted,
		},
		Submission: SubmissionResponse{
			Stage:    string(wf.Submission.Stage),
			FailedAt: string(wf.Submission.FailedAt),
		},
		QuoteCents: quoteCents,
		ReturnID:   wf.ReturnID,
		CreatedAt:  wf.CreatedAt,
		UpdatedAt:  wf.UpdatedAt,
	}
	if !wf.Draft.PickupDate.IsZero() {
		date := wf.Draft.PickupDate
		resp.Draft.PickupDate = &date
	}
	if wf.Session != nil {
		resp.Session = &SessionResponse{
			AmountCents: wf.Session.AmountCents,
			Stale:       wf.Session.Stale,
			Captured:    wf.Session.Captured,
		}
	}
	return resp
}

func fromAddress(a entities.Address) AddressResponse {
	return AddressResponse{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

func fromAttachment(a *entities.Attachment) *AttachmentResponse {
	if a == nil {
		return nil
	}
	return &AttachmentResponse{
		State:       string(a.State),
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		URL:         a.URL,
	}
}

// FieldErrorResponse is one inline validation failure keyed by field name.
type FieldErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ValidationFailedResponse is the 422 body for a blocked advance or submit.
type ValidationFailedResponse struct {
	Code    string                        `json:"code"`
	Message string                        `json:"message"`
	Errors  map[string]FieldErrorResponse `json:"errors"`
}

func FromValidationResult(result validation.Result) ValidationFailedResponse {
	fields := make(map[string]FieldErrorResponse, len(result.Errors))
	for field, fe := range result.Errors {
		fields[field] = FieldErrorResponse{Kind: string(fe.Kind), Message: fe.Message}
	}
	return ValidationFailedResponse{
		Code:    "VALIDATION_FAILED",
		Message: "Please fix the highlighted fields",
		Errors:  fields,
	}
}

type QuoteResponse struct {
	AmountCents int64 `json:"amount_cents"`
}

// SubmissionFailedResponse tells the client which stage broke and whether
// re-posting submit can succeed without first changing the draft.

type SubmissionFailedResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	FailedAt  string `json:"failed_at,omitempty"`
	Retryable bool   `json:"retryable"`
}

type ConfirmationResponse struct {
	ReturnID    string   `json:"return_id"`
	AmountCents int64    `json:"amount_cents"`
	Warnings    []string `json:"warnings,omitempty"`
}

func FromConfirmation(c entities.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{
		ReturnID:    c.ReturnID,
		AmountCents: c.AmountCents,
		Warnings:    c.Warnings,
	}
}
