package entities

import "time"

// Step is the 1-based wizard position. Forward transitions are gated on the
// step's validator; backward transitions never re-validate.

type Step int

const (
	StepContact   Step = 1
	StepAddresses Step = 2
	StepItem      Step = 3
	StepSchedule  Step = 4
	StepReview    Step = 5

	FirstStep = StepContact
	LastStep  = StepReview
)

// WorkflowPhase is the coarse lifecycle of one scheduling session. It is a
// tagged state, not a pile of booleans: "submitted" and "abandoned" are
// terminal and distinct from being on step 5.

type WorkflowPhase string

const (
	PhaseCollecting WorkflowPhase = "collecting"
	PhaseSubmitted  WorkflowPhase = "submitted"
	PhaseAbandoned  WorkflowPhase = "abandoned"
)

// SubmissionStage tracks the orchestrator pipeline. failed_at remembers the
// stage so a retry can skip capture when money already moved.

type SubmissionStage string

const (
	StageIdle             SubmissionStage = "idle"
	StageUploading        SubmissionStage = "uploading"
	StageCapturingPayment SubmissionStage = "capturing_payment"
	StagePersisting       SubmissionStage = "persisting"
	StageSucceeded        SubmissionStage = "succeeded"
)

// SubmissionState is the mutable orchestration record carried by the
// workflow across submit attempts.

type SubmissionState struct {
	Stage    SubmissionStage `json:"stage"`
	FailedAt SubmissionStage `json:"failed_at,omitempty"`

	// Attachment URLs from the attempt in flight. Uploads are not memoized
	// across retries; these are overwritten on every attempt.
	QRCodeURL    string `json:"qr_code_url,omitempty"`
	ItemPhotoURL string `json:"item_photo_url,omitempty"`
}

// Workflow is one scheduling session: the step sequencer position, the
// shared draft, the payment session and the submission record. One instance
// per browser session; all mutations are serialized by the store.

type Workflow struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id,omitempty"`
	Phase      WorkflowPhase   `json:"phase"`
	Step       Step            `json:"step"`
	Draft      ReturnDraft     `json:"draft"`
	Session    *PaymentSession `json:"session,omitempty"`
	Submission SubmissionState `json:"submission"`
	ReturnID   string          `json:"return_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Attachment returns the staged attachment slot for the kind, which may be
// nil when nothing was staged yet.
func (w *Workflow) Attachment(kind AttachmentKind) *Attachment {
	switch kind {
	case AttachmentKindQRCode:
		return w.Draft.QRCode
	case AttachmentKindItemPhoto:
		return w.Draft.ItemPhoto
	}
	return nil
}

// SetAttachment replaces the staged attachment slot for the kind.
func (w *Workflow) SetAttachment(kind AttachmentKind, a *Attachment) {
	switch kind {
	case AttachmentKindQRCode:
		w.Draft.QRCode = a
	case AttachmentKindItemPhoto:
		w.Draft.ItemPhoto = a
	}
}

// Confirmation is the terminal success event handed back to the shell.
// Warnings carry best-effort profile-update failures that must not block the
// primary outcome.

type Confirmation struct {
	ReturnID    string   `json:"return_id"`
	AmountCents int64    `json:"amount_cents"`
	Warnings    []string `json:"warnings,omitempty"`
}
