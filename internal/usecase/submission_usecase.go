package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"boomerang/internal/domain/entities"
	"boomerang/internal/domain/validation"
	"boomerang/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotReadyToSubmit      = errors.New("workflow is not at the review step")
	ErrPaymentSessionStale   = errors.New("payment session is stale for the current total")
	ErrPaymentSessionMissing = errors.New("payment session missing")
	ErrUploadFailed          = errors.New("attachment upload failed")
	ErrPaymentCaptureFailed  = errors.New("payment capture failed")
	ErrPersistAfterCapture   = errors.New("payment succeeded but record creation failed")
	ErrStorageNotConfigured  = errors.New("file storage not configured")
	ErrReturnsNotConfigured  = errors.New("return repository not configured")
)

// DraftInvalidError carries the field errors from the defensive re-check at
// submission time (stale pickup date, missing attachments).

type DraftInvalidError struct {
	Result validation.Result
}

func (e *DraftInvalidError) Error() string {
	return fmt.Sprintf("draft failed submission re-validation (%d field errors)", len(e.Result.Errors))
}

// ISubmissionUseCase converts a reviewed draft into persisted records:
// attachment uploads, payment capture and return-record creation, in that
// dependency order.
//
// Stage pipeline: uploading -> capturing_payment -> persisting -> succeeded.
// Any stage may fail; the workflow then stays retryable. A retry restarts at
// uploading (uploads are not memoized across attempts), except that capture
// is skipped when money already moved; the existing payment reference is
// reused so the user is never charged twice.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, workflowID string) (entities.Confirmation, error)
}

type SubmissionUseCase struct {
	store    interfaces.IWorkflowStore
	storage  interfaces.IFileStorage
	gateway  interfaces.IPaymentGateway
	returns  interfaces.IReturnRepository
	profiles interfaces.IProfileRepository
	now      func() time.Time
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(
	store interfaces.IWorkflowStore,
	storage interfaces.IFileStorage,
	gateway interfaces.IPaymentGateway,
	returns interfaces.IReturnRepository,
	profiles interfaces.IProfileRepository,
) *SubmissionUseCase {
	return &SubmissionUseCase{store: store, storage: storage, gateway: gateway, returns: returns, profiles: profiles, now: time.Now}
}

func (u *SubmissionUseCase) Submit(ctx context.Context, workflowID string) (entities.Confirmation, error) {
	workflowID = strings.TrimSpace(workflowID)
	if workflowID == "" {
		return entities.Confirmation{}, ErrInvalidWorkflowID
	}
	if u.store == nil {
		return entities.Confirmation{}, ErrStoreNotConfigured
	}
	if u.storage == nil {
		return entities.Confirmation{}, ErrStorageNotConfigured
	}
	if u.gateway == nil {
		return entities.Confirmation{}, ErrGatewayNotConfigured
	}
	if u.returns == nil {
		return entities.Confirmation{}, ErrReturnsNotConfigured
	}

	var confirmation entities.Confirmation
	wf, err := u.store.Mutate(ctx, workflowID, func(wf *entities.Workflow) error {
		c, err := u.submit(ctx, wf)
		if err != nil {
			return err
		}
		confirmation = c
		return nil
	})
	if err != nil {
		return entities.Confirmation{}, err
	}
	if wf == nil {
		return entities.Confirmation{}, ErrWorkflowNotFound
	}
	return confirmation, nil
}

// submit runs the staged pipeline while holding the workflow lock. After any
// failure the submission state records exactly where it stopped, so the
// orchestrator always knows whether capture happened.
func (u *SubmissionUseCase) submit(ctx context.Context, wf *entities.Workflow) (entities.Confirmation, error) {
	if wf.Phase != entities.PhaseCollecting {
		return entities.Confirmation{}, ErrWorkflowTerminal
	}
	if wf.Step != entities.StepReview {
		return entities.Confirmation{}, ErrNotReadyToSubmit
	}

	now := u.now()

	// Defensive re-check: step-3 and step-4 guarantees may have gone stale
	// (a pickup date chosen days earlier, an attachment cleared).
	recheck := validation.ValidateItem(wf.Draft, now)
	for field, fe := range validation.ValidateSchedule(wf.Draft, now).Errors {
		recheck.Errors[field] = fe
	}
	if !recheck.Valid() {
		log.Printf("[submission][usecase] re-validation blocked workflow_id=%s errors=%d", wf.ID, len(recheck.Errors))
		return entities.Confirmation{}, &DraftInvalidError{Result: recheck}
	}

	total := currentTotal(wf)
	if wf.Session == nil {
		return entities.Confirmation{}, ErrPaymentSessionMissing
	}
	if !wf.Session.Captured && !wf.Session.UsableFor(total) {
		return entities.Confirmation{}, ErrPaymentSessionStale
	}

	// Stage 1: uploads. Both binaries move to storage before any money does;
	// a failure here has no side effects beyond possibly orphaned files.
	wf.Submission.Stage = entities.StageUploading
	log.Printf("[submission][usecase] uploading workflow_id=%s", wf.ID)

	qrURL, err := u.storage.Upload(ctx, wf.Draft.QRCode.FileName, wf.Draft.QRCode.ContentType, wf.Draft.QRCode.Data)
	if err != nil {
		return entities.Confirmation{}, u.fail(wf, entities.StageUploading, ErrUploadFailed, err)
	}
	photoURL, err := u.storage.Upload(ctx, wf.Draft.ItemPhoto.FileName, wf.Draft.ItemPhoto.ContentType, wf.Draft.ItemPhoto.Data)
	if err != nil {
		return entities.Confirmation{}, u.fail(wf, entities.StageUploading, ErrUploadFailed, err)
	}
	wf.Submission.QRCodeURL = qrURL
	wf.Submission.ItemPhotoURL = photoURL

	// Stage 2: capture, skipped when a previous attempt already captured
	// (retry after a persistence failure). Capture is at-most-once.
	if !wf.Session.Captured {
		wf.Submission.Stage = entities.StageCapturingPayment
		log.Printf("[submission][usecase] capturing payment workflow_id=%s session_id=%s amount=%d", wf.ID, wf.Session.ID, wf.Session.AmountCents)

		reference, err := u.gateway.Capture(ctx, wf.Session.ID)
		if err != nil {
			return entities.Confirmation{}, u.fail(wf, entities.StageCapturingPayment, ErrPaymentCaptureFailed, err)
		}
		wf.Session.Captured = true
		wf.Session.Reference = reference
	} else {
		log.Printf("[submission][usecase] capture skipped, reusing reference workflow_id=%s reference=%s", wf.ID, wf.Session.Reference)
	}

	// Stage 3: persistence. A failure here is the one dangerous state
	// (money moved but no record exists) and is surfaced as its own class.
	wf.Submission.Stage = entities.StagePersisting
	rec := buildReturnRecord(wf, now.UTC())
	created, err := u.returns.Create(ctx, rec)
	if err != nil {
		return entities.Confirmation{}, u.fail(wf, entities.StagePersisting, ErrPersistAfterCapture, err)
	}

	warnings := u.saveProfileFields(ctx, wf)

	wf.Draft.QRCode.MarkUploaded(qrURL)
	wf.Draft.ItemPhoto.MarkUploaded(photoURL)
	wf.Submission.Stage = entities.StageSucceeded
	wf.Submission.FailedAt = ""
	wf.Phase = entities.PhaseSubmitted
	wf.ReturnID = created.ID
	log.Printf("[submission][usecase] submitted workflow_id=%s return_id=%s amount=%d warnings=%d", wf.ID, created.ID, rec.AmountCents, len(warnings))

	return entities.Confirmation{ReturnID: created.ID, AmountCents: rec.AmountCents, Warnings: warnings}, nil
}

func (u *SubmissionUseCase) fail(wf *entities.Workflow, stage entities.SubmissionStage, class, cause error) error {
	wf.Submission.Stage = entities.StageIdle
	wf.Submission.FailedAt = stage
	log.Printf("[submission][usecase] failed workflow_id=%s stage=%s err=%v", wf.ID, stage, cause)
	return fmt.Errorf("%w: %v", class, cause)
}

// saveProfileFields executes the save-flag batch best-effort. Failures never
// fail the submission; they come back as warnings for the shell to render as
// a secondary notice.
func (u *SubmissionUseCase) saveProfileFields(ctx context.Context, wf *entities.Workflow) []string {
	if wf.UserID == "" || u.profiles == nil {
		return nil
	}

	var update entities.ProfileUpdate
	if wf.Draft.SavePhone && wf.Draft.Phone != "" {
		phone := wf.Draft.Phone
		update.Phone = &phone
	}
	if wf.Draft.SaveAddress {
		addr := wf.Draft.Pickup
		update.Address = &addr
	}
	if wf.Draft.SaveReturnStation {
		station := wf.Draft.ReturnStation
		update.ReturnStation = &station
	}
	if update.Empty() {
		return nil
	}

	if _, err := u.profiles.Update(ctx, wf.UserID, update); err != nil {
		log.Printf("[submission][usecase] profile save failed (non-blocking) workflow_id=%s user_id=%s err=%v", wf.ID, wf.UserID, err)
		return []string{"Your return was scheduled, but we could not save your profile preferences. You can update them later from your account."}
	}
	return nil
}

func currentTotal(wf *entities.Workflow) int64 {
	if wf.Session != nil && wf.Session.Captured {
		// After capture the charged amount is authoritative.
		return wf.Session.AmountCents
	}
	return quoteFor(wf)
}

func buildReturnRecord(wf *entities.Workflow, now time.Time) entities.ReturnRecord {
	return entities.ReturnRecord{
		ID:     uuid.NewString(),
		UserID: wf.UserID,

		FullName: wf.Draft.FullName,
		Email:    wf.Draft.Email,
		Phone:    wf.Draft.Phone,

		Pickup:        wf.Draft.Pickup,
		ReturnStation: wf.Draft.ReturnStation,

		ItemSize:        wf.Draft.ItemSize,
		AdditionalNotes: wf.Draft.AdditionalNotes,
		QRCodeURL:       wf.Submission.QRCodeURL,
		ItemPhotoURL:    wf.Submission.ItemPhotoURL,

		PickupDate:    wf.Draft.PickupDate,
		TimeSlot:      wf.Draft.TimeSlot,
		ExpressPickup: wf.Draft.ExpressPickup,

		AmountCents:      wf.Session.AmountCents,
		PaymentReference: wf.Session.Reference,

		Status: entities.ReturnStatusScheduled,
		History: []entities.StatusChange{
			{Status: entities.ReturnStatusScheduled, Note: "Return scheduled", At: now},
		},

		CreatedAt: now,
		UpdatedAt: now,
	}
}
