package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"boomerang/internal/domain/entities"
	"boomerang/internal/domain/pricing"
	"boomerang/internal/domain/validation"
	"boomerang/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidWorkflowID      = errors.New("invalid workflow id")
	ErrWorkflowNotFound       = errors.New("workflow not found")
	ErrWorkflowTerminal       = errors.New("workflow already submitted or abandoned")
	ErrAlreadyAtReview        = errors.New("already at the review step")
	ErrAlreadyAtFirstStep     = errors.New("already at the first step")
	ErrInvalidAttachmentKind  = errors.New("invalid attachment kind")
	ErrAttachmentNotImage     = errors.New("attachment must be an image")
	ErrAttachmentTooLarge     = errors.New("attachment exceeds the 5MB limit")
	ErrPaymentSessionCreation = errors.New("payment session could not be created")
	ErrStoreNotConfigured     = errors.New("workflow store not configured")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
)

// IWorkflowUseCase owns one scheduling session: draft mutation, the step
// sequencer and the payment-session lifecycle.
//
// Transition rules:
//   - Advance runs only the validator registered for the current step and
//     moves forward only on a clean result (all-or-nothing per step).
//   - Reaching the review step computes the total and resolves a payment
//     session for it before Advance returns.
//   - Retreat never validates and never loses data.

type IWorkflowUseCase interface {
	Start(ctx context.Context, userID string) (*entities.Workflow, error)
	Get(ctx context.Context, id string) (*entities.Workflow, error)
	UpdateDraft(ctx context.Context, id string, patch entities.DraftPatch) (*entities.Workflow, error)
	StageAttachment(ctx context.Context, id string, kind entities.AttachmentKind, fileName, contentType string, data []byte) (*entities.Workflow, error)
	ClearAttachment(ctx context.Context, id string, kind entities.AttachmentKind) (*entities.Workflow, error)
	Advance(ctx context.Context, id string) (*entities.Workflow, validation.Result, error)
	Retreat(ctx context.Context, id string) (*entities.Workflow, error)
	Quote(ctx context.Context, id string) (int64, error)
	Abandon(ctx context.Context, id string) (*entities.Workflow, error)
}

type WorkflowUseCase struct {
	store    interfaces.IWorkflowStore
	profiles interfaces.IProfileRepository
	gateway  interfaces.IPaymentGateway
	now      func() time.Time
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(store interfaces.IWorkflowStore, profiles interfaces.IProfileRepository, gateway interfaces.IPaymentGateway) *WorkflowUseCase {
	return &WorkflowUseCase{store: store, profiles: profiles, gateway: gateway, now: time.Now}
}

// Start creates an empty workflow on step 1. When a user id is given, saved
// profile data prefills the contact and address fields; a missing or failing
// profile read only skips the prefill.
func (u *WorkflowUseCase) Start(ctx context.Context, userID string) (*entities.Workflow, error) {
	if u.store == nil {
		return nil, ErrStoreNotConfigured
	}

	now := u.now().UTC()
	wf := &entities.Workflow{
		ID:         uuid.NewString(),
		UserID:     strings.TrimSpace(userID),
		Phase:      entities.PhaseCollecting,
		Step:       entities.FirstStep,
		Submission: entities.SubmissionState{Stage: entities.StageIdle},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if wf.UserID != "" && u.profiles != nil {
		profile, err := u.profiles.Get(ctx, wf.UserID)
		if err != nil {
			log.Printf("[workflow][usecase] profile prefill skipped workflow_id=%s user_id=%s err=%v", wf.ID, wf.UserID, err)
		} else {
			prefillDraft(&wf.Draft, profile)
		}
	}

	if err := u.store.Put(ctx, wf); err != nil {
		return nil, err
	}
	log.Printf("[workflow][usecase] started workflow_id=%s user_id=%s", wf.ID, wf.UserID)
	return wf, nil
}

func prefillDraft(d *entities.ReturnDraft, p entities.Profile) {
	d.FullName = p.FullName
	d.Email = p.Email
	if p.Phone != "" {
		d.Phone = p.Phone
		d.SavePhone = true
	}
	if p.Address != nil {
		d.Pickup = *p.Address
		d.SaveAddress = true
	}
	if p.ReturnStation != nil {
		d.ReturnStation = *p.ReturnStation
		d.SaveReturnStation = true
	}
}

func (u *WorkflowUseCase) Get(ctx context.Context, id string) (*entities.Workflow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidWorkflowID
	}
	wf, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if wf == nil {
		return nil, ErrWorkflowNotFound
	}
	return wf, nil
}

// UpdateDraft merges a partial field update. Changing item size or express
// pickup after a payment session exists marks that session stale; it will be
// replaced the next time the review step is reached.
func (u *WorkflowUseCase) UpdateDraft(ctx context.Context, id string, patch entities.DraftPatch) (*entities.Workflow, error) {
	return u.mutateCollecting(ctx, id, func(wf *entities.Workflow) error {
		priceChanged := patch.Apply(&wf.Draft)
		if priceChanged && wf.Session != nil && !wf.Session.Stale {
			wf.Session.Stale = true
			log.Printf("[workflow][usecase] payment session invalidated workflow_id=%s session_id=%s", wf.ID, wf.Session.ID)
		}
		return nil
	})
}

// StageAttachment buffers a file on the draft. Type and size are enforced
// here so a hopeless file is rejected immediately, and again by the step-3
// validator.
func (u *WorkflowUseCase) StageAttachment(ctx context.Context, id string, kind entities.AttachmentKind, fileName, contentType string, data []byte) (*entities.Workflow, error) {
	if !kind.Valid() {
		return nil, ErrInvalidAttachmentKind
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrAttachmentNotImage
	}
	if int64(len(data)) > entities.MaxAttachmentBytes {
		return nil, ErrAttachmentTooLarge
	}

	return u.mutateCollecting(ctx, id, func(wf *entities.Workflow) error {
		wf.SetAttachment(kind, entities.NewPendingAttachment(fileName, contentType, data))
		log.Printf("[workflow][usecase] attachment staged workflow_id=%s kind=%s file=%s size=%d", wf.ID, kind, fileName, len(data))
		return nil
	})
}

func (u *WorkflowUseCase) ClearAttachment(ctx context.Context, id string, kind entities.AttachmentKind) (*entities.Workflow, error) {
	if !kind.Valid() {
		return nil, ErrInvalidAttachmentKind
	}
	return u.mutateCollecting(ctx, id, func(wf *entities.Workflow) error {
		wf.SetAttachment(kind, nil)
		return nil
	})
}

// Advance validates the current step and moves forward on a clean result.
// An invalid result is not an error: the workflow stays put and the field
// errors are handed back for inline rendering.
func (u *WorkflowUseCase) Advance(ctx context.Context, id string) (*entities.Workflow, validation.Result, error) {
	var result validation.Result
	wf, err := u.mutateCollecting(ctx, id, func(wf *entities.Workflow) error {
		if wf.Step >= entities.LastStep {
			return ErrAlreadyAtReview
		}

		result = validation.ForStep(wf.Step)(wf.Draft, u.now())
		if !result.Valid() {
			log.Printf("[workflow][usecase] advance blocked workflow_id=%s step=%d errors=%d", wf.ID, wf.Step, len(result.Errors))
			return nil
		}

		next := wf.Step + 1
		if next == entities.StepReview {
			if err := u.ensurePaymentSession(ctx, wf); err != nil {
				return err
			}
		}
		wf.Step = next
		log.Printf("[workflow][usecase] advanced workflow_id=%s step=%d", wf.ID, wf.Step)
		return nil
	})
	if err != nil {
		return nil, validation.Result{}, err
	}
	return wf, result, nil
}

// ensurePaymentSession resolves a session bound to the current total,
// replacing a stale or mis-sized one. The caller must not expose the review
// step until this returns.
func (u *WorkflowUseCase) ensurePaymentSession(ctx context.Context, wf *entities.Workflow) error {
	if u.gateway == nil {
		return ErrGatewayNotConfigured
	}
	total := quoteFor(wf)
	if wf.Session.UsableFor(total) {
		return nil
	}

	session, err := u.gateway.CreateSession(ctx, total, "Scheduled package return pickup")
	if err != nil {
		log.Printf("[workflow][usecase] payment session creation failed workflow_id=%s amount=%d err=%v", wf.ID, total, err)
		return errors.Join(ErrPaymentSessionCreation, err)
	}
	wf.Session = &session
	log.Printf("[workflow][usecase] payment session created workflow_id=%s session_id=%s amount=%d", wf.ID, session.ID, total)
	return nil
}

// Retreat is unconditional: no validation re-run, no data loss.
func (u *WorkflowUseCase) Retreat(ctx context.Context, id string) (*entities.Workflow, error) {
	return u.mutateCollecting(ctx, id, func(wf *entities.Workflow) error {
		if wf.Step <= entities.FirstStep {
			return ErrAlreadyAtFirstStep
		}
		wf.Step--
		log.Printf("[workflow][usecase] retreated workflow_id=%s step=%d", wf.ID, wf.Step)
		return nil
	})
}

// Quote returns the current computed total in cents, 0 until a size is
// chosen.
func (u *WorkflowUseCase) Quote(ctx context.Context, id string) (int64, error) {
	wf, err := u.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return quoteFor(wf), nil
}

func quoteFor(wf *entities.Workflow) int64 {
	return pricing.ComputeTotal(wf.Draft.ItemSize, wf.Draft.ExpressPickup)
}

// Abandon is the explicit terminal exit short of submission. The instance
// stays readable so the shell can render the outcome, but no further
// transitions are possible.
func (u *WorkflowUseCase) Abandon(ctx context.Context, id string) (*entities.Workflow, error) {
	return u.mutateCollecting(ctx, id, func(wf *entities.Workflow) error {
		wf.Phase = entities.PhaseAbandoned
		log.Printf("[workflow][usecase] abandoned workflow_id=%s step=%d", wf.ID, wf.Step)
		return nil
	})
}

// mutateCollecting runs fn under the store lock after the shared
// phase/identity checks. Terminal workflows reject every mutation.
func (u *WorkflowUseCase) mutateCollecting(ctx context.Context, id string, fn func(wf *entities.Workflow) error) (*entities.Workflow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidWorkflowID
	}
	if u.store == nil {
		return nil, ErrStoreNotConfigured
	}

	wf, err := u.store.Mutate(ctx, id, func(wf *entities.Workflow) error {
		if wf.Phase != entities.PhaseCollecting {
			return ErrWorkflowTerminal
		}
		if err := fn(wf); err != nil {
			return err
		}
		wf.UpdatedAt = u.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if wf == nil {
		return nil, ErrWorkflowNotFound
	}
	return wf, nil
}
