package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"boomerang/internal/adapter/http/dto/request"
	response "boomerang/internal/adapter/http/dto/response"
	"boomerang/internal/domain/entities"
	"boomerang/internal/domain/pricing"
	"boomerang/internal/usecase"
	"boomerang/pkg"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler handles HTTP requests for the return-scheduling wizard.

type WorkflowHandler struct {
	workflows   usecase.IWorkflowUseCase
	submissions usecase.ISubmissionUseCase
}

func NewWorkflowHandler(workflows usecase.IWorkflowUseCase, submissions usecase.ISubmissionUseCase) *WorkflowHandler {
	return &WorkflowHandler{workflows: workflows, submissions: submissions}
}

// StartWorkflow opens a new scheduling session.
func (h *WorkflowHandler) StartWorkflow(c *gin.Context) {
	var req request.StartWorkflowRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[workflow][handler] start invalid payload err=%v", err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	wf, err := h.workflows.Start(c.Request.Context(), req.UserID)
	if err != nil {
		log.Printf("[workflow][handler] start failed user_id=%s err=%v", req.UserID, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] start success workflow_id=%s", wf.ID)

	c.JSON(http.StatusCreated, response.FromWorkflow(wf, quoteOf(wf)))
}

// GetWorkflow returns the current wizard state.
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	id := c.Param("id")

	wf, err := h.workflows.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workflow][handler] get failed workflow_id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflow(wf, quoteOf(wf)))
}

// UpdateDraft merges a partial field update into the draft.
func (h *WorkflowHandler) UpdateDraft(c *gin.Context) {
	id := c.Param("id")

	var req request.DraftPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[workflow][handler] draft invalid payload workflow_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	wf, err := h.workflows.UpdateDraft(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		log.Printf("[workflow][handler] draft update failed workflow_id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflow(wf, quoteOf(wf)))
}

// UploadAttachment stages a multipart file on the draft.
func (h *WorkflowHandler) UploadAttachment(c *gin.Context) {
	id := c.Param("id")
	kind := entities.AttachmentKind(c.Param("kind"))

	header, err := c.FormFile("file")
	if err != nil {
		log.Printf("[workflow][handler] attachment missing file workflow_id=%s kind=%s err=%v", id, kind, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "A file form field is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := header.Open()
	if err != nil {
		log.Printf("[workflow][handler] attachment open failed workflow_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read the uploaded file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, entities.MaxAttachmentBytes+1))
	if err != nil {
		log.Printf("[workflow][handler] attachment read failed workflow_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read the uploaded file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	wf, err := h.workflows.StageAttachment(c.Request.Context(), id, kind, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		log.Printf("[workflow][handler] attachment stage failed workflow_id=%s kind=%s err=%v", id, kind, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] attachment staged workflow_id=%s kind=%s file=%s", id, kind, header.Filename)

	c.JSON(http.StatusOK, response.FromWorkflow(wf, quoteOf(wf)))
}

// RemoveAttachment clears a staged attachment slot.
func (h *WorkflowHandler) RemoveAttachment(c *gin.Context) {
	id := c.Param("id")
	kind := entities.AttachmentKind(c.Param("kind"))

	wf, err := h.workflows.ClearAttachment(c.Request.Context(), id, kind)
	if err != nil {
		log.Printf("[workflow][handler] attachment clear failed workflow_id=%s kind=%s err=%v", id, kind, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflow(wf, quoteOf(wf)))
}

// Advance validates the current step and moves forward. A validation failure
// renders as 422 with the field errors; the wizard stays on its step.
func (h *WorkflowHandler) Advance(c *gin.Context) {
	id := c.Param("id")

	wf, result, err := h.workflows.Advance(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workflow][handler] advance failed workflow_id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !result.Valid() {
		c.JSON(http.StatusUnprocessableEntity, response.FromValidationResult(result))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflow(wf, quoteOf(wf)))
}

// Retreat moves one step back without validating.
func (h *WorkflowHandler) Retreat(c *gin.Context) {
	id := c.Param("id")

	wf, err := h.workflows.Retreat(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workflow][handler] retreat failed workflow_id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkflow(wf, quoteOf(wf)))
}

// Quote returns the current total in cents.
func (h *WorkflowHandler) Quote(c *gin.Context) {
	id := c.Param("id")

	total, err := h.workflows.Quote(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workflow][handler] quote failed workflow_id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuoteResponse{AmountCents: total})
}

// Submit runs the submission pipeline and returns the confirmation.
func (h *WorkflowHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[workflow][handler] submit start workflow_id=%s", id)

	confirmation, err := h.submissions.Submit(c.Request.Context(), id)
	if err != nil {
		var invalid *usecase.DraftInvalidError
		if errors.As(err, &invalid) {
			log.Printf("[workflow][handler] submit re-validation blocked workflow_id=%s errors=%d", id, len(invalid.Result.Errors))
			c.JSON(http.StatusUnprocessableEntity, response.FromValidationResult(invalid.Result))
			return
		}
		log.Printf("[workflow][handler] submit failed workflow_id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		failedAt, retryable := submitFailureInfo(err)
		c.JSON(appErr.HTTPStatus, response.SubmissionFailedResponse{
			Code:      appErr.Code,
			Message:   appErr.Message,
			FailedAt:  failedAt,
			Retryable: retryable,
		})
		return
	}
	log.Printf("[workflow][handler] submit success workflow_id=%s return_id=%s", id, confirmation.ReturnID)

	c.JSON(http.StatusCreated, response.FromConfirmation(confirmation))
}

// Abandon terminally exits the wizard without submitting.
func (h *WorkflowHandler) Abandon(c *gin.Context) {
	id := c.Param("id")

	wf, err := h.workflows.Abandon(c.Request.Context(), id)
	if err != nil {
		log.Printf("[workflow][handler] abandon failed workflow_id=%s err=%v", id, err)
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workflow][handler] abandoned workflow_id=%s", id)

	c.JSON(http.StatusOK, response.FromWorkflow(wf, quoteOf(wf)))
}

// submitFailureInfo names the pipeline stage a submit error belongs to.
// Stale or missing sessions are not retryable as-is: the client has to go
// back through advance so a fresh session gets created.
func submitFailureInfo(err error) (string, bool) {
	switch {
	case errors.Is(err, usecase.ErrUploadFailed):
		return string(entities.StageUploading), true
	case errors.Is(err, usecase.ErrPaymentCaptureFailed):
		return string(entities.StageCapturingPayment), true
	case errors.Is(err, usecase.ErrPersistAfterCapture):
		return string(entities.StagePersisting), true
	default:
		return "", false
	}
}

func quoteOf(wf *entities.Workflow) int64 {
	return pricing.ComputeTotal(wf.Draft.ItemSize, wf.Draft.ExpressPickup)
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkflowID), errors.Is(err, usecase.ErrInvalidAttachmentKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkflowNotFound):
		return pkg.NewDomainErrorSimple("WORKFLOW_NOT_FOUND", "Workflow not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkflowTerminal):
		return pkg.NewDomainErrorSimple("WORKFLOW_FINISHED", "This workflow is already finished", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyAtReview), errors.Is(err, usecase.ErrAlreadyAtFirstStep):
		return pkg.NewDomainErrorSimple("STEP_OUT_OF_RANGE", "No further step in that direction", http.StatusConflict)
	case errors.Is(err, usecase.ErrAttachmentNotImage):
		return pkg.NewDomainErrorSimple("ATTACHMENT_NOT_IMAGE", "Please upload an image file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAttachmentTooLarge):
		return pkg.NewDomainErrorSimple("ATTACHMENT_TOO_LARGE", "File size should be less than 5MB", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentSessionCreation):
		return pkg.NewDomainError("PAYMENT_SESSION_FAILED", "Could not prepare the payment, please try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNotReadyToSubmit):
		return pkg.NewDomainErrorSimple("NOT_AT_REVIEW", "The workflow is not at the review step", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentSessionMissing), errors.Is(err, usecase.ErrPaymentSessionStale):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_STALE", "The payment amount changed, please review your order again", http.StatusConflict)
	case errors.Is(err, usecase.ErrUploadFailed):
		return pkg.NewDomainError("UPLOAD_FAILED", "Could not upload your files, please try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentCaptureFailed):
		return pkg.NewDomainError("PAYMENT_FAILED", "Payment failed, you have not been charged", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPersistAfterCapture):
		return pkg.NewDomainError("RECORD_CREATE_FAILED_AFTER_CAPTURE", "Payment went through but we could not finish scheduling; please retry, you will not be charged again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
