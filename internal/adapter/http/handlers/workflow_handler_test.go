package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"boomerang/internal/adapter/http/handlers/mocks"
	"boomerang/internal/domain/entities"
	"boomerang/internal/domain/validation"
	"boomerang/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleWorkflow() *entities.Workflow {
	now := time.Now().UTC()
	return &entities.Workflow{
		ID:         "wf-1",
		Phase:      entities.PhaseCollecting,
		Step:       entities.StepContact,
		Submission: entities.SubmissionState{Stage: entities.StageIdle},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestWorkflowHandler_StartWorkflow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows", h.StartWorkflow)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows", h.StartWorkflow)

		uc.EXPECT().Start(gomock.Any(), "user-1").Return(sampleWorkflow(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows", bytes.NewBufferString(`{"user_id":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "wf-1" || body["step"] != float64(1) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("empty body starts anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows", h.StartWorkflow)

		uc.EXPECT().Start(gomock.Any(), "").Return(sampleWorkflow(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_GetWorkflow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/workflows/:id", h.GetWorkflow)

		uc.EXPECT().Get(gomock.Any(), "missing").Return(nil, usecase.ErrWorkflowNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/workflows/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/workflows/:id", h.GetWorkflow)

		wf := sampleWorkflow()
		wf.Draft.ItemSize = entities.ItemSizeLarge
		wf.Draft.ExpressPickup = true
		uc.EXPECT().Get(gomock.Any(), "wf-1").Return(wf, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/workflows/wf-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["quote_cents"] != float64(1500) {
			t.Fatalf("expected quote 1500, got %v", body["quote_cents"])
		}
	})
}

func TestWorkflowHandler_UpdateDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/workflows/:id/draft", h.UpdateDraft)

		req := httptest.NewRequest(http.MethodPut, "/v1/workflows/wf-1/draft", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/workflows/:id/draft", h.UpdateDraft)

		uc.EXPECT().UpdateDraft(gomock.Any(), "wf-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, patch entities.DraftPatch) (*entities.Workflow, error) {
				if patch.ItemSize == nil || *patch.ItemSize != entities.ItemSizeMedium {
					t.Errorf("expected item_size medium in patch, got %v", patch.ItemSize)
				}
				if patch.Email != nil {
					t.Errorf("unexpected email in patch: %v", *patch.Email)
				}
				wf := sampleWorkflow()
				wf.Draft.ItemSize = entities.ItemSizeMedium
				return wf, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/workflows/wf-1/draft", bytes.NewBufferString(`{"item_size":"medium"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("terminal workflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/workflows/:id/draft", h.UpdateDraft)

		uc.EXPECT().UpdateDraft(gomock.Any(), "wf-1", gomock.Any()).Return(nil, usecase.ErrWorkflowTerminal)

		req := httptest.NewRequest(http.MethodPut, "/v1/workflows/wf-1/draft", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func multipartFile(t *testing.T, field, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestWorkflowHandler_UploadAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows/:id/attachments/:kind", h.UploadAttachment)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/attachments/qr_code", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stages the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows/:id/attachments/:kind", h.UploadAttachment)

		uc.EXPECT().StageAttachment(gomock.Any(), "wf-1", entities.AttachmentKindQRCode, "qr.png", "image/png", []byte("png-bytes")).
			Return(sampleWorkflow(), nil)

		body, contentType := multipartFile(t, "file", "qr.png", "image/png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/attachments/qr_code", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-image rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows/:id/attachments/:kind", h.UploadAttachment)

		uc.EXPECT().StageAttachment(gomock.Any(), "wf-1", entities.AttachmentKindQRCode, "doc.pdf", "application/pdf", gomock.Any()).
			Return(nil, usecase.ErrAttachmentNotImage)

		body, contentType := multipartFile(t, "file", "doc.pdf", "application/pdf", []byte("pdf"))
		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/attachments/qr_code", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_Advance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure renders 422 with field errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows/:id/advance", h.Advance)

		result := validation.Result{Errors: map[string]validation.FieldError{
			"email": {Kind: validation.KindFormat, Message: "Please enter a valid email address"},
		}}
		uc.EXPECT().Advance(gomock.Any(), "wf-1").Return(sampleWorkflow(), result, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code   string `json:"code"`
			Errors map[string]struct {
				Kind    string `json:"kind"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Code != "VALIDATION_FAILED" {
			t.Fatalf("expected VALIDATION_FAILED, got %s", body.Code)
		}
		if body.Errors["email"].Kind != "format" {
			t.Fatalf("expected format kind, got %v", body.Errors)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows/:id/advance", h.Advance)

		wf := sampleWorkflow()
		wf.Step = entities.StepAddresses
		uc.EXPECT().Advance(gomock.Any(), "wf-1").Return(wf, validation.Result{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("payment session failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/workflows/:id/advance", h.Advance)

		uc.EXPECT().Advance(gomock.Any(), "wf-1").Return(nil, validation.Result{}, usecase.ErrPaymentSessionCreation)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/advance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newHandler := func(t *testing.T) (*WorkflowHandler, *mocks.MockISubmissionUseCase) {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		sub := mocks.NewMockISubmissionUseCase(ctrl)
		return NewWorkflowHandler(mocks.NewMockIWorkflowUseCase(ctrl), sub), sub
	}

	t.Run("re-validation failure renders 422", func(t *testing.T) {
		h, sub := newHandler(t)
		r := gin.New()
		r.POST("/v1/workflows/:id/submit", h.Submit)

		invalid := &usecase.DraftInvalidError{Result: validation.Result{Errors: map[string]validation.FieldError{
			"pickup_date": {Kind: validation.KindDate, Message: "Pickup date must be in the future"},
		}}}
		sub.EXPECT().Submit(gomock.Any(), "wf-1").Return(entities.Confirmation{}, invalid)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("capture failure maps to 402", func(t *testing.T) {
		h, sub := newHandler(t)
		r := gin.New()
		r.POST("/v1/workflows/:id/submit", h.Submit)

		sub.EXPECT().Submit(gomock.Any(), "wf-1").Return(entities.Confirmation{}, usecase.ErrPaymentCaptureFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("persist failure after capture maps to 502", func(t *testing.T) {
		h, sub := newHandler(t)
		r := gin.New()
		r.POST("/v1/workflows/:id/submit", h.Submit)

		sub.EXPECT().Submit(gomock.Any(), "wf-1").
			Return(entities.Confirmation{}, errors.Join(usecase.ErrPersistAfterCapture, errors.New("dynamo throttled")))

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "RECORD_CREATE_FAILED_AFTER_CAPTURE" {
			t.Fatalf("expected RECORD_CREATE_FAILED_AFTER_CAPTURE, got %v", body["code"])
		}
		if body["failed_at"] != "persisting" || body["retryable"] != true {
			t.Fatalf("expected retryable persisting failure, got %v", body)
		}
	})

	t.Run("stale session maps to 409", func(t *testing.T) {
		h, sub := newHandler(t)
		r := gin.New()
		r.POST("/v1/workflows/:id/submit", h.Submit)

		sub.EXPECT().Submit(gomock.Any(), "wf-1").Return(entities.Confirmation{}, usecase.ErrPaymentSessionStale)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["retryable"] != false {
			t.Fatalf("expected stale session to be non-retryable, got %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, sub := newHandler(t)
		r := gin.New()
		r.POST("/v1/workflows/:id/submit", h.Submit)

		sub.EXPECT().Submit(gomock.Any(), "wf-1").Return(entities.Confirmation{
			ReturnID:    "ret-1",
			AmountCents: 1100,
			Warnings:    []string{"profile not saved"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["return_id"] != "ret-1" || body["amount_cents"] != float64(1100) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestWorkflowHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkflowUseCase(ctrl)
	h := NewWorkflowHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/workflows/:id/quote", h.Quote)

	uc.EXPECT().Quote(gomock.Any(), "wf-1").Return(int64(800), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/workflows/wf-1/quote", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["amount_cents"] != float64(800) {
		t.Fatalf("expected 800, got %v", body["amount_cents"])
	}
}

func TestWorkflowHandler_Retreat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkflowUseCase(ctrl)
	h := NewWorkflowHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/workflows/:id/retreat", h.Retreat)

	uc.EXPECT().Retreat(gomock.Any(), "wf-1").Return(nil, usecase.ErrAlreadyAtFirstStep)

	req := httptest.NewRequest(http.MethodPost, "/v1/workflows/wf-1/retreat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
