package handlers

import (
	"errors"
	"log"
	"net/http"

	"boomerang/internal/adapter/http/dto/request"
	response "boomerang/internal/adapter/http/dto/response"
	"boomerang/internal/domain/entities"
	"boomerang/internal/usecase"
	"boomerang/pkg"

	"github.com/gin-gonic/gin"
)

// ReturnHandler handles HTTP requests for persisted returns.

type ReturnHandler struct {
	usecase usecase.IReturnUseCase
}

func NewReturnHandler(uc usecase.IReturnUseCase) *ReturnHandler {
	return &ReturnHandler{usecase: uc}
}

// GetReturn returns one scheduled return by id.
func (h *ReturnHandler) GetReturn(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[return][handler] get failed return_id=%s err=%v", id, err)
		appErr := mapReturnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReturnRecord(rec))
}

// ListReturns returns every scheduled return for a user.
func (h *ReturnHandler) ListReturns(c *gin.Context) {
	userID := c.Query("user_id")

	recs, err := h.usecase.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[return][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapReturnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReturnRecords(recs))
}

// UpdateStatus moves a return along the operator lifecycle.
func (h *ReturnHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req request.UpdateReturnStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[return][handler] status invalid payload return_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rec, err := h.usecase.UpdateStatus(c.Request.Context(), id, entities.ReturnStatus(req.Status), req.Note)
	if err != nil {
		log.Printf("[return][handler] status update failed return_id=%s status=%s err=%v", id, req.Status, err)
		appErr := mapReturnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[return][handler] status update success return_id=%s status=%s", id, rec.Status)

	c.JSON(http.StatusOK, response.FromReturnRecord(rec))
}

func mapReturnError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReturnID), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidReturnStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReturnNotFound):
		return pkg.NewDomainErrorSimple("RETURN_NOT_FOUND", "Return not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusTransitionBlocked):
		return pkg.NewDomainErrorSimple("STATUS_TRANSITION_BLOCKED", "That status change is not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
