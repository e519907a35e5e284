package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"boomerang/internal/domain/entities"
	"boomerang/internal/usecase/interfaces"
)

var (
	ErrReturnNotFound          = errors.New("return not found")
	ErrInvalidReturnID         = errors.New("invalid return id")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrInvalidReturnStatus     = errors.New("invalid return status")
	ErrStatusTransitionBlocked = errors.New("status transition not allowed")
)

// IReturnUseCase exposes persisted-return reads and the operator-driven
// status lifecycle.

type IReturnUseCase interface {
	GetByID(ctx context.Context, id string) (entities.ReturnRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ReturnRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.ReturnStatus, note string) (entities.ReturnRecord, error)
}

type ReturnUseCase struct {
	repo interfaces.IReturnRepository
}

var _ IReturnUseCase = (*ReturnUseCase)(nil)

func NewReturnUseCase(repo interfaces.IReturnRepository) *ReturnUseCase {
	return &ReturnUseCase{repo: repo}
}

func (u *ReturnUseCase) GetByID(ctx context.Context, id string) (entities.ReturnRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ReturnRecord{}, ErrInvalidReturnID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ReturnRecord{}, err
	}
	if rec.ID == "" {
		return entities.ReturnRecord{}, ErrReturnNotFound
	}
	return rec, nil
}

func (u *ReturnUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.ReturnRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

// UpdateStatus moves a return along the operator lifecycle. The transition
// table on ReturnStatus is enforced here, before any write, so an illegal
// jump (e.g. completed -> scheduled) never reaches the repository.
func (u *ReturnUseCase) UpdateStatus(ctx context.Context, id string, status entities.ReturnStatus, note string) (entities.ReturnRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ReturnRecord{}, ErrInvalidReturnID
	}
	if !status.Valid() {
		return entities.ReturnRecord{}, ErrInvalidReturnStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ReturnRecord{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		log.Printf("[return][usecase] transition blocked return_id=%s from=%s to=%s", id, current.Status, status)
		return entities.ReturnRecord{}, ErrStatusTransitionBlocked
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, note)
	if err != nil {
		return entities.ReturnRecord{}, err
	}
	if updated.ID == "" {
		return entities.ReturnRecord{}, ErrReturnNotFound
	}
	log.Printf("[return][usecase] status updated return_id=%s from=%s to=%s", id, current.Status, status)
	return updated, nil
}
