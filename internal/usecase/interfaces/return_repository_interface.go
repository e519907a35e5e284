package interfaces

import (
	"context"

	"boomerang/internal/domain/entities"
)

// IReturnRepository abstracts DynamoDB persistence for ReturnRecord.
//
// Create is the final stage of the submission pipeline and only runs after
// payment capture succeeded. UpdateStatus serves the admin lifecycle
// (approve pickup, process, complete, cancel, reject) and appends to the
// record's status history.
type IReturnRepository interface {
	Create(ctx context.Context, rec entities.ReturnRecord) (entities.ReturnRecord, error)
	GetByID(ctx context.Context, id string) (entities.ReturnRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ReturnRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.ReturnStatus, note string) (entities.ReturnRecord, error)
}
