package interfaces

import (
	"context"

	"boomerang/internal/domain/entities"
)

// IWorkflowStore holds in-progress workflow instances for the lifetime of a
// browser session. No durable state lives here; the only persisted output of
// a workflow is the return record written at submission.
//
// Mutate runs fn while holding the instance's lock, so every field write and
// step transition for one workflow is serialized even if the client fires
// overlapping requests.
type IWorkflowStore interface {
	Put(ctx context.Context, wf *entities.Workflow) error
	Get(ctx context.Context, id string) (*entities.Workflow, error)
	Mutate(ctx context.Context, id string, fn func(wf *entities.Workflow) error) (*entities.Workflow, error)
	Delete(ctx context.Context, id string) error
}
