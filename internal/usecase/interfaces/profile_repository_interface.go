package interfaces

import (
	"context"

	"boomerang/internal/domain/entities"
)

// IProfileRepository abstracts persistence for saved user profiles.
//
// The workflow reads a profile once to prefill steps 1-2. Updates happen
// only as the best-effort batch after a successful submission; their failure
// never fails the submission itself.
type IProfileRepository interface {
	Get(ctx context.Context, userID string) (entities.Profile, error)
	Update(ctx context.Context, userID string, update entities.ProfileUpdate) (entities.Profile, error)
}
