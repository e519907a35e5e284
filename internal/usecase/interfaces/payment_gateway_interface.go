package interfaces

import (
	"context"

	"boomerang/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado
// Pago).
//
// CreateSession opens an authorization sized to the computed total; no money
// moves until Capture. Capture finalizes the authorization and returns the
// provider reference persisted on the return record. The orchestrator calls
// Capture at most once per submission.
type IPaymentGateway interface {
	CreateSession(ctx context.Context, amountCents int64, description string) (entities.PaymentSession, error)
	Capture(ctx context.Context, sessionID string) (reference string, err error)
}
