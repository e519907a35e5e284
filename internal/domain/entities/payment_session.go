package entities

import "time"

// PaymentSession is the provider-issued authorization handle bound to a
// specific computed total.
//
// Invariants:
//   - A session is only usable for the amount it was created with. Changing
//     item size or express pickup after creation marks it stale; a stale
//     session must be replaced before capture.
//   - Captured is flipped exactly once. After a post-capture failure the
//     reference is reused; capturing twice would double-charge.

type PaymentSession struct {
	ID          string    `json:"id"`
	AmountCents int64     `json:"amount_cents"`
	Stale       bool      `json:"stale"`
	Captured    bool      `json:"captured"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UsableFor reports whether the session can still back a capture for the
// given total.
func (s *PaymentSession) UsableFor(amountCents int64) bool {
	return s != nil && !s.Stale && s.AmountCents == amountCents
}
