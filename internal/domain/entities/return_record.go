package entities

import "time"

// ReturnStatus represents the operational lifecycle of a persisted return.
//
// Transitions are driven by operators from the admin surface:
//
//	scheduled -> pickup_ready | cancelled | rejected
//	pickup_ready -> processing | cancelled
//	processing -> completed | rejected
//
// completed, cancelled and rejected are terminal.

type ReturnStatus string

const (
	ReturnStatusScheduled   ReturnStatus = "scheduled"
	ReturnStatusPickupReady ReturnStatus = "pickup_ready"
	ReturnStatusProcessing  ReturnStatus = "processing"
	ReturnStatusCompleted   ReturnStatus = "completed"
	ReturnStatusCancelled   ReturnStatus = "cancelled"
	ReturnStatusRejected    ReturnStatus = "rejected"
)

func (s ReturnStatus) Valid() bool {
	switch s {
	case ReturnStatusScheduled, ReturnStatusPickupReady, ReturnStatusProcessing,
		ReturnStatusCompleted, ReturnStatusCancelled, ReturnStatusRejected:
		return true
	}
	return false
}

var allowedStatusTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnStatusScheduled:   {ReturnStatusPickupReady, ReturnStatusCancelled, ReturnStatusRejected},
	ReturnStatusPickupReady: {ReturnStatusProcessing, ReturnStatusCancelled},
	ReturnStatusProcessing:  {ReturnStatusCompleted, ReturnStatusRejected},
}

// CanTransitionTo reports whether an operator may move a return from its
// current status to next.
func (s ReturnStatus) CanTransitionTo(next ReturnStatus) bool {
	for _, allowed := range allowedStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusChange is one entry in a return's status history.

type StatusChange struct {
	Status ReturnStatus `json:"status"`
	Note   string       `json:"note,omitempty"`
	At     time.Time    `json:"at"`
}

// ReturnRecord is the persisted outcome of a successful submission.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type ReturnRecord struct {
	ID     string `json:"id"`
	UserID string `json:"user_id,omitempty"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`

	Pickup        Address `json:"pickup"`
	ReturnStation Address `json:"return_station"`

	ItemSize        ItemSize `json:"item_size"`
	AdditionalNotes string   `json:"additional_notes,omitempty"`
	QRCodeURL       string   `json:"qr_code_url"`
	ItemPhotoURL    string   `json:"item_photo_url"`

	PickupDate    time.Time `json:"pickup_date"`
	TimeSlot      TimeSlot  `json:"time_slot"`
	ExpressPickup bool      `json:"express_pickup"`

	AmountCents      int64  `json:"amount_cents"`
	PaymentReference string `json:"payment_reference"`

	Status  ReturnStatus   `json:"status"`
	History []StatusChange `json:"history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
