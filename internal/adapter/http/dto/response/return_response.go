package response

import (
	"time"

	"boomerang/internal/domain/entities"
)

type StatusChangeResponse struct {
	Status string    `json:"status"`
	Note   string    `json:"note,omitempty"`
	At     time.Time `json:"at"`
}

type ReturnResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id,omitempty"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`

	Pickup        AddressResponse `json:"pickup"`
	ReturnStation AddressResponse `json:"return_station"`

	ItemSize        string `json:"item_size"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
	QRCodeURL       string `json:"qr_code_url"`
	ItemPhotoURL    string `json:"item_photo_url"`

	PickupDate    time.Time `json:"pickup_date"`
	TimeSlot      string    `json:"time_slot"`
	ExpressPickup bool      `json:"express_pickup"`

	AmountCents      int64  `json:"amount_cents"`
	PaymentReference string `json:"payment_reference"`

	Status  string                 `json:"status"`
	History []StatusChangeResponse `json:"history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromReturnRecord(rec entities.ReturnRecord) ReturnResponse {
	history := make([]StatusChangeResponse, 0, len(rec.History))
	for _, ch := range rec.History {
		history = append(history, StatusChangeResponse{
			Status: string(ch.Status),
			Note:   ch.Note,
			At:     ch.At,
		})
	}
	return ReturnResponse{
		ID:     rec.ID,
		UserID: rec.UserID,

		FullName: rec.FullName,
		Email:    rec.Email,
		Phone:    rec.Phone,

		Pickup:        fromAddress(rec.Pickup),
		ReturnStation: fromAddress(rec.ReturnStation),

		ItemSize:        string(rec.ItemSize),
		AdditionalNotes: rec.AdditionalNotes,
		QRCodeURL:       rec.QRCodeURL,
		ItemPhotoURL:    rec.ItemPhotoURL,

		PickupDate:    rec.PickupDate,
		TimeSlot:      string(rec.TimeSlot),
		ExpressPickup: rec.ExpressPickup,

		AmountCents:      rec.AmountCents,
		PaymentReference: rec.PaymentReference,

		Status:  string(rec.Status),
		History: history,

		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func FromReturnRecords(recs []entities.ReturnRecord) []ReturnResponse {
	out := make([]ReturnResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromReturnRecord(rec))
	}
	return out
}
