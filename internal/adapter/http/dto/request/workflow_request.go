package request

import (
	"time"

	"boomerang/internal/domain/entities"
)

// StartWorkflowRequest opens a new scheduling session. user_id is optional;
// when present the saved profile prefills the draft.
type StartWorkflowRequest struct {
	UserID string `json:"user_id"`
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

func (r AddressRequest) toEntity() entities.Address {
	return entities.Address{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
	}
}

// DraftPatchRequest mirrors the draft's fields as optional values. Absent
// fields are left untouched, so clients send only what the user edited.
type DraftPatchRequest struct {
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	SavePhone *bool   `json:"save_phone"`

	Pickup            *AddressRequest `json:"pickup"`
	SaveAddress       *bool           `json:"save_address"`
	ReturnStation     *AddressRequest `json:"return_station"`
	SaveReturnStation *bool           `json:"save_return_station"`

	ItemSize        *string `json:"item_size"`
	AdditionalNotes *string `json:"additional_notes"`

	PickupDate    *time.Time `json:"pickup_date"`
	TimeSlot      *string    `json:"time_slot"`
	ExpressPickup *bool      `json:"express_pickup"`
	TermsAccepted *bool      `json:"terms_accepted"`
}

// ToPatch converts the payload into the domain patch. Enum fields are passed
// through as-is; the step validators reject unknown values, so a typo shows
// up as a field error instead of a 400.
func (r DraftPatchRequest) ToPatch() entities.DraftPatch {
	p := entities.DraftPatch{
		FullName:          r.FullName,
		Email:             r.Email,
		Phone:             r.Phone,
		SavePhone:         r.SavePhone,
		SaveAddress:       r.SaveAddress,
		SaveReturnStation: r.SaveReturnStation,
		AdditionalNotes:   r.AdditionalNotes,
		PickupDate:        r.PickupDate,
		ExpressPickup:     r.ExpressPickup,
		TermsAccepted:     r.TermsAccepted,
	}
	if r.Pickup != nil {
		addr := r.Pickup.toEntity()
		p.Pickup = &addr
	}
	if r.ReturnStation != nil {
		station := r.ReturnStation.toEntity()
		p.ReturnStation = &station
	}
	if r.ItemSize != nil {
		size := entities.ItemSize(*r.ItemSize)
		p.ItemSize = &size
	}
	if r.TimeSlot != nil {
		slot := entities.TimeSlot(*r.TimeSlot)
		p.TimeSlot = &slot
	}
	return p
}
