package entities

import "time"

// ItemSize is the declared package size, which drives the base price.

type ItemSize string

const (
	ItemSizeSmall  ItemSize = "small"
	ItemSizeMedium ItemSize = "medium"
	ItemSizeLarge  ItemSize = "large"
)

func (s ItemSize) Valid() bool {
	switch s {
	case ItemSizeSmall, ItemSizeMedium, ItemSizeLarge:
		return true
	}
	return false
}

// TimeSlot is the pickup window chosen in step 4.

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
)

func (t TimeSlot) Valid() bool {
	switch t {
	case TimeSlotMorning, TimeSlotAfternoon, TimeSlotEvening:
		return true
	}
	return false
}

// Address is one of the two address blocks collected in step 2
// (pickup and return station share the shape and the rules).

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

func (a Address) Empty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.ZipCode == ""
}

// ReturnDraft is the accumulating record for one in-progress scheduling
// session. Fields are grouped by the step that populates them; the draft is
// shared across steps and consumed exactly once by submission.
//
// Save flags do not fire side effects on toggle. They are collected here and
// executed as a best-effort profile-update batch after the return record is
// persisted.

type ReturnDraft struct {
	// Step 1: contact
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SavePhone bool   `json:"save_phone"`

	// Step 2: addresses
	Pickup            Address `json:"pickup"`
	SaveAddress       bool    `json:"save_address"`
	ReturnStation     Address `json:"return_station"`
	SaveReturnStation bool    `json:"save_return_station"`

	// Step 3: item details
	ItemSize        ItemSize    `json:"item_size"`
	AdditionalNotes string      `json:"additional_notes"`
	QRCode          *Attachment `json:"qr_code,omitempty"`
	ItemPhoto       *Attachment `json:"item_photo,omitempty"`

	// Step 4: schedule & terms
	PickupDate    time.Time `json:"pickup_date"`
	TimeSlot      TimeSlot  `json:"time_slot"`
	ExpressPickup bool      `json:"express_pickup"`
	TermsAccepted bool      `json:"terms_accepted"`
}

// DraftPatch is a partial field update merged into the draft. Nil pointers
// leave the current value untouched, so the client can send only the fields
// the user edited.

type DraftPatch struct {
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	SavePhone *bool   `json:"save_phone"`

	Pickup            *Address `json:"pickup"`
	SaveAddress       *bool    `json:"save_address"`
	ReturnStation     *Address `json:"return_station"`
	SaveReturnStation *bool    `json:"save_return_station"`

	ItemSize        *ItemSize `json:"item_size"`
	AdditionalNotes *string   `json:"additional_notes"`

	PickupDate    *time.Time `json:"pickup_date"`
	TimeSlot      *TimeSlot  `json:"time_slot"`
	ExpressPickup *bool      `json:"express_pickup"`
	TermsAccepted *bool      `json:"terms_accepted"`
}

// Apply merges the patch into the draft and reports whether a price-affecting
// field (item size or express pickup) changed. The caller uses that signal to
// invalidate an existing payment session.
func (p DraftPatch) Apply(d *ReturnDraft) (priceChanged bool) {
	if p.FullName != nil {
		d.FullName = *p.FullName
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.SavePhone != nil {
		d.SavePhone = *p.SavePhone
	}
	if p.Pickup != nil {
		d.Pickup = *p.Pickup
	}
	if p.SaveAddress != nil {
		d.SaveAddress = *p.SaveAddress
	}
	if p.ReturnStation != nil {
		d.ReturnStation = *p.ReturnStation
	}
	if p.SaveReturnStation != nil {
		d.SaveReturnStation = *p.SaveReturnStation
	}
	if p.ItemSize != nil && *p.ItemSize != d.ItemSize {
		d.ItemSize = *p.ItemSize
		priceChanged = true
	}
	if p.AdditionalNotes != nil {
		d.AdditionalNotes = *p.AdditionalNotes
	}
	if p.PickupDate != nil {
		d.PickupDate = *p.PickupDate
	}
	if p.TimeSlot != nil {
		d.TimeSlot = *p.TimeSlot
	}
	if p.ExpressPickup != nil && *p.ExpressPickup != d.ExpressPickup {
		d.ExpressPickup = *p.ExpressPickup
		priceChanged = true
	}
	if p.TermsAccepted != nil {
		d.TermsAccepted = *p.TermsAccepted
	}
	return priceChanged
}
