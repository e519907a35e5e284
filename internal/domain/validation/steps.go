package validation

import (
	"regexp"
	"strings"
	"time"

	"boomerang/internal/domain/entities"
	"boomerang/internal/domain/serviceability"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}$`)
)

const (
	maxFullNameLen = 50
	maxNotesLen    = 500
)

// ForStep returns the validator registered for the step, defaulting to the
// schedule ruleset for the review step (it has no rules of its own beyond
// what step 4 already guarantees).
func ForStep(step entities.Step) func(entities.ReturnDraft, time.Time) Result {
	switch step {
	case entities.StepContact:
		return ValidateContact
	case entities.StepAddresses:
		return ValidateAddresses
	case entities.StepItem:
		return ValidateItem
	default:
		return ValidateSchedule
	}
}

// ValidateContact checks the step-1 subset. Phone is optional unless a value
// was entered or save-phone is checked; once either holds it must be a bare
// 10-digit number.
func ValidateContact(d entities.ReturnDraft, _ time.Time) Result {
	r := newResult()

	name := strings.TrimSpace(d.FullName)
	switch {
	case name == "":
		r.add("full_name", KindRequired, "Full name is required")
	case len(name) > maxFullNameLen:
		r.add("full_name", KindLength, "Full name must be less than 50 characters")
	}

	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		r.add("email", KindRequired, "Email is required")
	case !emailPattern.MatchString(email):
		r.add("email", KindFormat, "Please enter a valid email address")
	}

	phone := strings.TrimSpace(d.Phone)
	switch {
	case phone == "" && d.SavePhone:
		r.add("phone", KindRequired, "Phone number is required")
	case phone != "" && !phonePattern.MatchString(phone):
		r.add("phone", KindFormat, "Phone number must be 10 digits")
	}

	return r
}

// ValidateAddresses checks the step-2 subset: the pickup block and the
// return-station block independently, each against the same required/format
// rules and the same serviceability table.
func ValidateAddresses(d entities.ReturnDraft, _ time.Time) Result {
	r := newResult()
	validateAddressBlock(&r, d.Pickup, "pickup", "Zip code")
	validateAddressBlock(&r, d.ReturnStation, "return_station", "Return station zip code")
	return r
}

func validateAddressBlock(r *Result, a entities.Address, prefix, zipLabel string) {
	if strings.TrimSpace(a.Street) == "" {
		r.add(prefix+".street", KindRequired, "Street address is required")
	}
	if strings.TrimSpace(a.City) == "" {
		r.add(prefix+".city", KindRequired, "City is required")
	}
	if strings.TrimSpace(a.State) == "" {
		r.add(prefix+".state", KindRequired, "State is required")
	}

	zip := strings.TrimSpace(a.ZipCode)
	switch {
	case zip == "":
		r.add(prefix+".zip_code", KindRequired, zipLabel+" is required")
	case !zipPattern.MatchString(zip):
		r.add(prefix+".zip_code", KindFormat, zipLabel+" must be 5 digits")
	case !serviceability.IsZipSupported(zip):
		r.add(prefix+".zip_code", KindServiceArea, serviceability.ServiceAreaMessage())
	}
}

// ValidateItem checks the step-3 subset: the size choice and both required
// image attachments.
func ValidateItem(d entities.ReturnDraft, _ time.Time) Result {
	r := newResult()

	if d.ItemSize == "" {
		r.add("item_size", KindRequired, "Please select an item size")
	} else if !d.ItemSize.Valid() {
		r.add("item_size", KindInvalidChoice, "Please select an item size")
	}

	if len(d.AdditionalNotes) > maxNotesLen {
		r.add("additional_notes", KindLength, "Notes must be less than 500 characters")
	}

	validateAttachment(&r, d.QRCode, "qr_code", "QR code is required")
	validateAttachment(&r, d.ItemPhoto, "item_photo", "Item image is required")
	return r
}

func validateAttachment(r *Result, a *entities.Attachment, field, requiredMsg string) {
	if a == nil {
		r.add(field, KindRequired, requiredMsg)
		return
	}
	if !strings.HasPrefix(a.ContentType, "image/") {
		r.add(field, KindFileType, "Please upload an image file")
		return
	}
	if a.Size > entities.MaxAttachmentBytes {
		r.add(field, KindFileSize, "File size should be less than 5MB")
	}
}

// ValidateSchedule checks the step-4 subset. The pickup date must be
// strictly in the future at the moment of validation, so a date chosen days
// earlier is re-checked here on every pass, including the defensive re-run
// at submission time.
func ValidateSchedule(d entities.ReturnDraft, now time.Time) Result {
	r := newResult()

	switch {
	case d.PickupDate.IsZero():
		r.add("pickup_date", KindRequired, "Please select a pickup date")
	case !d.PickupDate.After(now):
		r.add("pickup_date", KindDate, "Pickup date must be in the future")
	}

	if d.TimeSlot == "" {
		r.add("time_slot", KindRequired, "Please select a time slot")
	} else if !d.TimeSlot.Valid() {
		r.add("time_slot", KindInvalidChoice, "Please select a valid time slot")
	}

	if !d.TermsAccepted {
		r.add("terms_accepted", KindTerms, "You must accept the terms and conditions")
	}

	// Express pickup needs no rule: any boolean is valid, default false.
	return r
}
