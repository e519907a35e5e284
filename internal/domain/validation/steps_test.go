package validation

import (
	"strings"
	"testing"
	"time"

	"boomerang/internal/domain/entities"
)

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func validDraft() entities.ReturnDraft {
	addr := entities.Address{Street: "123 Main St", City: "Oakland", State: "CA", ZipCode: "94607"}
	station := entities.Address{Street: "500 Shattuck Ave", City: "Berkeley", State: "CA", ZipCode: "94704"}
	return entities.ReturnDraft{
		FullName:      "Dana Smith",
		Email:         "dana@example.com",
		Phone:         "5105551234",
		Pickup:        addr,
		ReturnStation: station,
		ItemSize:      entities.ItemSizeMedium,
		QRCode:        entities.NewPendingAttachment("qr.png", "image/png", []byte("png")),
		ItemPhoto:     entities.NewPendingAttachment("box.jpg", "image/jpeg", []byte("jpg")),
		PickupDate:    testNow.Add(48 * time.Hour),
		TimeSlot:      entities.TimeSlotMorning,
		TermsAccepted: true,
	}
}

func TestValidateContact(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if r := ValidateContact(validDraft(), testNow); !r.Valid() {
			t.Fatalf("expected valid, got %v", r.Errors)
		}
	})

	t.Run("missing required fields keyed exactly", func(t *testing.T) {
		r := ValidateContact(entities.ReturnDraft{}, testNow)
		if r.Valid() {
			t.Fatal("expected invalid")
		}
		for _, field := range []string{"full_name", "email"} {
			fe, ok := r.Errors[field]
			if !ok {
				t.Fatalf("expected error for %s, got %v", field, r.Errors)
			}
			if fe.Kind != KindRequired {
				t.Fatalf("expected required kind for %s, got %s", field, fe.Kind)
			}
		}
		if _, ok := r.Errors["phone"]; ok {
			t.Fatal("phone is optional when empty and save-phone is unchecked")
		}
	})

	t.Run("name too long", func(t *testing.T) {
		d := validDraft()
		d.FullName = strings.Repeat("a", 51)
		r := ValidateContact(d, testNow)
		if r.Errors["full_name"].Kind != KindLength {
			t.Fatalf("expected length error, got %v", r.Errors)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		d := validDraft()
		d.Email = "not-an-email"
		r := ValidateContact(d, testNow)
		if r.Errors["email"].Kind != KindFormat {
			t.Fatalf("expected format error, got %v", r.Errors)
		}
	})

	t.Run("save phone makes phone required", func(t *testing.T) {
		d := validDraft()
		d.Phone = ""
		d.SavePhone = true
		r := ValidateContact(d, testNow)
		if r.Errors["phone"].Kind != KindRequired {
			t.Fatalf("expected required phone, got %v", r.Errors)
		}
	})

	t.Run("provided phone must be 10 digits", func(t *testing.T) {
		d := validDraft()
		d.Phone = "(510) 555-1234"
		r := ValidateContact(d, testNow)
		if r.Errors["phone"].Kind != KindFormat {
			t.Fatalf("expected format error, got %v", r.Errors)
		}
	})
}

func TestValidateAddresses(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if r := ValidateAddresses(validDraft(), testNow); !r.Valid() {
			t.Fatalf("expected valid, got %v", r.Errors)
		}
	})

	t.Run("both blocks validated independently", func(t *testing.T) {
		d := validDraft()
		d.ReturnStation = entities.Address{}
		r := ValidateAddresses(d, testNow)
		if r.Valid() {
			t.Fatal("expected invalid")
		}
		for _, field := range []string{"return_station.street", "return_station.city", "return_station.state", "return_station.zip_code"} {
			if _, ok := r.Errors[field]; !ok {
				t.Fatalf("expected error for %s, got %v", field, r.Errors)
			}
		}
		if _, ok := r.Errors["pickup.street"]; ok {
			t.Fatal("pickup block should still be valid")
		}
	})

	t.Run("malformed zip is a format error", func(t *testing.T) {
		d := validDraft()
		d.Pickup.ZipCode = "9460"
		r := ValidateAddresses(d, testNow)
		if fe := r.Errors["pickup.zip_code"]; fe.Kind != KindFormat {
			t.Fatalf("expected format kind, got %v", fe)
		}
	})

	t.Run("well-formed unsupported zip is a service-area error listing cities", func(t *testing.T) {
		d := validDraft()
		d.Pickup.ZipCode = "99999"
		r := ValidateAddresses(d, testNow)
		fe := r.Errors["pickup.zip_code"]
		if fe.Kind != KindServiceArea {
			t.Fatalf("expected service_area kind, got %v", fe)
		}
		for _, city := range []string{"Oakland", "Fremont", "Berkeley"} {
			if !strings.Contains(fe.Message, city) {
				t.Fatalf("service-area message should list %s: %s", city, fe.Message)
			}
		}
	})
}

func TestValidateItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if r := ValidateItem(validDraft(), testNow); !r.Valid() {
			t.Fatalf("expected valid, got %v", r.Errors)
		}
	})

	t.Run("missing size and attachments", func(t *testing.T) {
		r := ValidateItem(entities.ReturnDraft{}, testNow)
		for _, field := range []string{"item_size", "qr_code", "item_photo"} {
			if fe := r.Errors[field]; fe.Kind != KindRequired {
				t.Fatalf("expected required error for %s, got %v", field, r.Errors)
			}
		}
	})

	t.Run("non-image attachment", func(t *testing.T) {
		d := validDraft()
		d.QRCode = entities.NewPendingAttachment("qr.pdf", "application/pdf", []byte("pdf"))
		r := ValidateItem(d, testNow)
		if fe := r.Errors["qr_code"]; fe.Kind != KindFileType {
			t.Fatalf("expected file_type error, got %v", fe)
		}
	})

	t.Run("oversized attachment has a size-specific message", func(t *testing.T) {
		d := validDraft()
		d.ItemPhoto = &entities.Attachment{
			State:       entities.AttachmentStatePending,
			FileName:    "big.png",
			ContentType: "image/png",
			Size:        entities.MaxAttachmentBytes + 1,
		}
		r := ValidateItem(d, testNow)
		fe := r.Errors["item_photo"]
		if fe.Kind != KindFileSize {
			t.Fatalf("expected file_size error, got %v", fe)
		}
		if !strings.Contains(fe.Message, "5MB") {
			t.Fatalf("expected explicit size message, got %q", fe.Message)
		}
	})

	t.Run("notes over 500 chars", func(t *testing.T) {
		d := validDraft()
		d.AdditionalNotes = strings.Repeat("x", 501)
		r := ValidateItem(d, testNow)
		if fe := r.Errors["additional_notes"]; fe.Kind != KindLength {
			t.Fatalf("expected length error, got %v", fe)
		}
	})
}

func TestValidateSchedule(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if r := ValidateSchedule(validDraft(), testNow); !r.Valid() {
			t.Fatalf("expected valid, got %v", r.Errors)
		}
	})

	t.Run("date in the past at validation time", func(t *testing.T) {
		d := validDraft()
		// Chosen days earlier, stale by the time it is re-checked.
		r := ValidateSchedule(d, testNow.Add(72*time.Hour))
		if fe := r.Errors["pickup_date"]; fe.Kind != KindDate {
			t.Fatalf("expected date error, got %v", r.Errors)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		d := validDraft()
		d.PickupDate = time.Time{}
		r := ValidateSchedule(d, testNow)
		if fe := r.Errors["pickup_date"]; fe.Kind != KindRequired {
			t.Fatalf("expected required error, got %v", r.Errors)
		}
	})

	t.Run("bad time slot", func(t *testing.T) {
		d := validDraft()
		d.TimeSlot = entities.TimeSlot("midnight")
		r := ValidateSchedule(d, testNow)
		if fe := r.Errors["time_slot"]; fe.Kind != KindInvalidChoice {
			t.Fatalf("expected invalid_choice error, got %v", r.Errors)
		}
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		d := validDraft()
		d.TermsAccepted = false
		r := ValidateSchedule(d, testNow)
		if fe := r.Errors["terms_accepted"]; fe.Kind != KindTerms {
			t.Fatalf("expected terms error, got %v", r.Errors)
		}
	})

	t.Run("express pickup never fails validation", func(t *testing.T) {
		d := validDraft()
		d.ExpressPickup = true
		if r := ValidateSchedule(d, testNow); !r.Valid() {
			t.Fatalf("expected valid, got %v", r.Errors)
		}
	})
}

func TestForStep_Dispatch(t *testing.T) {
	d := entities.ReturnDraft{}
	if r := ForStep(entities.StepContact)(d, testNow); r.Errors["full_name"].Kind != KindRequired {
		t.Fatal("step 1 should run the contact ruleset")
	}
	if r := ForStep(entities.StepAddresses)(d, testNow); r.Errors["pickup.street"].Kind != KindRequired {
		t.Fatal("step 2 should run the address ruleset")
	}
	if r := ForStep(entities.StepItem)(d, testNow); r.Errors["item_size"].Kind != KindRequired {
		t.Fatal("step 3 should run the item ruleset")
	}
	if r := ForStep(entities.StepSchedule)(d, testNow); r.Errors["terms_accepted"].Kind != KindTerms {
		t.Fatal("step 4 should run the schedule ruleset")
	}
}

func TestValidate_IdempotentWithoutMutation(t *testing.T) {
	d := validDraft()
	d.Pickup.ZipCode = "99999"
	first := ValidateAddresses(d, testNow)
	second := ValidateAddresses(d, testNow)
	if len(first.Errors) != len(second.Errors) {
		t.Fatalf("validation not idempotent: %v vs %v", first.Errors, second.Errors)
	}
	for field, fe := range first.Errors {
		if second.Errors[field] != fe {
			t.Fatalf("validation not idempotent for %s", field)
		}
	}
}
