package entities

import "time"

// Profile is the saved contact/address data used to prefill steps 1-2 and
// updated best-effort when a draft carries save flags.

type Profile struct {
	UserID        string    `json:"user_id"`
	FullName      string    `json:"full_name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       *Address  `json:"address,omitempty"`
	ReturnStation *Address  `json:"return_station,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfileUpdate is a partial profile write. Nil fields are left untouched.

type ProfileUpdate struct {
	Phone         *string  `json:"phone,omitempty"`
	Address       *Address `json:"address,omitempty"`
	ReturnStation *Address `json:"return_station,omitempty"`
}

// Empty reports whether the update carries nothing to write.
func (u ProfileUpdate) Empty() bool {
	return u.Phone == nil && u.Address == nil && u.ReturnStation == nil
}
