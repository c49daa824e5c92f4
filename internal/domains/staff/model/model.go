package model

import (
	"luxeroom/shared/pin"
)

// Staff is one entry of the fixed authentication table. PINs are stored as
// bcrypt hashes; the plaintext lives only on the staff member's keypad.
type Staff struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	PinHash string `json:"-"`
}

// Directory returns the static staff roster. It is never persisted or
// mutated at runtime; rotating a PIN means shipping a new hash here.
func Directory() []Staff {
	return []Staff{
		{ID: "s1", Name: "Bestey", PinHash: "$2b$10$4bT0xuWzOkqQUASMtiQquet0ZYPneWf/j6x5edhcBUoGvvr9sXDwy"},
		{ID: "s2", Name: "Faari", PinHash: "$2b$10$.KkkIxwMeuNiJIoq2ch4.egee416lTjV4R.l6ia6v0nsbAbPBIWr2"},
		{ID: "s3", Name: "Fazaal", PinHash: "$2b$10$AjMLtLPKVH7gx65sxylgHODZOlefYHMCY29C28Rp/mEq3/hRU.eMi"},
		{ID: "s4", Name: "Sliver", PinHash: "$2b$10$XMTg7PK5iLNptKKzI8jUq.hzYIr5fwDxOsw0kPRtceIQBm4ZoktVu"},
		{ID: "s5", Name: "Aisha", PinHash: "$2b$10$dBqPuJtM2FCx/Bp90.BpaegBMp7UAY8N.FZ3O690VF60LSxckVu/O"},
		{ID: "s6", Name: "Fathu", PinHash: "$2b$10$LBWy3OTfWKcPfAU88mtsqO61Oo2Tlspb.KCl9Prl1i5c24av/64wy"},
		{ID: "s7", Name: "Bulky", PinHash: "$2b$10$G14s5X9374V0FOejcp5CwOBn88iRBKI/GHW82xB5Fx4AezrLawrAi"},
		{ID: "s8", Name: "Zayan", PinHash: "$2b$10$YXlNK6fRIqslolsBDjG77e.qfy68nfgGxiXNqHKUq5RBImYerkklm"},
		{ID: "s9", Name: "Mari", PinHash: "$2b$10$AJcjuZhwecC6YLMfNclUhedDOgOU9pwZ6RSVAKrZtcWikx1eRFjPm"},
		{ID: "s10", Name: "Ibbe", PinHash: "$2b$10$FgM6oP8kSkL1DYczQlGXxObP1aypxWVe4ig5r3NiCwrpQrsFKZJQK"},
	}
}

// FindByPin returns the staff member whose PIN matches. Every candidate is
// checked with a constant-time bcrypt compare; a miss means re-prompting,
// never an account lockout.
func FindByPin(directory []Staff, rawPin string) (Staff, bool) {
	for _, staff := range directory {
		if pin.Verify(rawPin, staff.PinHash) == nil {
			return staff, true
		}
	}

	return Staff{}, false
}

// FindByID returns the staff member with the given id; used to rehydrate a
// session from a stored staff reference.
func FindByID(directory []Staff, id string) (Staff, bool) {
	for _, staff := range directory {
		if staff.ID == id {
			return staff, true
		}
	}

	return Staff{}, false
}
