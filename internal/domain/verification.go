package domain

import "time"

// VerificationEntry is a pending one-time code keyed by phone number.
// At most one live entry exists per number; a new issuance overwrites any
// prior entry. Entries are owned exclusively by the code store.
type VerificationEntry struct {
	PhoneNumber string
	Code        string
	ExpiresAt   time.Time
}

// Expired reports whether the entry's window has passed at the given instant.
func (v VerificationEntry) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
