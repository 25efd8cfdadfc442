package entity

import "time"

// OneTimeCode is an ephemeral credential proof bound to an email address.
// At most one live code exists per email; issuing a new one overwrites the
// previous record. The same store serves email verification and password
// reset, so a code issued for one flow invalidates the other's.
type OneTimeCode struct {
	ID        int64
	Email     string    // Unique; the upsert key.
	Code      int       // Numeric code, e.g. 6 digits in [100000, 999999].
	CreatedAt time.Time // Basis for the optional staleness cutoff.
}
