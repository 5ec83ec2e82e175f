package models

import "time"

// User represents a registered customer account.
//
// PasswordHash holds the bcrypt digest of the user's password. Bcrypt output
// is always 60 bytes, which is also the column width in the database. The
// raw password is never stored, logged, or echoed back to the client.
type User struct {
	// UserID is the server-assigned identifier of the account.
	UserID int64 `json:"id"`

	// Email uniquely identifies the account. Trimmed, 3–100 characters.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the password.
	// Excluded from JSON serialization; it must never leave the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation timestamp assigned by the store.
	CreatedAt time.Time `json:"created_at"`
}
