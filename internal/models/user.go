// Package models defines the persisted value types of the health tracker.
package models

// User is an account row from the users table.
//
// PasswordHash is the lowercase hex sha256 digest of the plaintext password.
// The plaintext itself is never stored.
type User struct {
	// ID is assigned by the store on insert.
	ID int64

	// Username is unique case-insensitively.
	Username string

	// PasswordHash is the stored credential digest.
	PasswordHash string
}
