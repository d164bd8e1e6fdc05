package domain

// User is the stored credential record. There is exactly one per registered
// email; the email doubles as the primary key in the store.
type User struct {
	// Email is the normalized (lowercased, trimmed) address the user
	// registered with. Changing it moves the record to a new key.
	Email string `json:"email"`

	// PasswordHash is the Argon2id PHC string for the user's password.
	// The plaintext is never persisted anywhere.
	PasswordHash string `json:"password"`

	// ID is a random UUID assigned at signup. It survives credential
	// resets, so callers can track identity across email changes.
	ID string `json:"id"`
}
