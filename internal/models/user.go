package models

// User is the owner account allowed to sign in.
//
// jobledger has a single editor; the owner is configured from the environment
// rather than stored, so there is no registration flow.
type User struct {
	// ID identifies the owner in session tokens.
	ID string

	// Name is the login name.
	Name string

	// PasswordHash is the bcrypt hash of the owner's password.
	PasswordHash string
}
