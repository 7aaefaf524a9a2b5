package entity

import "time"

// User is the aggregate root for the account domain.
// PasswordHash holds the bcrypt output; plaintext never reaches an entity.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
