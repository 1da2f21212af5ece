// internal/domain/user.go
package domain

import "time"

// User is the minimal account record the settlement core needs; the
// authentication flow itself lives outside this service.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"` // Unique
	Username  string    `db:"username" json:"username"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser creates a new User instance.
func NewUser(email, username string) *User {
	now := time.Now().UTC()
	return &User{
		Email:     email,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
