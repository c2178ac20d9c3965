package model

import "time"

// Admin is an administrator account able to browse players and manage
// categories. The password hash is bcrypt.
type Admin struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
