package model

import "time"

// User mirrors the `users` table. IDs are UUID strings generated by the
// repository at insert time. The password hash is never serialized; handlers
// return users through this struct directly, so the json tags define the
// public shape of an account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
