package models

import "time"

// User is an account in the identity store. PasswordHash and Salt hold the
// argon2id digest and its random salt; the plaintext never leaves the
// register/login handlers.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	Salt         []byte
	CreatedAt    time.Time
}
