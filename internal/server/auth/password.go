package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters: 1 pass, 64 MiB, 4 lanes, 32-byte key.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 32
)

// NewSalt returns a fresh random salt for password hashing.
func NewSalt() ([]byte, error) {
	b := make([]byte, saltLen)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// HashPassword derives an argon2id digest of password with the given salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// CheckPassword reports whether candidate matches the stored digest,
// comparing in constant time.
func CheckPassword(hash, candidate, salt []byte) bool {
	derived := HashPassword(candidate, salt)
	return subtle.ConstantTimeCompare(hash, derived) == 1
}
