// Package password wraps bcrypt so callers never handle salts or cost
// factors directly.
package password

import "golang.org/x/crypto/bcrypt"

// cost matches the work factor the original deployment used for its hashes.
const cost = 10

// Hash derives a salted one-way hash of the plaintext. The returned string
// embeds the algorithm id, cost and salt.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Comparison is
// constant-time inside bcrypt; a malformed stored hash fails closed.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
