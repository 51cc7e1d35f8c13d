package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with bcrypt. Each hash carries its own salt,
// so equal passwords produce different hashes and comparison goes through
// Verify, never equality. bcrypt's compare is constant time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher at the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted one-way hash of the plaintext.
func (h *BcryptHasher) Hash(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
}

// Verify reports whether plaintext matches the stored hash. It returns a
// non-nil error on mismatch.
func (h *BcryptHasher) Verify(plaintext string, hash []byte) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext))
}
