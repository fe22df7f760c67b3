package crypt

import (
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the derived symmetric key length (AES-256 / ChaCha20).
	KeySize = 32
	// SaltSize is the key-derivation salt length.
	SaltSize = 16
	// NonceSize is the AEAD nonce length (96 bits, both suites).
	NonceSize = 12
	// TagSize is the AEAD authentication tag length (128 bits, both suites).
	TagSize = 16
	// KeyHashSize is the key-verification digest length.
	KeyHashSize = 32

	// Iterations is the fixed PBKDF2 iteration count. Deliberately slow to
	// raise the cost of offline brute-force against stolen containers.
	Iterations = 600_000

	// MaxPlaintextSize is the largest plaintext accepted under a single
	// key/nonce pair. Larger inputs must be rejected up front.
	MaxPlaintextSize = int64(1) << 32
)

// DeriveKey stretches a password and salt into a 32-byte key using PBKDF2
// over the suite hash. Deterministic: the same password and salt always
// yield the same key.
func DeriveKey(password, salt []byte, suite Suite) []byte {
	return pbkdf2.Key(password, salt, Iterations, KeySize, suite.hashNew())
}

// VerificationHash computes the key-verification digest stored in the
// container header: a single application of the suite hash over the
// derived key.
func VerificationHash(key []byte, suite Suite) []byte {
	h := suite.hashNew()()
	h.Write(key)

	return h.Sum(nil)
}
