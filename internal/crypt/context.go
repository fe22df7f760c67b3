package crypt

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Context holds the material for one encryption or decryption session.
// Constructed fresh (random salt and nonce) per file on encryption, and
// reconstructed from a container's embedded fields on decryption. Never
// shared across files.
type Context struct {
	// Salt is the 16-byte key-derivation salt.
	Salt []byte

	// Nonce is the 12-byte AEAD nonce.
	Nonce []byte

	// Key is the 32-byte derived key.
	Key []byte

	// KeyHash is the 32-byte verification digest of Key.
	KeyHash []byte

	suite Suite
}

// NewContext derives a session from a password with a fresh random salt and
// nonce. Used on the encryption path; salt and nonce are never reused.
func NewContext(password []byte, suite Suite) (*Context, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	return ContextFrom(password, salt, nonce, suite), nil
}

// ContextFrom re-derives a session from a password and the salt and nonce
// extracted from an existing container. Used on the decryption path.
func ContextFrom(password, salt, nonce []byte, suite Suite) *Context {
	key := DeriveKey(password, salt, suite)

	return &Context{
		Salt:    salt,
		Nonce:   nonce,
		Key:     key,
		KeyHash: VerificationHash(key, suite),
		suite:   suite,
	}
}

// Seal encrypts and authenticates plaintext under the session key and
// nonce, binding the associated data (the protected filename) into the
// authentication tag. The returned slice is ciphertext followed by the
// 16-byte tag.
func (c *Context) Seal(plaintext, associated []byte) ([]byte, error) {
	if int64(len(plaintext)) > MaxPlaintextSize {
		return nil, ErrPlaintextTooLarge
	}

	aead, err := c.suite.newAEAD(c.Key)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nil, c.Nonce, plaintext, associated), nil
}

// Open decrypts ciphertext+tag under the session key and nonce, verifying
// the tag against the same associated data supplied at seal time. Returns
// ErrTampered on any authentication failure.
func (c *Context) Open(ciphertext, associated []byte) ([]byte, error) {
	aead, err := c.suite.newAEAD(c.Key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, c.Nonce, ciphertext, associated)
	if err != nil {
		return nil, ErrTampered
	}

	return plaintext, nil
}
