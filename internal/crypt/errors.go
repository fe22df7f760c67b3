package crypt

import "errors"

var (
	// ErrFormat is returned when a container is malformed (truncated header
	// or missing filename separator).
	ErrFormat = errors.New("malformed container")
	// ErrWrongPassword is returned when the key-verification digest does not
	// match, meaning a wrong password or a corrupted header region.
	ErrWrongPassword = errors.New("wrong password or corrupted header")
	// ErrTampered is returned when AEAD authentication fails during decryption.
	ErrTampered = errors.New("authentication failed: data tampered or corrupted")
	// ErrPlaintextTooLarge is returned when the plaintext exceeds the safe
	// single key/nonce encryption limit.
	ErrPlaintextTooLarge = errors.New("plaintext exceeds safe encryption limit")
)
