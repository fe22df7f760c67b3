package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"
	"hash"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/sha3"
)

// Suite selects the cipher/hash pair used for key derivation, key
// verification, and authenticated encryption. Exactly one suite is active
// per run; it is resolved from its name at construction time.
type Suite byte

const (
	// SuiteAESGCM pairs AES-256-GCM with SHA-256. This is the default.
	SuiteAESGCM Suite = iota
	// SuiteChaCha20 pairs ChaCha20-Poly1305 with SHA3-256.
	SuiteChaCha20
)

// ParseSuite resolves a suite name as accepted on the command line.
func ParseSuite(name string) (Suite, error) {
	switch name {
	case "aes-gcm":
		return SuiteAESGCM, nil
	case "chacha20":
		return SuiteChaCha20, nil
	default:
		return 0, fmt.Errorf("unknown cipher suite %q", name)
	}
}

func (s Suite) String() string {
	switch s {
	case SuiteAESGCM:
		return "aes-gcm"
	case SuiteChaCha20:
		return "chacha20"
	default:
		return fmt.Sprintf("suite(%d)", byte(s))
	}
}

// hashNew returns the constructor for the suite's hash. Only 32-byte-output
// hashes are admissible: the verification digest occupies a fixed 32-byte
// slot in the container header.
func (s Suite) hashNew() func() hash.Hash {
	switch s {
	case SuiteChaCha20:
		return sha3.New256
	default:
		return sha256.New
	}
}

// newAEAD constructs the suite's AEAD primitive for the given 32-byte key.
// Both suites use a 96-bit nonce and a 128-bit tag.
func (s Suite) newAEAD(key []byte) (cipher.AEAD, error) {
	switch s {
	case SuiteChaCha20:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("creating ChaCha20-Poly1305: %w", err)
		}

		return aead, nil
	default:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating cipher: %w", err)
		}

		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("creating GCM: %w", err)
		}

		return aead, nil
	}
}
