package crypt_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/goseal/internal/crypt"
)

func suites(t *testing.T) map[string]crypt.Suite {
	t.Helper()

	return map[string]crypt.Suite{
		"aes-gcm":  crypt.SuiteAESGCM,
		"chacha20": crypt.SuiteChaCha20,
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for name, suite := range suites(t) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			plaintext := []byte("attack at dawn")
			password := []byte("correct horse")

			blob, err := crypt.Encrypt("orders.txt", plaintext, password, suite)
			if err != nil {
				t.Fatalf("encrypting: %v", err)
			}

			gotName, gotPlain, err := crypt.Decrypt(blob, password, suite)
			if err != nil {
				t.Fatalf("decrypting: %v", err)
			}

			if gotName != "orders.txt" {
				t.Errorf("embedded name = %q, want %q", gotName, "orders.txt")
			}

			if !bytes.Equal(gotPlain, plaintext) {
				t.Errorf("plaintext = %q, want %q", gotPlain, plaintext)
			}
		})
	}
}

func TestWrongPassword(t *testing.T) {
	t.Parallel()

	blob, err := crypt.Encrypt("secret.txt", []byte("payload"), []byte("correct horse"), crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	_, _, err = crypt.Decrypt(blob, []byte("wrong"), crypt.SuiteAESGCM)
	if !errors.Is(err, crypt.ErrWrongPassword) {
		t.Fatalf("err = %v, want ErrWrongPassword", err)
	}
}

func TestTamperedCiphertext(t *testing.T) {
	t.Parallel()

	password := []byte("correct horse")

	blob, err := crypt.Encrypt("secret.txt", []byte("payload"), password, crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	// Flip one bit in the ciphertext region (past the name, separator, and
	// fixed header).
	tampered := append([]byte{}, blob...)
	tampered[len(tampered)-1] ^= 0x01

	_, _, err = crypt.Decrypt(tampered, password, crypt.SuiteAESGCM)
	if !errors.Is(err, crypt.ErrTampered) {
		t.Fatalf("err = %v, want ErrTampered", err)
	}
}

func TestTamperedEmbeddedName(t *testing.T) {
	t.Parallel()

	password := []byte("correct horse")

	blob, err := crypt.Encrypt("secret.txt", []byte("payload"), password, crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	// Alter a byte of the embedded filename. The key digest still matches,
	// but the associated data no longer does.
	tampered := append([]byte{}, blob...)
	tampered[0] ^= 0x01

	_, _, err = crypt.Decrypt(tampered, password, crypt.SuiteAESGCM)
	if !errors.Is(err, crypt.ErrTampered) {
		t.Fatalf("err = %v, want ErrTampered", err)
	}
}

func TestEncryptionsDiffer(t *testing.T) {
	t.Parallel()

	plaintext := []byte("same input")
	password := []byte("same password")

	first, err := crypt.Encrypt("a.txt", plaintext, password, crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	second, err := crypt.Encrypt("a.txt", plaintext, password, crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Fatal("two encryptions produced identical containers (salt/nonce reuse)")
	}

	for i, blob := range [][]byte{first, second} {
		_, plain, err := crypt.Decrypt(blob, password, crypt.SuiteAESGCM)
		if err != nil {
			t.Fatalf("decrypting container %d: %v", i, err)
		}

		if !bytes.Equal(plain, plaintext) {
			t.Errorf("container %d plaintext = %q, want %q", i, plain, plaintext)
		}
	}
}

func TestEmptyPlaintext(t *testing.T) {
	t.Parallel()

	password := []byte("correct horse")

	blob, err := crypt.Encrypt("empty.txt", nil, password, crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	// Outer layer: name + separator. Container: 60-byte header + 16-byte tag
	// over the empty plaintext.
	want := len("empty.txt") + 1 + crypt.HeaderSize + crypt.TagSize
	if len(blob) != want {
		t.Fatalf("blob length = %d, want %d", len(blob), want)
	}

	name, plain, err := crypt.Decrypt(blob, password, crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("decrypting: %v", err)
	}

	if name != "empty.txt" {
		t.Errorf("embedded name = %q, want %q", name, "empty.txt")
	}

	if len(plain) != 0 {
		t.Errorf("plaintext length = %d, want 0", len(plain))
	}

	if _, _, err := crypt.Decrypt(blob, []byte("wrong"), crypt.SuiteAESGCM); !errors.Is(err, crypt.ErrWrongPassword) {
		t.Errorf("wrong password err = %v, want ErrWrongPassword", err)
	}
}

func TestSuiteMismatch(t *testing.T) {
	t.Parallel()

	password := []byte("correct horse")

	blob, err := crypt.Encrypt("a.txt", []byte("payload"), password, crypt.SuiteAESGCM)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	// Decrypting with the other suite derives a different key, so it fails
	// at the verification digest, not inside the cipher.
	_, _, err = crypt.Decrypt(blob, password, crypt.SuiteChaCha20)
	if !errors.Is(err, crypt.ErrWrongPassword) {
		t.Fatalf("err = %v, want ErrWrongPassword", err)
	}
}

func TestParseSuite(t *testing.T) {
	t.Parallel()

	for name, want := range suites(t) {
		got, err := crypt.ParseSuite(name)
		if err != nil {
			t.Fatalf("ParseSuite(%q): %v", name, err)
		}

		if got != want {
			t.Errorf("ParseSuite(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := crypt.ParseSuite("rot13"); err == nil {
		t.Error("ParseSuite accepted an unknown suite")
	}
}
