// Package crypt implements the password-based encryption protocol and the
// on-disk container format. Keys are derived with PBKDF2 over a
// suite-selected hash, data is sealed with an AEAD cipher bound to the
// original filename, and containers carry a key-verification digest so a
// wrong password is detected before any ciphertext is touched.
package crypt
