package crypt

// Encrypt runs the full encryption protocol for one file: derive a key from
// the password under a fresh salt, seal the plaintext with the filename as
// associated data, and pack everything into a named container blob ready to
// be written to disk.
func Encrypt(name string, plaintext, password []byte, suite Suite) ([]byte, error) {
	ctx, err := NewContext(password, suite)
	if err != nil {
		return nil, err
	}

	ciphertext, err := ctx.Seal(plaintext, []byte(name))
	if err != nil {
		return nil, err
	}

	return WrapName(name, Pack(ctx.Salt, ctx.KeyHash, ctx.Nonce, ciphertext)), nil
}

// Decrypt reverses Encrypt: unwrap the filename, unpack the container,
// re-derive the key from the password and embedded salt, and verify the
// key digest in constant time before any ciphertext is touched. A digest
// mismatch yields ErrWrongPassword; a tag failure during decryption yields
// ErrTampered.
func Decrypt(data, password []byte, suite Suite) (string, []byte, error) {
	name, container, err := UnwrapName(data)
	if err != nil {
		return "", nil, err
	}

	salt, keyHash, nonce, ciphertext, err := Unpack(container)
	if err != nil {
		return "", nil, err
	}

	ctx := ContextFrom(password, salt, nonce, suite)

	ok, err := ConstantTimeEqual(ctx.KeyHash, keyHash)
	if err != nil {
		return "", nil, err
	}

	if !ok {
		return "", nil, ErrWrongPassword
	}

	plaintext, err := ctx.Open(ciphertext, []byte(name))
	if err != nil {
		return "", nil, err
	}

	return name, plaintext, nil
}
