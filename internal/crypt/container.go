package crypt

import (
	"bytes"
	"fmt"
)

// Container layout (fixed offsets, compatibility contract):
//
//	0..16   salt
//	16..48  key-verification digest
//	48..60  nonce
//	60..    ciphertext+tag
//
// The container is wrapped in an outer layer storing the original filename,
// a single separator byte, and the container bytes.
const (
	saltOffset   = 0
	hashOffset   = saltOffset + SaltSize
	nonceOffset  = hashOffset + KeyHashSize
	cipherOffset = nonceOffset + NonceSize

	// HeaderSize is the fixed-width container prefix preceding the ciphertext.
	HeaderSize = cipherOffset
)

// NameSeparator divides the embedded filename from the container bytes in
// the outer wrapper. '/' cannot appear in a filename; the filesystem
// guarantees this, the codec does not enforce it.
const NameSeparator = byte('/')

// Pack concatenates the container fields at their fixed offsets.
func Pack(salt, keyHash, nonce, ciphertext []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(ciphertext))
	out = append(out, salt...)
	out = append(out, keyHash...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)

	return out
}

// Unpack splits container bytes back into their fields. The returned slices
// alias data.
func Unpack(data []byte) (salt, keyHash, nonce, ciphertext []byte, err error) {
	if len(data) < HeaderSize {
		return nil, nil, nil, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrFormat, len(data), HeaderSize)
	}

	return data[saltOffset:hashOffset],
		data[hashOffset:nonceOffset],
		data[nonceOffset:cipherOffset],
		data[cipherOffset:],
		nil
}

// WrapName prefixes container bytes with the original filename and the
// separator byte.
func WrapName(name string, container []byte) []byte {
	out := make([]byte, 0, len(name)+1+len(container))
	out = append(out, name...)
	out = append(out, NameSeparator)
	out = append(out, container...)

	return out
}

// UnwrapName splits wrapped bytes on the first separator occurrence,
// recovering the embedded filename and the container.
func UnwrapName(data []byte) (string, []byte, error) {
	idx := bytes.IndexByte(data, NameSeparator)
	if idx < 0 {
		return "", nil, fmt.Errorf("%w: filename separator missing", ErrFormat)
	}

	return string(data[:idx]), data[idx+1:], nil
}
